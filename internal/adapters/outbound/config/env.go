package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the CI environment. Command-line flags take
// precedence over these values.
type Env struct {
	CriteriaBaseURL  string        `env:"EVALUACION_CRITERIA_BASE_URL"`
	HTTPTimeout      time.Duration `env:"EVALUACION_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel         string        `env:"EVALUACION_LOG_LEVEL" envDefault:"info"`
	GithubToken      string        `env:"GITHUB_TOKEN"`
	GithubRepository string        `env:"GITHUB_REPOSITORY"`
	GithubAPIURL     string        `env:"GITHUB_API_URL"`
	PullRequest      int           `env:"PR_NUMBER"`
}

// LoadEnv parses the process environment.
func LoadEnv() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFrom parses the given variables instead of the process environment.
func LoadEnvFrom(vars map[string]string) (*Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SplitRepository splits an "owner/name" repository slug.
func SplitRepository(slug string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("repository %q must look like owner/name", slug)
	}
	return owner, repo, nil
}
