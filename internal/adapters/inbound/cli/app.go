package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/config"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/gitinfo"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/logging"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/process"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/remote"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/scanner"
	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// app carries the environment and logger shared by every command.
type app struct {
	env    *config.Env
	logger zerolog.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	level := env.LogLevel
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}

	return &app{env: env, logger: logging.New(level, cmd.ErrOrStderr())}, nil
}

// validateService wires the structure validator. A non-empty baseURL wins
// over EVALUACION_CRITERIA_BASE_URL.
func (a *app) validateService(baseURL string) (*application.ValidateService, error) {
	if baseURL == "" {
		baseURL = a.env.CriteriaBaseURL
	}
	if baseURL == "" {
		baseURL = remote.DefaultBaseURL
	}

	schema, err := config.NewSchemaValidator()
	if err != nil {
		return nil, err
	}

	return application.NewValidateService(
		config.New(),
		remote.NewHTTPSource(baseURL, a.env.HTTPTimeout),
		schema,
		gitinfo.New(),
		&a.logger,
	), nil
}

func (a *app) buildService(opts domain.BuildOptions) *application.BuildService {
	return application.NewBuildService(process.New(), scanner.New(), opts, &a.logger)
}
