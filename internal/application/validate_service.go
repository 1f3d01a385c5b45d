package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
	"github.com/mmasias/evaluacion-automatica/internal/domain/check"
)

// ValidateService runs the structural validation of a submission:
// local config -> base criteria -> merge -> schema -> checks.
type ValidateService struct {
	local  domain.LocalConfigLoader
	source domain.ConfigSource
	schema domain.CriteriaValidator
	git    domain.GitInfo
	logger *zerolog.Logger
}

// NewValidateService creates a ValidateService. schema and git may be nil.
func NewValidateService(
	local domain.LocalConfigLoader,
	source domain.ConfigSource,
	schema domain.CriteriaValidator,
	git domain.GitInfo,
	logger *zerolog.Logger,
) *ValidateService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &ValidateService{local: local, source: source, schema: schema, git: git, logger: logger}
}

// ValidateRequest describes one validation run.
type ValidateRequest struct {
	ProjectPath string
	// ConfigPath is resolved against ProjectPath unless absolute.
	ConfigPath string
	// Subject overrides the asignatura of the local config when set.
	Subject string
}

// Criteria resolves the merged, schema-checked criteria of a submission
// and the subject they belong to.
func (s *ValidateService) Criteria(ctx context.Context, req ValidateRequest) (domain.Criteria, string, error) {
	local, err := s.local.Load(resolve(req.ProjectPath, req.ConfigPath))
	if err != nil {
		return nil, "", fmt.Errorf("loading local config: %w", err)
	}

	subject := req.Subject
	if subject == "" {
		if subject, err = local.Subject(); err != nil {
			return nil, "", err
		}
	}

	criteria, err := LoadCriteria(ctx, s.source, subject, local)
	if err != nil {
		return nil, "", fmt.Errorf("loading criteria: %w", err)
	}

	if s.schema != nil {
		if err := s.schema.Validate(criteria); err != nil {
			return nil, "", err
		}
	}
	return criteria, subject, nil
}

// Validate returns the report of the run. Configuration problems are
// returned as errors; rule violations are part of the report.
func (s *ValidateService) Validate(ctx context.Context, req ValidateRequest) (*domain.ValidationReport, error) {
	s.logger.Info().Str("path", req.ProjectPath).Str("config", req.ConfigPath).Msg("starting validation")

	criteria, subject, err := s.Criteria(ctx, req)
	if err != nil {
		return nil, err
	}

	results, err := check.Validate(os.DirFS(req.ProjectPath), criteria)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	report := &domain.ValidationReport{Subject: subject, Results: results}

	if s.git != nil {
		if rev, err := s.git.Revision(req.ProjectPath); err == nil {
			report.Commit = rev.Short()
			s.logger.Debug().Str("commit", rev.Hash).Str("branch", rev.Branch).Msg("validating revision")
		}
	}

	s.logger.Info().
		Str("asignatura", subject).
		Int("checks", len(results)).
		Int("errors", len(report.Errors())).
		Msg("validation complete")

	return report, nil
}

func resolve(projectPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectPath, path)
}
