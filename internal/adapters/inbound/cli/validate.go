package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/comment"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/config"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/tui"
	"github.com/mmasias/evaluacion-automatica/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		path       string
		configPath string
		output     string
		baseURL    string
		subject    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the structure of a submission",
		Long: "Fetch the subject's criteria, merge the local overrides and check required folders, files and naming patterns. " +
			"The pull request comment is written to --output. Exits non-zero when any check fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			svc, err := a.validateService(baseURL)
			if err != nil {
				return err
			}

			report, err := svc.Validate(cmd.Context(), application.ValidateRequest{
				ProjectPath: absPath,
				ConfigPath:  configPath,
				Subject:     subject,
			})
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			artifact := output
			if !filepath.IsAbs(artifact) {
				artifact = filepath.Join(absPath, artifact)
			}
			if err := comment.WriteArtifact(artifact, comment.Render(report)); err != nil {
				return err
			}
			a.logger.Debug().Str("path", artifact).Msg("report written")

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(report))
			}

			if errs := report.Errors(); len(errs) > 0 {
				return fmt.Errorf("validation failed: %d error(s) found", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Submission path to validate")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "Local config file, relative to --path")
	cmd.Flags().StringVar(&output, "output", comment.DefaultArtifact, "Where to write the pull request comment, relative to --path")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the criteria repository (default from EVALUACION_CRITERIA_BASE_URL)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject id overriding the asignatura of the local config")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}
