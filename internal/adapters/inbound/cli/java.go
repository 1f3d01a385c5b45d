package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/tui"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

func newJavaCmd() *cobra.Command {
	var (
		path       string
		opts       = domain.DefaultBuildOptions()
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "java",
		Short: "Compile and run a Java submission",
		Long: "Compile every .java file under --src into --build-dir and run the entry class with a time limit. " +
			"A compilation failure exits non-zero; a failing or slow run is only a warning unless --strict is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.RunTimeout <= 0 {
				return fmt.Errorf("--timeout must be positive, got %s", opts.RunTimeout)
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			report := a.buildService(opts).Run(cmd.Context(), absPath)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderBuild(report, strict))
			}

			switch {
			case report.State == domain.StateNotCompiled:
				return fmt.Errorf("compilation failed")
			case report.Blocking(strict):
				return fmt.Errorf("execution failed (strict)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Submission path")
	cmd.Flags().StringVar(&opts.SourceDir, "src", opts.SourceDir, "Source root, relative to --path")
	cmd.Flags().StringVar(&opts.BuildDir, "build-dir", opts.BuildDir, "Class output directory, relative to --path")
	cmd.Flags().StringVar(&opts.EntryClass, "main", opts.EntryClass, "Entry class to run")
	cmd.Flags().DurationVar(&opts.RunTimeout, "timeout", opts.RunTimeout, "Run time limit")
	cmd.Flags().StringVar(&opts.Compiler, "javac", opts.Compiler, "Java compiler executable")
	cmd.Flags().StringVar(&opts.Runtime, "java", opts.Runtime, "Java runtime executable")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat a failed or timed out run as an error")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the build report as JSON")

	return cmd
}
