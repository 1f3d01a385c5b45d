package cli

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/mmasias/evaluacion-automatica/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the evaluador MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		projectPath string
		baseURL     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the evaluador MCP server (stdio)",
		Long:  "Start the MCP server using stdio transport so editor assistants can validate and build the submission.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			validate, err := a.validateService(baseURL)
			if err != nil {
				return err
			}

			s := mcpadapter.NewEvaluacionMCPServer(absPath, version, mcpadapter.Services{
				Validate: validate,
				Build:    a.buildService,
			})
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Submission path")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the criteria repository (default from EVALUACION_CRITERIA_BASE_URL)")

	return cmd
}
