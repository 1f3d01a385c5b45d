package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/comment"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/config"
	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// maxTimeoutSeconds caps the run limit a client may request.
const maxTimeoutSeconds = 600

func registerTools(s *server.MCPServer, projectPath string, svc Services) {
	s.AddTool(
		mcplib.NewTool("evaluacion_validate",
			mcplib.WithDescription("Validates the submission structure (required folders, files and naming patterns) and returns the report with the pull request comment"),
			mcplib.WithString("subject", mcplib.Description("Subject id overriding the asignatura of the local config")),
			mcplib.WithString("config", mcplib.Description("Local config path relative to the project (default: .github/evaluacion-config.json)")),
		),
		handleValidate(projectPath, svc.Validate),
	)

	s.AddTool(
		mcplib.NewTool("evaluacion_build_java",
			mcplib.WithDescription("Compiles the Java sources of the submission and runs its entry class with a time limit"),
			mcplib.WithString("src", mcplib.Description("Source root (default: src)")),
			mcplib.WithString("build_dir", mcplib.Description("Output directory for classes (default: build)")),
			mcplib.WithString("main", mcplib.Description("Entry class (default: Main)")),
			mcplib.WithNumber("timeout_seconds", mcplib.Description("Run time limit in seconds (default: 10)")),
		),
		handleBuildJava(projectPath, svc.Build),
	)
}

// validationResult is the payload of evaluacion_validate.
type validationResult struct {
	*domain.ValidationReport
	Errors  []string `json:"errors"`
	Comment string   `json:"comment"`
}

func handleValidate(projectPath string, svc *application.ValidateService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req := validateRequest(projectPath, request)

		report, err := svc.Validate(ctx, req)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}

		errs := report.Errors()
		if errs == nil {
			errs = []string{}
		}
		return jsonResult(validationResult{
			ValidationReport: report,
			Errors:           errs,
			Comment:          comment.Render(report),
		})
	}
}

func handleBuildJava(projectPath string, newBuild func(domain.BuildOptions) *application.BuildService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		opts := domain.DefaultBuildOptions()

		if v, _ := args["src"].(string); v != "" {
			opts.SourceDir = v
		}
		if v, _ := args["build_dir"].(string); v != "" {
			opts.BuildDir = v
		}
		if v, _ := args["main"].(string); v != "" {
			opts.EntryClass = v
		}
		if v, ok := args["timeout_seconds"].(float64); ok {
			d := time.Duration(v * float64(time.Second))
			if v > maxTimeoutSeconds || d <= 0 {
				return errorResult(fmt.Sprintf("timeout_seconds must be between 0 and %d, got %g", maxTimeoutSeconds, v)), nil
			}
			opts.RunTimeout = d
		}

		return jsonResult(newBuild(opts).Run(ctx, projectPath))
	}
}

func validateRequest(projectPath string, request mcplib.CallToolRequest) application.ValidateRequest {
	args := request.GetArguments()
	req := application.ValidateRequest{ProjectPath: projectPath, ConfigPath: config.DefaultPath}
	if v, _ := args["subject"].(string); v != "" {
		req.Subject = v
	}
	if v, _ := args["config"].(string); v != "" {
		req.ConfigPath = v
	}
	return req
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
