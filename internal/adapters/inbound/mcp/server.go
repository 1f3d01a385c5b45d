package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// Services are the application services behind the MCP tools.
type Services struct {
	Validate *application.ValidateService
	// Build returns a build service for the options of a single call.
	Build func(opts domain.BuildOptions) *application.BuildService
}

// NewEvaluacionMCPServer creates a new MCP server with every tool and
// resource registered. projectPath is the submission being checked.
func NewEvaluacionMCPServer(projectPath, version string, svc Services) *server.MCPServer {
	s := server.NewMCPServer(
		"evaluacion-automatica",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
