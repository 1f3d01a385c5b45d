package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/config"
	"github.com/mmasias/evaluacion-automatica/internal/application"
)

const criteriaURI = "evaluacion://criteria"

func registerResources(s *server.MCPServer, projectPath string, svc Services) {
	s.AddResource(
		mcplib.NewResource(
			criteriaURI,
			"Criteria",
			mcplib.WithResourceDescription("Merged evaluation criteria (remote base plus local overrides) for the submission"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCriteriaResource(projectPath, svc.Validate),
	)
}

func handleCriteriaResource(projectPath string, svc *application.ValidateService) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		criteria, _, err := svc.Criteria(ctx, application.ValidateRequest{
			ProjectPath: projectPath,
			ConfigPath:  config.DefaultPath,
		})
		if err != nil {
			return nil, fmt.Errorf("resolving criteria: %w", err)
		}

		data, err := criteria.JSON()
		if err != nil {
			return nil, fmt.Errorf("marshaling criteria: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      criteriaURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
