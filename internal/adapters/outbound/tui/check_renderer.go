package tui

import (
	"strings"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// RenderValidation formats a validation report: satisfied rules as they
// were checked, then every error found. Check messages carry their own icon.
func RenderValidation(report *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("🔍 Iniciando validación para " + report.Subject))
	if report.Commit != "" {
		b.WriteString("  " + dimStyle.Render(report.Commit))
	}
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	for _, r := range report.Results {
		if r.Passed {
			b.WriteString(passStyle.Render(r.Message) + "\n")
		}
	}

	errs := report.Errors()
	if len(errs) == 0 {
		b.WriteString("\n")
		b.WriteString(passStyle.Render("🎉 ¡Todas las validaciones pasaron correctamente!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(errorTagStyle.Render("💥 ERRORES ENCONTRADOS:"))
	b.WriteString("\n")
	for _, e := range errs {
		b.WriteString(failStyle.Render(e) + "\n")
	}
	return b.String()
}
