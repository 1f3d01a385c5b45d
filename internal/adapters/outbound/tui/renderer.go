package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("=", 50))
)

// RenderBuild formats the compile and run phases of a Java build.
// Execution is only shown once compilation succeeded.
func RenderBuild(report *domain.BuildReport, strict bool) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("🔨 Compilando código Java..."))
	b.WriteString("\n")
	if report.Compile.Success {
		writeOutcome(&b, passStyle.Render("✓"), "✅", report.Compile.Message)
	} else {
		writeOutcome(&b, failStyle.Render("✗"), "❌", report.Compile.Message)
		return b.String()
	}

	if report.Execution == nil {
		return b.String()
	}

	b.WriteString(headerStyle.Render("🚀 Ejecutando programa..."))
	b.WriteString("\n")
	switch {
	case report.Execution.Success:
		writeOutcome(&b, passStyle.Render("✓"), "✅", report.Execution.Message)
	case strict:
		writeOutcome(&b, failStyle.Render("✗"), "❌", report.Execution.Message)
	default:
		writeOutcome(&b, warnStyle.Render("⚠"), "⚠️", report.Execution.Message)
	}
	return b.String()
}

// writeOutcome prints the first line of msg next to the icons and the
// rest, usually compiler or program output, dimmed below it.
func writeOutcome(b *strings.Builder, icon, emoji, msg string) {
	first, rest, _ := strings.Cut(msg, "\n")
	fmt.Fprintf(b, "%s %s %s\n", icon, emoji, titleStyle.Render(first))
	if rest = strings.TrimRight(rest, "\n"); rest != "" {
		for _, line := range strings.Split(rest, "\n") {
			b.WriteString("    " + dimStyle.Render(line) + "\n")
		}
	}
}
