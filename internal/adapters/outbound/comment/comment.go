// Package comment renders the pull-request report left for the student.
package comment

import (
	"fmt"
	"os"
	"strings"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// DefaultArtifact is the file the CI workflow posts as a PR comment.
const DefaultArtifact = "pr_comment.txt"

const rejectionTemplate = `## ❌ Validación Automática Fallida - %s

Tu trabajo no cumple con algunos requisitos básicos. Por favor, corrige los siguientes problemas y vuelve a hacer el pull request:

### Errores Encontrados:
%s

### 📝 Recordatorio:
- Revisa la estructura de carpetas del template
- Verifica que todos los archivos requeridos estén presentes
- Asegúrate de seguir las convenciones de nomenclatura

Una vez corregidos estos problemas, puedes cerrar este PR, hacer los cambios en tu rama, y crear un nuevo PR.

`

const approvalTemplate = `## ✅ Validación Automática Exitosa - %s

¡Excelente! Tu trabajo cumple con todos los requisitos estructurales básicos.

### Validaciones Completadas:
- ✅ Estructura de carpetas correcta
- ✅ Archivos obligatorios presentes
- ✅ Nomenclatura adecuada

Tu trabajo ahora será revisado manualmente por el profesor.

`

const footerTemplate = "---\n*Validación automática realizada por el sistema de evaluación de %s*\n"

// RenderRejection lists every error, in order, one bullet per line.
func RenderRejection(errors []string, subject string) string {
	bullets := make([]string, len(errors))
	for i, e := range errors {
		bullets[i] = "- " + e
	}
	body := fmt.Sprintf(rejectionTemplate, strings.ToUpper(subject), strings.Join(bullets, "\n"))
	return body + footer(subject)
}

func RenderApproval(subject string) string {
	return fmt.Sprintf(approvalTemplate, strings.ToUpper(subject)) + footer(subject)
}

// Render picks the template matching the outcome of the report.
func Render(report *domain.ValidationReport) string {
	if errs := report.Errors(); len(errs) > 0 {
		return RenderRejection(errs, report.Subject)
	}
	return RenderApproval(report.Subject)
}

// WriteArtifact stores the rendered report, replacing any previous one.
func WriteArtifact(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func footer(subject string) string {
	return fmt.Sprintf(footerTemplate, subject) + domain.CommentMarker + "\n"
}
