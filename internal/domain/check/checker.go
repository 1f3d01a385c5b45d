// Package check evaluates the structural rules of a subject against a
// submission's working tree.
package check

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// Validate runs the directory, file and naming-pattern checks, in that
// order, and concatenates their results. It only fails when the criteria
// cannot be decoded.
func Validate(fsys fs.FS, criteria domain.Criteria) ([]domain.CheckResult, error) {
	rules, err := criteria.Rules()
	if err != nil {
		return nil, err
	}
	return ValidateRules(fsys, rules), nil
}

// ValidateRules is Validate over already decoded rules.
func ValidateRules(fsys fs.FS, rules domain.Rules) []domain.CheckResult {
	results := make([]domain.CheckResult, 0,
		len(rules.RequiredDirs)+len(rules.RequiredFiles)+len(rules.NamingPatterns))
	results = append(results, CheckDirectories(fsys, rules.RequiredDirs)...)
	results = append(results, CheckFiles(fsys, rules.RequiredFiles)...)
	results = append(results, CheckNamingPatterns(fsys, rules.NamingPatterns)...)
	return results
}

// CheckDirectories reports one result per required directory.
func CheckDirectories(fsys fs.FS, dirs []string) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(dirs))
	for _, dir := range dirs {
		r := domain.CheckResult{Kind: domain.CheckDirectory, Target: dir}
		if exists(fsys, dir) {
			r.Passed = true
			r.Message = "✅ Carpeta encontrada: " + dir
		} else {
			r.Message = "❌ Falta la carpeta requerida: " + dir
		}
		results = append(results, r)
	}
	return results
}

// CheckFiles reports one result per required file.
func CheckFiles(fsys fs.FS, files []string) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(files))
	for _, file := range files {
		r := domain.CheckResult{Kind: domain.CheckFile, Target: file}
		if exists(fsys, file) {
			r.Passed = true
			r.Message = "✅ Archivo encontrado: " + file
		} else {
			r.Message = "❌ Falta el archivo requerido: " + file
		}
		results = append(results, r)
	}
	return results
}

// CheckNamingPatterns reports one result per pattern. A pattern is
// satisfied by any match, file or directory. Malformed patterns never match.
func CheckNamingPatterns(fsys fs.FS, patterns []domain.NamingPattern) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(patterns))
	for _, p := range patterns {
		r := domain.CheckResult{Kind: domain.CheckPattern, Target: p.Glob}
		matches, err := doublestar.Glob(fsys, normalizePattern(p.Glob))
		if err == nil && len(matches) > 0 {
			r.Passed = true
			r.Message = fmt.Sprintf("✅ Patrón satisfecho: %s (%d coincidencias)", p.Glob, len(matches))
		} else {
			r.Message = fmt.Sprintf("❌ No se encontraron archivos que sigan el patrón: %s (%s)", p.Glob, p.Description)
		}
		results = append(results, r)
	}
	return results
}

// exists treats paths outside the tree as missing.
func exists(fsys fs.FS, name string) bool {
	clean, ok := normalizePath(name)
	if !ok {
		return false
	}
	_, err := fs.Stat(fsys, clean)
	return err == nil
}

func normalizePath(name string) (string, bool) {
	clean := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	return clean, fs.ValidPath(clean)
}

func normalizePattern(pattern string) string {
	for strings.HasPrefix(pattern, "./") {
		pattern = pattern[2:]
	}
	return pattern
}
