package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// JavaSources returns every .java file below sourceDir, relative to
// projectPath and in lexical order. A missing sourceDir yields no files.
func (s *FileScanner) JavaSources(projectPath, sourceDir string) ([]string, error) {
	root := filepath.Join(projectPath, sourceDir)

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		relPath, err := filepath.Rel(projectPath, path)
		if err != nil {
			return err
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
