package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where a submission declares its subject and overrides.
const DefaultPath = ".github/evaluacion-config.json"

// LocalLoader implements domain.LocalConfigLoader by reading the
// repository's evaluation config. YAML files are accepted too.
type LocalLoader struct{}

// New creates a LocalLoader.
func New() *LocalLoader { return &LocalLoader{} }

// Load reads the override file at path. Unlike the base criteria, a missing
// file is an error: the submission must say which subject it belongs to.
func (l *LocalLoader) Load(path string) (domain.Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	c, err := domain.ParseCriteria(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := c.Subject(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return c, nil
}

// yamlToJSON converts a YAML document to JSON keeping mapping order, so
// naming patterns are checked in the order they were written.
func yamlToJSON(data []byte) ([]byte, error) {
	// yaml.v3 rejects self-referencing anchors and excessive aliasing only
	// when decoding into values.
	var plain any
	if err := yaml.Unmarshal(data, &plain); err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, &doc, map[*yaml.Node]bool{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeJSON serializes n. active holds the aliased nodes currently being
// expanded; meeting one again means the alias refers to itself.
func writeJSON(buf *bytes.Buffer, n *yaml.Node, active map[*yaml.Node]bool) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0], active)

	case yaml.AliasNode:
		if n.Alias == nil || active[n.Alias] {
			return fmt.Errorf("line %d: recursive alias", n.Line)
		}
		active[n.Alias] = true
		defer delete(active, n.Alias)
		return writeJSON(buf, n.Alias, active)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1], active); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item, active); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		out, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(out)
		return nil
	}

	return fmt.Errorf("line %d: unsupported YAML node", n.Line)
}
