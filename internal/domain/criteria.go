package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Recognized criteria keys.
const (
	KeySubject        = "asignatura"
	KeyRequiredDirs   = "carpetas_requeridas"
	KeyRequiredFiles  = "archivos_requeridos"
	KeyNamingPatterns = "patrones_nomenclatura"
)

var (
	// ErrMissingSubject is returned when a local config has no usable asignatura.
	ErrMissingSubject = errors.New("missing asignatura")
	// ErrNoCriteria is returned when a source has no base rule set for a subject.
	ErrNoCriteria = errors.New("no criteria for subject")
)

// Criteria maps rule-category names to their raw JSON values. Unknown keys
// are carried through merges untouched.
type Criteria map[string]json.RawMessage

// ParseCriteria decodes a JSON object into Criteria.
func ParseCriteria(data []byte) (Criteria, error) {
	var c Criteria
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("criteria must be a JSON object")
	}
	return c, nil
}

// Merge returns a new Criteria holding c overlaid with overrides.
// Keys present in both take the override's value as a whole.
func (c Criteria) Merge(overrides Criteria) Criteria {
	merged := make(Criteria, len(c)+len(overrides))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Subject returns the asignatura declared in the criteria.
func (c Criteria) Subject() (string, error) {
	raw, ok := c[KeySubject]
	if !ok {
		return "", ErrMissingSubject
	}
	var subject string
	if err := json.Unmarshal(raw, &subject); err != nil {
		return "", fmt.Errorf("%w: %s must be a string", ErrMissingSubject, KeySubject)
	}
	if subject == "" {
		return "", ErrMissingSubject
	}
	return subject, nil
}

// JSON returns the criteria as a JSON document, keys sorted.
func (c Criteria) JSON() ([]byte, error) {
	return json.Marshal(map[string]json.RawMessage(c))
}

// NamingPattern is a glob the working tree must match at least once.
type NamingPattern struct {
	Glob        string `json:"glob"`
	Description string `json:"description"`
}

// Rules is the typed view of the recognized rule categories.
type Rules struct {
	RequiredDirs   []string        `json:"carpetas_requeridas"`
	RequiredFiles  []string        `json:"archivos_requeridos"`
	NamingPatterns []NamingPattern `json:"patrones_nomenclatura"`
}

// Rules decodes the recognized rule categories. Absent keys yield empty rules.
func (c Criteria) Rules() (Rules, error) {
	var r Rules
	var err error

	if r.RequiredDirs, err = c.stringList(KeyRequiredDirs); err != nil {
		return Rules{}, err
	}
	if r.RequiredFiles, err = c.stringList(KeyRequiredFiles); err != nil {
		return Rules{}, err
	}
	if r.NamingPatterns, err = c.namingPatterns(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (c Criteria) stringList(key string) ([]string, error) {
	raw, ok := c[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return list, nil
}

// namingPatterns keeps the JSON object order of the pattern mapping.
func (c Criteria) namingPatterns() ([]NamingPattern, error) {
	raw, ok := c[KeyNamingPatterns]
	if !ok || isNull(raw) {
		return nil, nil
	}

	om := orderedmap.New[string, string]()
	if err := json.Unmarshal(raw, om); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", KeyNamingPatterns, err)
	}

	patterns := make([]NamingPattern, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		patterns = append(patterns, NamingPattern{Glob: pair.Key, Description: pair.Value})
	}
	return patterns, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
