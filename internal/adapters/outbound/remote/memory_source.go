package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// MemorySource implements domain.ConfigSource from an in-memory table keyed
// by lower-cased subject.
type MemorySource struct {
	criteria map[string]domain.Criteria
}

func NewMemorySource(criteria map[string]domain.Criteria) *MemorySource {
	table := make(map[string]domain.Criteria, len(criteria))
	for subject, c := range criteria {
		table[strings.ToLower(subject)] = c
	}
	return &MemorySource{criteria: table}
}

func (s *MemorySource) Fetch(_ context.Context, subject string) (domain.Criteria, error) {
	c, ok := s.criteria[strings.ToLower(subject)]
	if !ok {
		return nil, fmt.Errorf("%w %q", domain.ErrNoCriteria, subject)
	}
	return c.Merge(nil), nil
}
