package application

import (
	"context"
	"fmt"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// LoadCriteria fetches the base criteria of subject and overlays the
// local overrides on top of them, key by key.
func LoadCriteria(ctx context.Context, source domain.ConfigSource, subject string, overrides domain.Criteria) (domain.Criteria, error) {
	base, err := source.Fetch(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("fetching base criteria for %s: %w", subject, err)
	}
	return base.Merge(overrides), nil
}
