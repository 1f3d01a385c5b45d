package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// DefaultBaseURL hosts the per-subject base criteria.
const DefaultBaseURL = "https://raw.githubusercontent.com/mmasias/evaluacion-automatica-utils/main"

const maxBodySize = 1 << 20

// HTTPSource implements domain.ConfigSource by downloading
// <base>/configs/criterios-<subject>.json.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource. An empty baseURL selects DefaultBaseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the location of the base criteria for subject.
func (s *HTTPSource) URL(subject string) string {
	return fmt.Sprintf("%s/configs/criterios-%s.json", s.baseURL, url.PathEscape(strings.ToLower(subject)))
}

func (s *HTTPSource) Fetch(ctx context.Context, subject string) (domain.Criteria, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(subject), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	criteria, err := domain.ParseCriteria(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.URL(subject), err)
	}
	return criteria, nil
}
