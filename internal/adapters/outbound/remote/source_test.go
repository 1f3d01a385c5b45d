package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/remote"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_FetchLowercasesSubject(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"carpetas_requeridas": ["src"]}`))
	}))
	defer server.Close()

	src := remote.NewHTTPSource(server.URL+"/", time.Second)
	c, err := src.Fetch(context.Background(), "PRG1")
	require.NoError(t, err)

	assert.Equal(t, "/configs/criterios-prg1.json", gotPath)
	rules, err := c.Rules()
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, rules.RequiredDirs)
}

func TestHTTPSource_DefaultBaseURL(t *testing.T) {
	src := remote.NewHTTPSource("", time.Second)
	assert.Equal(t,
		"https://raw.githubusercontent.com/mmasias/evaluacion-automatica-utils/main/configs/criterios-poo.json",
		src.URL("POO"))
}

func TestHTTPSource_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := remote.NewHTTPSource(server.URL, time.Second).Fetch(context.Background(), "prg1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
}

func TestHTTPSource_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := remote.NewHTTPSource(server.URL, time.Second).Fetch(context.Background(), "prg1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestHTTPSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := remote.NewHTTPSource(url, time.Second).Fetch(context.Background(), "prg1")
	assert.Error(t, err)
}

func TestMemorySource(t *testing.T) {
	base, err := domain.ParseCriteria([]byte(`{"archivos_requeridos": ["README.md"]}`))
	require.NoError(t, err)

	src := remote.NewMemorySource(map[string]domain.Criteria{"PRG1": base})

	c, err := src.Fetch(context.Background(), "prg1")
	require.NoError(t, err)
	assert.Equal(t, base, c)

	_, err = src.Fetch(context.Background(), "poo")
	assert.True(t, errors.Is(err, domain.ErrNoCriteria))
}
