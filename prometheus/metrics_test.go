package prometheus_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/causelist/mock"
	"github.com/fwojciec/causelist/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *prometheus.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	t.Run("counts searches and matches", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveSearch("cnr", prometheus.OutcomeOK, 2)
		m.ObserveSearch("cnr", prometheus.OutcomeOK, 1)
		m.ObserveSearch("case", prometheus.OutcomeError, 0)

		out := scrape(t, m)

		assert.Contains(t, out, `causelist_searches_total{mode="cnr",outcome="ok"} 2`)
		assert.Contains(t, out, `causelist_searches_total{mode="case",outcome="error"} 1`)
		assert.Contains(t, out, `causelist_matches_total 3`)
	})

	t.Run("records requests by route", func(t *testing.T) {
		t.Parallel()

		m := prometheus.NewMetrics()
		m.ObserveRequest(http.MethodGet, "/api/search", 400, 5*time.Millisecond)
		m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

		out := scrape(t, m)

		assert.Contains(t, out, `causelist_http_requests_total{method="GET",route="/api/search",status="400"} 1`)
		assert.Contains(t, out, `causelist_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
		assert.Contains(t, out, `causelist_http_request_duration_seconds_count{method="GET",route="/api/search"} 1`)
	})

	t.Run("exposes runtime collectors", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, scrape(t, prometheus.NewMetrics()), "go_goroutines")
	})

	t.Run("registries are independent", func(t *testing.T) {
		t.Parallel()

		a, b := prometheus.NewMetrics(), prometheus.NewMetrics()
		a.ObserveSearch("cnr", prometheus.OutcomeOK, 0)

		assert.NotContains(t, scrape(t, b), `causelist_searches_total{mode="cnr"`)
	})
}

func TestFetcher(t *testing.T) {
	t.Parallel()

	m := prometheus.NewMetrics()
	calls := 0
	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			calls++
			if calls == 2 {
				return "", errors.New("HTTP 503")
			}
			return "<ul></ul>", nil
		},
		CloseFn: func() error { return nil },
	}
	f := prometheus.NewFetcher(inner, m)

	html, err := f.Fetch(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", html)
	_, err = f.Fetch(context.Background(), "https://example.com")
	require.Error(t, err)
	require.NoError(t, f.Close())

	out := scrape(t, m)
	assert.Contains(t, out, `causelist_fetch_duration_seconds_count{outcome="ok"} 1`)
	assert.Contains(t, out, `causelist_fetch_duration_seconds_count{outcome="error"} 1`)
}
