package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/etnz/scout"
	"github.com/etnz/scout/cache"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var on = scout.NewDate(2025, 6, 16)

func usd(v float64) *scout.Money {
	m := scout.USD(v)
	return &m
}

// fakeSources counts the calls to each source.
type fakeSources struct {
	projects, network, rounds int
	err                       error
}

func (f *fakeSources) Projects(ctx context.Context) ([]scout.Project, error) {
	f.projects++
	return []scout.Project{
		{Name: "Alpha", Client: "Acme", StartDate: scout.NewDate(2025, 6, 6), EndDate: scout.NewDate(2025, 6, 26), FixedFee: usd(20000), ActualHours: 50},
	}, nil
}

func (f *fakeSources) Network(ctx context.Context) ([]scout.Startup, error) {
	f.network++
	if f.err != nil {
		return nil, f.err
	}
	return []scout.Startup{
		{Name: "Acme", Permalink: "acme", Website: "https://acme.io", Domain: "acme.io", Stage: "Lead"},
	}, nil
}

func (f *fakeSources) Rounds(ctx context.Context, permalinks []string) ([]scout.FundingRound, error) {
	f.rounds++
	return []scout.FundingRound{
		{Name: "Acme", Permalink: "acme", AnnouncedOn: on.Add(-2), Raised: usd(2_500_000), Investors: []string{"Fund One"}, URL: scout.OrganizationURL + "acme"},
	}, nil
}

func setupServer(t *testing.T, store cache.Store) (*Server, *fakeSources) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fakeSources{}
	s := New(scout.Sources{Projects: f, Network: f, Rounds: f}, store, 0)
	s.Today = func() scout.Date { return on }
	return s, f
}

func serve(s *Server, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	s, f := setupServer(t, cache.NewMemory())
	rr := serve(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"healthy"`)
	assert.Zero(t, f.projects, "health must not fetch")
}

func TestBilling(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())
	rr := serve(s, http.MethodGet, "/api/v1/billing", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		On          string  `json:"on"`
		AllTimeRate float64 `json:"all_time_rate"`
		Projects    []struct {
			Label string
			Hours float64
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "2025-06-16", got.On)
	assert.Equal(t, 200.0, got.AllTimeRate)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "Alpha, $20k", got.Projects[0].Label)
	assert.Equal(t, 50.0, got.Projects[0].Hours)
}

func TestRounds(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())
	rr := serve(s, http.MethodGet, "/api/v1/rounds", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got RoundsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "$2M raised in 1 rounds last week", got.Summary)
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, "https://acme.io", got.Rounds[0].Website)
}

func TestPage(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())
	rr := serve(s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "Scout dashboard, 2025-06-16")
	assert.Contains(t, body, "$200/hr")
	assert.Contains(t, body, `Plotly.newPlot("all-projects", {"data":`)
	assert.Contains(t, body, `<a href="https://acme.io">Acme</a> raised`)
}

func TestSourceError(t *testing.T) {
	s, f := setupServer(t, cache.NewMemory())
	f.err = errors.New("streak is down")

	rr := serve(s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "streak is down")

	rr = serve(s, http.MethodGet, "/api/v1/billing", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), `"request_id":"abc-123"`)
}

func TestCachedRounds(t *testing.T) {
	s, f := setupServer(t, cache.NewMemory())
	ctx := context.Background()

	_, err := s.cachedRounds(ctx, []string{"acme"})
	require.NoError(t, err)
	_, err = s.cachedRounds(ctx, []string{"acme"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.rounds, "same permalinks must be served from the cache")

	_, err = s.cachedRounds(ctx, []string{"acme", "beta"})
	require.NoError(t, err)
	assert.Equal(t, 2, f.rounds, "other permalinks must be fetched")

	rounds, err := s.cachedRounds(ctx, []string{"acme", "beta"})
	require.NoError(t, err)
	assert.Equal(t, 2, f.rounds)
	assert.Len(t, rounds, 1)
}

func TestGetRequestID(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestCachedAndRefresh(t *testing.T) {
	s, f := setupServer(t, cache.NewMemory())

	serve(s, http.MethodGet, "/api/v1/billing", nil)
	serve(s, http.MethodGet, "/api/v1/rounds", nil)
	assert.Equal(t, 1, f.projects)
	assert.Equal(t, 1, f.network)
	assert.Equal(t, 1, f.rounds)

	rr := serve(s, http.MethodPost, "/refresh", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	serve(s, http.MethodGet, "/", nil)
	assert.Equal(t, 2, f.projects)
	assert.Equal(t, 2, f.network)
	assert.Equal(t, 2, f.rounds)
}

func TestCachedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s, f := setupServer(t, cache.NewRedis(client, cache.DefaultPrefix))

	serve(s, http.MethodGet, "/api/v1/billing", nil)
	serve(s, http.MethodGet, "/api/v1/billing", nil)
	assert.Equal(t, 1, f.projects)
	assert.True(t, mr.Exists(cache.DefaultPrefix+ProjectsKey))
	assert.True(t, mr.Exists(cache.DefaultPrefix+RoundsKey))

	require.NoError(t, s.Warm(context.Background()))
	assert.Equal(t, 2, f.projects)
}

func TestRequestID(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())

	rr := serve(s, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	rr = serve(s, http.MethodGet, "/health", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())
	rr := serve(s, http.MethodGet, "/api/v1/rounds", http.Header{"Origin": {"https://example.com"}})
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewWarmer(t *testing.T) {
	s, _ := setupServer(t, cache.NewMemory())

	c, err := NewWarmer(s, "0 6 * * *")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = NewWarmer(s, "every morning")
	assert.Error(t, err)
}
