// Package server serves the scout dashboard as a web page and a small JSON API.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/etnz/scout"
	"github.com/etnz/scout/cache"
	"github.com/etnz/scout/chart"
	"github.com/etnz/scout/renderer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cache keys of the memoized sources.
const (
	ProjectsKey = "projects"
	NetworkKey  = "network"
	RoundsKey   = "rounds"
)

// CacheKeys lists every key dropped on refresh.
var CacheKeys = []string{ProjectsKey, NetworkKey, RoundsKey}

//go:embed page.html
var pageHTML string

var page = template.Must(template.New("page").Parse(pageHTML))

// Server computes the dashboard from memoized sources.
type Server struct {
	src   scout.Sources
	store cache.Store
	ttl   time.Duration

	// Today returns the day the dashboard is computed on.
	Today func() scout.Date
}

// New returns a Server fetching from src, caching results in store for ttl.
func New(src scout.Sources, store cache.Store, ttl time.Duration) *Server {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Server{src: src, store: store, ttl: ttl, Today: scout.Today}
}

type projectsFunc func(context.Context) ([]scout.Project, error)

func (f projectsFunc) Projects(ctx context.Context) ([]scout.Project, error) { return f(ctx) }

type networkFunc func(context.Context) ([]scout.Startup, error)

func (f networkFunc) Network(ctx context.Context) ([]scout.Startup, error) { return f(ctx) }

type roundsFunc func(context.Context, []string) ([]scout.FundingRound, error)

func (f roundsFunc) Rounds(ctx context.Context, permalinks []string) ([]scout.FundingRound, error) {
	return f(ctx, permalinks)
}

// sources returns the sources of s behind the cache.
func (s *Server) sources() scout.Sources {
	return scout.Sources{
		Projects: projectsFunc(cache.Memoize(s.store, ProjectsKey, s.ttl, s.src.Projects.Projects)),
		Network:  networkFunc(cache.Memoize(s.store, NetworkKey, s.ttl, s.src.Network.Network)),
		Rounds:   roundsFunc(s.cachedRounds),
	}
}

// roundsEntry is the cached result of the rounds source, with the permalinks it was
// fetched for.
type roundsEntry struct {
	Permalinks []string             `json:"permalinks"`
	Rounds     []scout.FundingRound `json:"rounds"`
}

// cachedRounds returns the rounds of permalinks, cached under RoundsKey. A cached
// entry fetched for other permalinks is dropped.
func (s *Server) cachedRounds(ctx context.Context, permalinks []string) ([]scout.FundingRound, error) {
	memo := cache.Memoize(s.store, RoundsKey, s.ttl, func(ctx context.Context) (roundsEntry, error) {
		rounds, err := s.src.Rounds.Rounds(ctx, permalinks)
		return roundsEntry{Permalinks: permalinks, Rounds: rounds}, err
	})
	e, err := memo(ctx)
	if err != nil {
		return nil, err
	}
	if slices.Equal(e.Permalinks, permalinks) {
		return e.Rounds, nil
	}
	if err := cache.Invalidate(ctx, s.store, RoundsKey); err != nil {
		return nil, err
	}
	if e, err = memo(ctx); err != nil {
		return nil, err
	}
	return e.Rounds, nil
}

// Dashboard computes the dashboard, from cached results when available.
func (s *Server) Dashboard(ctx context.Context) (*scout.Dashboard, error) {
	return scout.NewDashboard(ctx, s.sources(), s.Today())
}

// Refresh drops cached results.
func (s *Server) Refresh(ctx context.Context) error {
	return cache.Invalidate(ctx, s.store, CacheKeys...)
}

// Warm recomputes the dashboard from fresh results.
func (s *Server) Warm(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("cannot drop cached results: %w", err)
	}
	start := time.Now()
	if _, err := s.Dashboard(ctx); err != nil {
		return err
	}
	log.Printf("dashboard warmed in %v", time.Since(start))
	return nil
}

// Handler returns the gin engine serving s.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID())

	r.GET("/", s.page)
	r.GET("/health", s.health)
	r.POST("/refresh", s.refresh)

	api := r.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet},
		AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	api.GET("/billing", s.billing)
	api.GET("/rounds", s.rounds)
	return r
}

// Serve listens on addr until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		log.Printf("dashboard served on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type pageData struct {
	On          string
	AllTimeRate string
	RecentRate  string
	AllChart    template.JS
	RecentChart template.JS
	Rounds      template.HTML
}

// logError logs a failure to compute the dashboard for the request of c.
func logError(c *gin.Context, err error) {
	log.Printf("[req] id=%s dashboard: %v", GetRequestID(c.Request.Context()), err)
}

func (s *Server) page(c *gin.Context) {
	d, err := s.Dashboard(c.Request.Context())
	if err != nil {
		logError(c, err)
		c.String(http.StatusBadGateway, "cannot compute the dashboard: %v", err)
		return
	}

	data, err := newPageData(d)
	if err != nil {
		c.String(http.StatusInternalServerError, "cannot render the dashboard: %v", err)
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(c.Writer, data); err != nil {
		log.Printf("dashboard page: %v", err)
	}
}

func newPageData(d *scout.Dashboard) (*pageData, error) {
	view := renderer.NewDashboard(d)
	all, err := chart.BillingChart(d.Billing.Bars).JSON()
	if err != nil {
		return nil, err
	}
	recent, err := chart.BillingChart(d.Billing.Recent).JSON()
	if err != nil {
		return nil, err
	}
	rounds, err := renderer.HTML(renderer.RoundsMarkdown(d.LastWeek))
	if err != nil {
		return nil, err
	}
	return &pageData{
		On:          view.On,
		AllTimeRate: view.AllTimeRate,
		RecentRate:  view.RecentRate,
		AllChart:    template.JS(all),
		RecentChart: template.JS(recent),
		Rounds:      template.HTML(rounds),
	}, nil
}

// BillingResponse is the payload of GET /api/v1/billing.
type BillingResponse struct {
	On          scout.Date         `json:"on"`
	AllTimeRate *scout.Money       `json:"all_time_rate"`
	RecentRate  *scout.Money       `json:"recent_rate"`
	Projects    []scout.BillingBar `json:"projects"`
	Recent      []scout.BillingBar `json:"recent"`
}

func optional(m scout.Money, ok bool) *scout.Money {
	if !ok {
		return nil
	}
	return &m
}

func (s *Server) billing(c *gin.Context) {
	d, err := s.Dashboard(c.Request.Context())
	if err != nil {
		logError(c, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "request_id": GetRequestID(c.Request.Context())})
		return
	}
	c.JSON(http.StatusOK, BillingResponse{
		On:          d.On,
		AllTimeRate: optional(d.Billing.AllTimeRate()),
		RecentRate:  optional(d.Billing.RecentRate()),
		Projects:    d.Billing.Bars,
		Recent:      d.Billing.Recent,
	})
}

// RoundsResponse is the payload of GET /api/v1/rounds.
type RoundsResponse struct {
	From    scout.Date           `json:"from"`
	To      scout.Date           `json:"to"`
	Summary string               `json:"summary"`
	Total   scout.Money          `json:"total"`
	Rounds  []scout.FundingRound `json:"rounds"`
}

func (s *Server) rounds(c *gin.Context) {
	d, err := s.Dashboard(c.Request.Context())
	if err != nil {
		logError(c, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "request_id": GetRequestID(c.Request.Context())})
		return
	}
	r := d.LastWeek
	c.JSON(http.StatusOK, RoundsResponse{
		From:    r.From,
		To:      r.To,
		Summary: r.Summary(),
		Total:   r.Total,
		Rounds:  r.Rounds,
	})
}

func (s *Server) refresh(c *gin.Context) {
	if err := s.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
