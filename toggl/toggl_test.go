package toggl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/scout"
)

func fakeToggl(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	auth := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Basic c2VjcmV0" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			h(w, r)
		}
	}
	mux.HandleFunc("/api/v9/workspaces/42/clients", auth(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": 1, "name": "Acme Corp"}, {"id": 2, "name": "Beta LLC"}]`)
	}))
	mux.HandleFunc("/api/v9/workspaces/42/projects", auth(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id": 10, "name": "Market scan", "client_id": 1, "start_date": "2024-01-08", "end_date": "2024-03-29", "fixed_fee": 25000, "actual_hours": 112},
			{"id": 11, "name": "Internal", "client_id": null, "start_date": "2024-01-08"},
			{"id": 12, "name": "Orphan", "client_id": 99, "start_date": "2024-01-08"},
			{"id": 13, "name": "Diligence", "client_id": 2, "start_date": "2024-05-01", "end_date": null, "fixed_fee": null, "actual_hours": null}
		]`)
	}))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL:   srv.URL,
		Key:       "c2VjcmV0",
		Workspace: "42",
		HTTP:      scout.NewClient(scout.RetryPolicy{Max: 1, Factor: time.Millisecond}, ""),
	}
}

func TestProjects(t *testing.T) {
	c := newTestClient(fakeToggl(t))

	projects, err := c.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects() error = %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len(Projects()) = %d, want 2: %v", len(projects), projects)
	}

	scan := projects[0]
	if scan.Name != "Market scan" || scan.Client != "Acme Corp" {
		t.Errorf("Projects()[0] = %q of %q, want Market scan of Acme Corp", scan.Name, scan.Client)
	}
	if scan.FixedFee == nil || !scan.FixedFee.Equal(scout.USD(25000)) || scan.ActualHours != 112 {
		t.Errorf("Projects()[0] fee = %v hours = %v", scan.FixedFee, scan.ActualHours)
	}
	if scan.StartDate != scout.NewDate(2024, 1, 8) || scan.EndDate != scout.NewDate(2024, 3, 29) {
		t.Errorf("Projects()[0] dates = %v %v", scan.StartDate, scan.EndDate)
	}

	dil := projects[1]
	if dil.FixedFee != nil || !dil.EndDate.IsZero() || dil.ActualHours != 0 {
		t.Errorf("absent values must stay absent, got %+v", dil)
	}
}

func TestProjects_Unauthorized(t *testing.T) {
	c := newTestClient(fakeToggl(t))
	c.Key = "wrong"
	if _, err := c.Projects(context.Background()); err == nil {
		t.Errorf("Projects() with a wrong key want error")
	}
}
