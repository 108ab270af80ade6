// Package toggl fetches fixed-fee projects from the Toggl Track API.
package toggl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/scout"
)

// DefaultBaseURL is the Toggl Track API root.
const DefaultBaseURL = "https://api.track.toggl.com"

// Client reads one workspace of the time-tracking service.
type Client struct {
	BaseURL   string
	Key       string // pre-encoded basic authentication credentials
	Workspace string
	HTTP      *http.Client
}

// New returns a client for a workspace, using the default retry policy and a daily
// cache in cacheDir.
func New(key, workspace, cacheDir string) *Client {
	return &Client{
		BaseURL:   DefaultBaseURL,
		Key:       key,
		Workspace: workspace,
		HTTP:      scout.NewClient(scout.RetryPolicy{Max: 5, Factor: time.Second}, cacheDir),
	}
}

// get decodes a workspace endpoint into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	addr := fmt.Sprintf("%s/api/v9/workspaces/%s/%s", c.BaseURL, c.Workspace, endpoint)
	header := http.Header{"Authorization": {"Basic " + c.Key}}
	return scout.DoJSON(ctx, c.HTTP, http.MethodGet, addr, header, nil, out)
}

// ClientInfo is a customer of the workspace.
type ClientInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clients lists the customers of the workspace.
func (c *Client) Clients(ctx context.Context) ([]ClientInfo, error) {
	// GET /api/v9/workspaces/{ws}/clients
	// [
	//   {"id": 61234567, "wid": 4691435, "archived": false, "name": "Acme Corp", "at": "2024-02-13T10:11:12+00:00"}
	// ]
	var clients []ClientInfo
	if err := c.get(ctx, "clients", &clients); err != nil {
		return nil, fmt.Errorf("cannot list toggl clients: %w", err)
	}
	return clients, nil
}

// RawProject is a project as returned by the API, absent values are nil.
type RawProject struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ClientID    *int64     `json:"client_id"`
	Active      bool       `json:"active"`
	StartDate   scout.Date `json:"start_date"`
	EndDate     scout.Date `json:"end_date"`
	FixedFee    *float64   `json:"fixed_fee"`
	ActualHours *float64   `json:"actual_hours"`
	Currency    *string    `json:"currency"`
}

// RawProjects lists the projects of the workspace.
func (c *Client) RawProjects(ctx context.Context) ([]RawProject, error) {
	// GET /api/v9/workspaces/{ws}/projects
	// [
	//   {
	//     "id": 202212345, "name": "Market scan", "client_id": 61234567, "active": true,
	//     "start_date": "2024-01-08", "end_date": "2024-03-29",
	//     "fixed_fee": 25000, "actual_hours": 112, "currency": "USD", ...
	//   }
	// ]
	var projects []RawProject
	if err := c.get(ctx, "projects", &projects); err != nil {
		return nil, fmt.Errorf("cannot list toggl projects: %w", err)
	}
	return projects, nil
}

// Projects lists the projects of the workspace that belong to a known client.
func (c *Client) Projects(ctx context.Context) ([]scout.Project, error) {
	clients, err := c.Clients(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := c.RawProjects(ctx)
	if err != nil {
		return nil, err
	}
	return Join(raw, clients), nil
}

// Join converts the projects that have a known client, in order.
func Join(raw []RawProject, clients []ClientInfo) []scout.Project {
	names := make(map[int64]string, len(clients))
	for _, cl := range clients {
		names[cl.ID] = cl.Name
	}

	projects := make([]scout.Project, 0, len(raw))
	for _, r := range raw {
		if r.ClientID == nil {
			continue
		}
		client, ok := names[*r.ClientID]
		if !ok {
			continue
		}
		p := scout.Project{
			ID:        r.ID,
			Name:      r.Name,
			Client:    client,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		}
		if r.FixedFee != nil {
			fee := scout.USD(*r.FixedFee)
			p.FixedFee = &fee
		}
		if r.ActualHours != nil {
			p.ActualHours = *r.ActualHours
		}
		projects = append(projects, p)
	}
	return projects
}
