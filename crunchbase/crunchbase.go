// Package crunchbase searches organizations and funding rounds in the Crunchbase v4 API.
package crunchbase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/scout"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Crunchbase v4 API root.
const DefaultBaseURL = "https://api.crunchbase.com/api/v4"

// MaxBatch is the largest number of identifiers a single search accepts.
const MaxBatch = 200

// searchLimit is the number of entities requested per search.
const searchLimit = 1000

// Client queries the startup-data service.
type Client struct {
	BaseURL string
	Key     string // user_key
	HTTP    *http.Client
	Limiter *rate.Limiter // nil for no limit
}

// New returns a client that stays below 200 calls a minute and caches responses for the
// day in cacheDir.
func New(key, cacheDir string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Key:     key,
		HTTP:    scout.NewClient(scout.RetryPolicy{Max: 5, Factor: 2 * time.Second}, cacheDir),
		Limiter: rate.NewLimiter(rate.Every(time.Minute/200), 1),
	}
}

// do sends a request authenticated with the user key.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("user_key", c.Key)
	addr := c.BaseURL + path + "?" + query.Encode()
	return scout.DoJSON(ctx, c.HTTP, method, addr, nil, body, out)
}

// Entity is a search result, its properties are the requested fields.
type Entity struct {
	UUID       string         `json:"uuid"`
	Properties map[string]any `json:"properties"`
}

// searchResponse is the payload of every search endpoint.
type searchResponse struct {
	Count    int      `json:"count"`
	Entities []Entity `json:"entities"`
}

// Predicate is a search condition.
type Predicate struct {
	Type     string   `json:"type"`
	FieldID  string   `json:"field_id"`
	Operator string   `json:"operator_id"`
	Values   []string `json:"values"`
}

// Order is a search sort criteria.
type Order struct {
	FieldID string `json:"field_id"`
	Sort    string `json:"sort"`
}

// Query is a search request.
type Query struct {
	FieldIDs []string    `json:"field_ids"`
	Query    []Predicate `json:"query"`
	Order    []Order     `json:"order"`
	Limit    int         `json:"limit"`
}

// newestFirst orders results by decreasing creation.
var newestFirst = []Order{{FieldID: "created_at", Sort: "desc"}}

// search runs a query on a collection ("organizations", "funding_rounds").
func (c *Client) search(ctx context.Context, collection string, q Query) ([]Entity, error) {
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/searches/"+collection, nil, q, &resp); err != nil {
		return nil, fmt.Errorf("cannot search %s: %w", collection, err)
	}
	if resp.Count == 0 {
		return nil, nil
	}
	return resp.Entities, nil
}

// chunks splits values into slices of at most n.
func chunks(values []string, n int) [][]string {
	var batches [][]string
	for len(values) > n {
		batches = append(batches, values[:n])
		values = values[n:]
	}
	if len(values) > 0 {
		batches = append(batches, values)
	}
	return batches
}
