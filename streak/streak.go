// Package streak reads the startup network pipeline of the Streak CRM.
package streak

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/etnz/scout"
)

// DefaultBaseURL is the Streak API root.
const DefaultBaseURL = "https://www.streak.com/api"

// Client reads pipelines of the CRM.
type Client struct {
	BaseURL  string
	Key      string // pre-encoded basic authentication credentials
	Pipeline string // default pipeline key, the startup network
	HTTP     *http.Client
}

// New returns a client for the startup network pipeline, with a daily cache in cacheDir.
func New(key, pipeline, cacheDir string) *Client {
	return &Client{
		BaseURL:  DefaultBaseURL,
		Key:      key,
		Pipeline: pipeline,
		HTTP:     scout.NewClient(scout.RetryPolicy{Max: 5, Factor: time.Second}, cacheDir),
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	header := http.Header{"Authorization": {"Basic " + c.Key}}
	return scout.DoJSON(ctx, c.HTTP, http.MethodGet, c.BaseURL+path, header, nil, out)
}

// Pipeline is a CRM pipeline.
type Pipeline struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Pipelines lists the pipelines of the account.
func (c *Client) Pipelines(ctx context.Context) ([]Pipeline, error) {
	var pipes []Pipeline
	if err := c.get(ctx, "/v1/pipelines", &pipes); err != nil {
		return nil, fmt.Errorf("cannot list pipelines: %w", err)
	}
	return pipes, nil
}

// Contact is a person attached to a box.
type Contact struct {
	FamilyName string   `json:"familyName"`
	GivenName  string   `json:"givenName"`
	Emails     []string `json:"emailAddresses"`
	Title      string   `json:"title"`
}

// Contact returns a contact by key.
func (c *Client) Contact(ctx context.Context, key string) (*Contact, error) {
	var contact Contact
	if err := c.get(ctx, "/v2/contacts/"+url.PathEscape(key), &contact); err != nil {
		return nil, fmt.Errorf("cannot get contact %s: %w", key, err)
	}
	return &contact, nil
}

// Stage is a step of a pipeline.
type Stage struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Stages returns the stages of a pipeline by key.
func (c *Client) Stages(ctx context.Context, pipeline string) (map[string]Stage, error) {
	// {"5001": {"name": "Lead", "key": "5001", "backgroundColor": "#..."}, ...}
	stages := make(map[string]Stage)
	if err := c.get(ctx, "/v1/pipelines/"+url.PathEscape(pipeline)+"/stages", &stages); err != nil {
		return nil, fmt.Errorf("cannot list stages of %s: %w", pipeline, err)
	}
	return stages, nil
}

// Box is an item of a pipeline, a startup in the startup network.
type Box struct {
	Key              string
	Name             string
	StageKey         string
	Stage            string // stage name
	Fields           map[string]any
	Created          time.Time
	Updated          time.Time
	CallLogCount     int
	GmailThreadCount int
	HasContacts      bool
}

// millis is a timestamp in milliseconds.
type millis int64

func (m millis) time() time.Time {
	if m == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(m)).UTC()
}

// Boxes lists the boxes of a pipeline by creation time, with their stage name.
func (c *Client) Boxes(ctx context.Context, pipeline string) ([]Box, error) {
	// [
	//   {
	//     "key": "agxzfm1haWxmb29nYWVy...", "name": "Acme", "stageKey": "5001",
	//     "fields": {"1001": "https://acme.io", "1003": ["9001", "9003"]},
	//     "creationTimestamp": 1600000000000, "lastUpdatedTimestamp": 1650000000000,
	//     "callLogCount": 0, "gmailThreadCount": 2, "contacts": [{"key": "..."}]
	//   }
	// ]
	type Info struct {
		Key                  string            `json:"key"`
		Name                 string            `json:"name"`
		StageKey             string            `json:"stageKey"`
		Fields               map[string]any    `json:"fields"`
		CreationTimestamp    millis            `json:"creationTimestamp"`
		LastUpdatedTimestamp millis            `json:"lastUpdatedTimestamp"`
		CallLogCount         int               `json:"callLogCount"`
		GmailThreadCount     int               `json:"gmailThreadCount"`
		Contacts             []json.RawMessage `json:"contacts"`
	}

	stages, err := c.Stages(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var content []Info
	if err := c.get(ctx, "/v1/pipelines/"+url.PathEscape(pipeline)+"/boxes", &content); err != nil {
		return nil, fmt.Errorf("cannot list boxes of %s: %w", pipeline, err)
	}

	boxes := make([]Box, 0, len(content))
	for _, info := range content {
		boxes = append(boxes, Box{
			Key:              info.Key,
			Name:             info.Name,
			StageKey:         info.StageKey,
			Stage:            stages[info.StageKey].Name,
			Fields:           info.Fields,
			Created:          info.CreationTimestamp.time(),
			Updated:          info.LastUpdatedTimestamp.time(),
			CallLogCount:     info.CallLogCount,
			GmailThreadCount: info.GmailThreadCount,
			HasContacts:      info.Contacts != nil,
		})
	}
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Created.Before(boxes[j].Created) })
	return boxes, nil
}

// Field is a custom column of a pipeline.
//
// Raw holds the whole field definition, tag and dropdown settings are read from it.
type Field struct {
	Key  string
	Name string
	Type string
	Raw  any
}

// Fields lists the custom fields of a pipeline.
func (c *Client) Fields(ctx context.Context, pipeline string) ([]Field, error) {
	var content []map[string]any
	if err := c.get(ctx, "/v1/pipelines/"+url.PathEscape(pipeline)+"/fields", &content); err != nil {
		return nil, fmt.Errorf("cannot list fields of %s: %w", pipeline, err)
	}
	fields := make([]Field, 0, len(content))
	for _, raw := range content {
		f := Field{Raw: raw}
		f.Key, _ = raw["key"].(string)
		f.Name, _ = raw["name"].(string)
		f.Type, _ = raw["type"].(string)
		fields = append(fields, f)
	}
	return fields, nil
}

// FieldByName returns the first field with that name.
func FieldByName(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
