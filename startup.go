package scout

import (
	"slices"
	"strings"
	"time"
)

// Pipeline stages with a meaning for the dashboard.
const (
	StagePortfolio  = "Portfolio Company"
	StageEngaged    = "Engaged"
	StageOutOfScope = "Out of Scope"
)

// Contact levels, from the closest relationship to the loosest.
const (
	ContactPortfolio   = "PHV Portfolio"
	ContactInterviewed = "Interviewed"
	ContactEmail       = "Email contact"
	ContactDatabase    = "Database-only"
)

// Qualities is the quality check vocabulary, from the best to the least assessed.
var Qualities = []string{
	"Recommended with confidence",
	"Recommended",
	"Limited recommendations",
	"No recommendations",
	"Initial impression: good",
	"Initial impression: some concerns",
	"Initial impression: poor",
	"Prioritized Lead",
}

// QualityRank returns the position of quality in Qualities, or -1 if unknown.
func QualityRank(quality string) int { return slices.Index(Qualities, quality) }

// StartupFields are the names of the CRM custom fields read for every startup.
var StartupFields = []string{
	"Primary Category",
	"Thesis Sector",
	"Hardware/Software",
	"Focus",
	"Description",
	"Headquarters",
	"Quality Check",
	"Funding Status",
	"Partner Scouting",
	"Website",
	"Customer Type",
	"Funding Total",
	"Powerhouse Perspective",
	"Diversity Spotlight",
	"permalink",
}

// FieldValue is the decoded value of a CRM custom field: a single label or text,
// or a sorted list of tags.
type FieldValue struct {
	Text   string   `json:"text,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	IsList bool     `json:"is_list,omitempty"`
}

// String returns the text, or the tags joined by commas.
func (v FieldValue) String() string {
	if v.IsList {
		return strings.Join(v.Tags, ", ")
	}
	return v.Text
}

// Contains reports whether label is the value or one of its tags.
func (v FieldValue) Contains(label string) bool {
	if v.IsList {
		return slices.Contains(v.Tags, label)
	}
	return strings.Contains(v.Text, label)
}

// Startup is a company in the startup network pipeline of the CRM.
//
// Its identity is the CRM key; Permalink links it to the startup-data service.
type Startup struct {
	Key              string                `json:"key"`
	Name             string                `json:"name"`
	Stage            string                `json:"stage"`
	Website          string                `json:"website,omitempty"`
	Domain           string                `json:"domain,omitempty"`
	Permalink        string                `json:"permalink,omitempty"`
	Fields           map[string]FieldValue `json:"fields,omitempty"`
	Quality          string                `json:"quality,omitempty"`
	QualityRank      int                   `json:"quality_rank"`
	Focus            map[string]bool       `json:"focus,omitempty"`
	Contact          string                `json:"contact"`
	Created          time.Time             `json:"created"`
	Updated          time.Time             `json:"updated"`
	CallLogCount     int                   `json:"call_log_count"`
	GmailThreadCount int                   `json:"gmail_thread_count"`
	HasContacts      bool                  `json:"has_contacts"`
}

// Field returns the value of a custom field by name, false if absent.
func (s Startup) Field(name string) (FieldValue, bool) {
	v, ok := s.Fields[name]
	return v, ok
}

// ContactLevel returns how close the relationship with a startup is.
//
// Meeting notes are about companies rather than with them, only logged calls count as
// interviews.
func ContactLevel(s Startup) string {
	switch {
	case s.Stage == StagePortfolio:
		return ContactPortfolio
	case s.CallLogCount > 0 || s.Stage == StageEngaged:
		return ContactInterviewed
	case s.HasContacts || s.GmailThreadCount > 0:
		return ContactEmail
	default:
		return ContactDatabase
	}
}

// PermalinkOf returns the last path segment of a startup-data url, e.g. "acme" for
// "https://www.crunchbase.com/organization/acme".
func PermalinkOf(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// Permalinks returns the permalinks of startups that have one and whose domain can
// identify a company, once each, in first-seen order.
func Permalinks(startups []Startup) []string {
	seen := make(map[string]bool)
	var permalinks []string
	for _, s := range startups {
		if s.Permalink == "" || IsExcludedDomain(s.Domain) || seen[s.Permalink] {
			continue
		}
		seen[s.Permalink] = true
		permalinks = append(permalinks, s.Permalink)
	}
	return permalinks
}
