package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/scout"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// Dashboard is the view of a scout.Dashboard rendered by RenderDashboard.
type Dashboard struct {
	On          string
	AllTimeRate string
	RecentRate  string
	Projects    int
	Recent      int
	Summary     string
	Rounds      []string
}

// NewDashboard prepares the view of d.
func NewDashboard(d *scout.Dashboard) *Dashboard {
	v := &Dashboard{
		On:          d.On.String(),
		AllTimeRate: rate(d.Billing.AllTimeRate()),
		RecentRate:  rate(d.Billing.RecentRate()),
		Projects:    len(d.Billing.Bars),
		Recent:      len(d.Billing.Recent),
		Summary:     d.LastWeek.Summary(),
	}
	for _, r := range d.LastWeek.Rounds {
		v.Rounds = append(v.Rounds, RoundText(r))
	}
	return v
}

// RenderDashboard renders the dashboard to a markdown string.
func RenderDashboard(d *scout.Dashboard) string {
	partials := map[string]string{
		"dashboard_title":   "dashboard_title.md",
		"dashboard_billing": "dashboard_billing.md",
		"dashboard_rounds":  "dashboard_rounds.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, NewDashboard(d))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
