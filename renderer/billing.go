package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// rate formats an hourly rate, "n/a" when undefined.
func rate(m scout.Money, ok bool) string {
	if !ok {
		return "n/a"
	}
	return m.PerHour()
}

func BillingMarkdown(r *scout.BillingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Billing rates")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("All-time Hourly Rate"),
			md.Bold(rate(r.AllTimeRate())),
		},
		Rows: [][]string{
			{"Active Hourly Rate", rate(r.RecentRate())},
		},
	})

	doc.H2("All time history of Toggl projects")
	doc.Table(projectsTable(r.Bars))

	if len(r.Recent) > 0 {
		doc.H2("Active or <7 day old projects only")
		doc.Table(projectsTable(r.Recent))
	}
	return doc.String()
}

func projectsTable(bars []scout.BillingBar) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Project", "Client", "Hours", "Fee to date", "Effective rate", "End date"},
	}
	for _, b := range bars {
		table.Rows = append(table.Rows, []string{
			b.Project.Name,
			b.Project.Client,
			fmt.Sprintf("%.0f", b.Hours),
			b.FeeToDate.Dollars(),
			b.Rate.PerHour(),
			b.Project.EndDate.String(),
		})
	}
	return table
}
