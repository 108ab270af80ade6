package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// RoundText describes a round in one line, e.g.
// "[Acme](https://acme.io) raised [$2.5M](https://www.crunchbase.com/organization/acme) from Fund One".
func RoundText(r scout.FundingRound) string {
	name := r.Name
	if r.Website != "" {
		name = md.Link(r.Name, r.Website)
	}
	raised := md.Link(r.RaisedOrZero().Short(), r.URL)
	if len(r.Investors) == 0 {
		return fmt.Sprintf("%s raised %s", name, raised)
	}
	return fmt.Sprintf("%s raised %s from %s", name, raised, r.InvestorList())
}

// RoundsMarkdown renders the summary line followed by one bullet per round.
func RoundsMarkdown(r *scout.RoundsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.PlainText(r.Summary() + "\n")
	items := make([]string, 0, len(r.Rounds))
	for _, round := range r.Rounds {
		items = append(items, RoundText(round))
	}
	if len(items) > 0 {
		doc.BulletList(items...)
	}
	return doc.String()
}

// RoundsTableMarkdown renders rounds as a table, by announce date.
func RoundsTableMarkdown(rounds []scout.FundingRound) string {
	rounds = append([]scout.FundingRound(nil), rounds...)
	sort.SliceStable(rounds, func(i, j int) bool { return rounds[i].AnnouncedOn.Before(rounds[j].AnnouncedOn) })

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Name", "Announced", "Created", "Type", "Investors", "Investor names", "Raised", "Stage"},
	}
	for _, r := range rounds {
		raised := ""
		if r.Raised != nil {
			raised = r.Raised.Dollars()
		}
		table.Rows = append(table.Rows, []string{
			r.Name,
			r.AnnouncedOn.String(),
			r.CreatedAt.String(),
			r.InvestmentType,
			fmt.Sprint(r.NumInvestors),
			r.InvestorList(),
			raised,
			r.Stage,
		})
	}
	doc.Table(table)
	return doc.String()
}
