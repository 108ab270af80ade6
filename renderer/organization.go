package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// OrganizationMarkdown renders a startup-data organization, and its funding history if
// card is not nil.
func OrganizationMarkdown(o scout.Organization, card *scout.OrganizationCard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(o.Name)
	if o.Description != "" {
		doc.PlainText(o.Description)
	}

	total := ""
	if o.FundingTotal != nil {
		total = o.FundingTotal.Dollars()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Property", "Value"},
	}
	for _, row := range [][]string{
		{"Website", o.Website},
		{"Permalink", o.Permalink},
		{"Location", o.Location},
		{"Founded", o.FoundedOn.String()},
		{"Employees", o.NumEmployees},
		{"Funding status", md.Bold(o.FundingStatus)},
		{"Last equity funding", o.LastEquityFundingType},
		{"Last funding", o.LastFundingAt.String()},
		{"Funding total", total},
		{"Categories", strings.Join(o.Categories, ", ")},
		{"Category groups", strings.Join(o.CategoryGroups, ", ")},
		{"Diversity", strings.Join(o.Diversity, ", ")},
	} {
		if row[1] != "" {
			table.Rows = append(table.Rows, row)
		}
	}
	doc.Table(table)
	out := doc.String()

	if card == nil {
		return out
	}
	var w strings.Builder
	w.WriteString(out)
	ConditionalBlock(&w, func(w io.Writer) bool {
		return cardMarkdown(w, card)
	})
	return w.String()
}

// cardMarkdown writes the funding history, it reports false when there is no round.
func cardMarkdown(w io.Writer, card *scout.OrganizationCard) bool {
	if len(card.Rounds) == 0 {
		return false
	}
	io.WriteString(w, "\n\n")
	doc := md.NewMarkdown(w)
	doc.H2("Funding history")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total funding"), md.Bold(card.TotalFunding().Dollars())},
		Rows: [][]string{
			{"Rounds since " + scout.VelocityCutoff.Format("2006"), fmt.Sprint(card.FundingVelocity(scout.VelocityCutoff))},
			{"Investors", strings.Join(card.Investors(), ", ")},
		},
	})

	rounds := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Announced", "Type", "Raised", "Investors"},
	}
	for _, r := range card.Rounds {
		raised := ""
		if r.Raised != nil {
			raised = r.Raised.Dollars()
		}
		rounds.Rows = append(rounds.Rows, []string{r.AnnouncedOn.String(), r.InvestmentType, raised, strings.Join(r.Investors, ", ")})
	}
	doc.Table(rounds)
	return doc.Build() == nil
}
