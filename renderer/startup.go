package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// StartupMarkdown renders what the CRM knows about a startup, followed by its rounds.
func StartupMarkdown(s scout.Startup, rounds []scout.FundingRound) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := s.Name
	if s.Website != "" {
		title = md.Link(s.Name, s.Website)
	}
	doc.H1(title)

	items := []string{
		fmt.Sprintf("%s: %s", md.Bold("Stage"), s.Stage),
		fmt.Sprintf("%s: %s", md.Bold("Contact"), s.Contact),
	}
	if s.Quality != "" {
		items = append(items, fmt.Sprintf("%s: %s", md.Bold("Quality"), s.Quality))
	}
	if s.Permalink != "" {
		items = append(items, fmt.Sprintf("%s: %s", md.Bold("Startup data"), md.Link(s.Permalink, scout.OrganizationURL+s.Permalink)))
	}
	doc.BulletList(items...)

	var rows [][]string
	for _, name := range scout.StartupFields {
		v, ok := s.Field(name)
		if !ok || v.String() == "" || name == "Website" || name == "permalink" {
			continue
		}
		rows = append(rows, []string{name, v.String()})
	}
	if len(rows) > 0 {
		doc.H2("Fields")
		doc.Table(md.TableSet{
			Header:    []string{"Field", "Value"},
			Rows:      rows,
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		})
	}

	if len(rounds) > 0 {
		doc.H2("Funding rounds")
		items := make([]string, 0, len(rounds))
		for _, r := range rounds {
			items = append(items, fmt.Sprintf("%s: %s", r.AnnouncedOn, RoundText(r)))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}
