package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// contactLevels in order of closeness.
var contactLevels = []string{scout.ContactPortfolio, scout.ContactInterviewed, scout.ContactEmail, scout.ContactDatabase}

// NetworkMarkdown renders startup counts by stage, contact level and quality.
func NetworkMarkdown(startups []scout.Startup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Startup network")
	doc.PlainText(fmt.Sprintf("%d startups, %d with a startup-data permalink.", len(startups), len(scout.Permalinks(startups))))

	stages := make(map[string]int)
	contacts := make(map[string]int)
	qualities := make(map[string]int)
	for _, s := range startups {
		stages[s.Stage]++
		contacts[s.Contact]++
		if s.Quality != "" {
			qualities[s.Quality]++
		}
	}

	doc.H2("By stage")
	names := make([]string, 0, len(stages))
	for name := range stages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if stages[names[i]] != stages[names[j]] {
			return stages[names[i]] > stages[names[j]]
		}
		return names[i] < names[j]
	})
	doc.Table(countTable("Stage", names, stages))

	doc.H2("By contact")
	doc.Table(countTable("Contact", contactLevels, contacts))

	if len(qualities) > 0 {
		doc.H2("By quality")
		doc.Table(countTable("Quality", scout.Qualities, qualities))
	}
	return doc.String()
}

// countTable lists the non zero counts of keys, in order.
func countTable(title string, keys []string, counts map[string]int) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{title, "Startups"},
	}
	for _, k := range keys {
		if counts[k] == 0 {
			continue
		}
		label := k
		if label == "" {
			label = "(none)"
		}
		table.Rows = append(table.Rows, []string{label, fmt.Sprint(counts[k])})
	}
	return table
}
