package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/scout"
	md "github.com/nao1215/markdown"
)

// WordsMarkdown renders the top most frequent words, all of them if top <= 0.
func WordsMarkdown(words []scout.WordCount, top int) string {
	if top > 0 && len(words) > top {
		words = words[:top]
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Word", "Count"},
	}
	for _, w := range words {
		table.Rows = append(table.Rows, []string{w.Word, fmt.Sprint(w.Count)})
	}
	doc.Table(table)
	return doc.String()
}
