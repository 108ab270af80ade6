package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown styles markdown for the terminal, unchanged if that fails.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		return md
	}
	return out
}

// printMarkdown prints markdown styled for the terminal.
func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}
