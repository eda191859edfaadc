package report

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTML converts a rendered diagnosis into a standalone HTML page.
func HTML(md string, title string) []byte {
	if title == "" {
		title = DefaultTitle
	}

	// gomarkdown parsers keep state, so a fresh one is needed per document.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})

	return markdown.ToHTML([]byte(md), p, r)
}
