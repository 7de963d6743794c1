package content

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func md() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)
	})
	return markdown
}

// RenderMarkdown converts editorial markdown to HTML. On conversion
// failure the source text is returned unchanged so content still renders.
func RenderMarkdown(source string) string {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md().Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}

// RenderedProgram is a Program with its long description rendered to HTML.
type RenderedProgram struct {
	Program
	LongDescriptionHTML string `json:"longDescriptionHtml,omitempty"`
}

func RenderProgram(p Program) RenderedProgram {
	return RenderedProgram{
		Program:             p,
		LongDescriptionHTML: RenderMarkdown(p.LongDescription),
	}
}
