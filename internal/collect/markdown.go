package collect

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// Renderer converts markdown post bodies to HTML.
type Renderer struct {
	md       goldmark.Markdown
	sanitize bool
}

// NewRenderer builds a markdown renderer with GFM extensions, syntax
// highlighting for fenced code blocks, and a transformer that rewrites
// .md links between posts to their .html output names. Output is
// sanitized unless unsafe is set.
func NewRenderer(unsafe bool) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				// CSS classes instead of inline styles, so the site
				// stylesheet controls the color scheme.
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newPostLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md, sanitize: !unsafe}
}

// Render converts a markdown fragment to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	if r.sanitize {
		return string(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}
