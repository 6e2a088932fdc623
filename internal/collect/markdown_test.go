package collect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_ConvertsMarkdown(t *testing.T) {
	out, err := NewRenderer(false).Render("# Title\n\nSome *emphasis*.\n")
	require.NoError(t, err)
	require.Contains(t, out, "Title")
	require.Contains(t, out, "<em>emphasis</em>")
}

func TestRenderer_RewritesPostLinks(t *testing.T) {
	out, err := NewRenderer(false).Render("[next](other-post.md)\n")
	require.NoError(t, err)
	require.Contains(t, out, `href="other-post.html"`)
}

func TestRenderer_SanitizesRawHTML(t *testing.T) {
	out, err := NewRenderer(false).Render("hello <script>alert(1)</script>\n")
	require.NoError(t, err)
	require.NotContains(t, out, "<script>")
}

func TestRenderer_UnsafeKeepsRawHTML(t *testing.T) {
	out, err := NewRenderer(true).Render("a <b onclick=\"x()\">button</b>\n")
	require.NoError(t, err)
	require.Contains(t, out, "onclick")
}

func TestRenderer_HighlightsFencedCode(t *testing.T) {
	// Highlighting emits CSS classes; sanitization keeps <pre>/<code>.
	out, err := NewRenderer(true).Render("```go\npackage main\n```\n")
	require.NoError(t, err)
	require.Contains(t, out, "<pre")
	require.Contains(t, out, "chroma")
}
