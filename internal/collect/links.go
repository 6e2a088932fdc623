package collect

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// postLinkTransformer rewrites links between posts. A post links to a
// sibling by its source name ("other-post.md"), but the built site only
// contains the .html outputs, so the destination is rewritten.
type postLinkTransformer struct{}

func newPostLinkTransformer() parser.ASTTransformer {
	return &postLinkTransformer{}
}

func (t *postLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if bytes.HasSuffix(link.Destination, []byte(".md")) {
			dest := bytes.TrimSuffix(link.Destination, []byte(".md"))
			link.Destination = append(dest, []byte(".html")...)
		}
		return ast.WalkContinue, nil
	})
}
