package tree

import (
	"bytes"
	"strings"
	"testing"

	tu "github.com/benoitkugler/boxtree/utils/testutils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestNewHTML(t *testing.T) {
	doc, err := NewHTMLFromString("<!DOCTYPE html><html><body><p>Hi</p></body></html>")
	if err != nil {
		t.Fatalf("parsing HTML failed: %s", err)
	}
	tu.AssertEqual(t, doc.Document.Type, html.DocumentNode)
	tu.AssertEqual(t, doc.Root.Type, html.ElementNode)
	tu.AssertEqual(t, doc.Root.DataAtom, atom.Html)
}

func TestRootLookupSkipsDoctype(t *testing.T) {
	doc, err := NewHTMLFromString("<!DOCTYPE html><p>Hi")
	if err != nil {
		t.Fatalf("parsing HTML failed: %s", err)
	}
	// the doctype stays a child of the document node, before the root
	children := doc.Document.NodeChildren(true)
	tu.AssertEqual(t, children[0].Type, html.DoctypeNode)
	tu.AssertEqual(t, doc.Root.AsHtmlNode(), children[1].AsHtmlNode())
}

func TestImplicitRoot(t *testing.T) {
	// net/html always synthesizes the <html> element
	doc, err := NewHTMLFromString("just text")
	if err != nil {
		t.Fatalf("parsing HTML failed: %s", err)
	}
	tu.AssertEqual(t, doc.Root.DataAtom, atom.Html)
}

func TestEncodingDetection(t *testing.T) {
	latin1 := []byte("<html><body><p>caf\xe9</p></body></html>")
	doc, err := NewHTML(bytes.NewReader(latin1), "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("parsing HTML failed: %s", err)
	}
	if !strings.Contains(textContent(doc.Root.AsHtmlNode()), "café") {
		t.Fatalf("expected decoded text, got %q", textContent(doc.Root.AsHtmlNode()))
	}
}

func textContent(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}
