package utils

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseString(t *testing.T, content string) *HTMLNode {
	t.Helper()

	document, err := html.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parsing HTML failed: %s", err)
	}
	return (*HTMLNode)(document)
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	s.Add("c")
	for _, key := range []string{"a", "b", "c"} {
		if !s.Has(key) {
			t.Fatalf("missing key %s", key)
		}
	}
	if s.Has("d") {
		t.Fatal("unexpected key d")
	}
}

func TestGet(t *testing.T) {
	document := parseString(t, `<div id="main" class="wide">x</div>`)
	div := document.Iter(atom.Div)[0]
	if got := div.Get("id"); got != "main" {
		t.Fatalf("expected main, got %s", got)
	}
	if got := div.Get("class"); got != "wide" {
		t.Fatalf("expected wide, got %s", got)
	}
	if got := div.Get("missing"); got != "" {
		t.Fatalf("expected empty value, got %s", got)
	}
}

func TestNodeChildren(t *testing.T) {
	document := parseString(t, "<div> <span>a</span>  <span>b</span></div>")
	div := document.Iter(atom.Div)[0]

	if got := len(div.NodeChildren(true)); got != 2 {
		t.Fatalf("expected 2 children, got %d", got)
	}
	if got := len(div.NodeChildren(false)); got != 4 {
		t.Fatalf("expected 4 children, got %d", got)
	}
}

func TestIter(t *testing.T) {
	document := parseString(t, "<div><span>a</span><p><span>b</span></p></div>")

	spans := document.Iter(atom.Span)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	// document order
	var tags []string
	for _, element := range document.Iter(atom.Div, atom.P, atom.Span) {
		tags = append(tags, element.Data)
	}
	if strings.Join(tags, " ") != "div span p span" {
		t.Fatalf("unexpected order: %v", tags)
	}
}
