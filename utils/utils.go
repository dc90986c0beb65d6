package utils

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// HTMLNode is an alias for the nodes produced by net/html,
// adding convenient traversal methods.
type HTMLNode html.Node

// AsHtmlNode returns the underlying node.
func (h *HTMLNode) AsHtmlNode() *html.Node { return (*html.Node)(h) }

// Get returns the value of the first attribute named `name`, or
// the empty string if it is absent.
func (h HTMLNode) Get(name string) string {
	for _, attr := range h.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// NodeChildren returns the direct children of the node.
// If `skipBlank` is true, text nodes containing only whitespace are
// ignored.
func (h *HTMLNode) NodeChildren(skipBlank bool) (children []*HTMLNode) {
	for child := h.FirstChild; child != nil; child = child.NextSibling {
		if skipBlank && child.Type == html.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, (*HTMLNode)(child))
	}
	return children
}

// Iter returns the element nodes of the subtree rooted at `h`, in
// document order. If `tags` is provided, only elements matching one of
// them are returned.
func (h *HTMLNode) Iter(tags ...atom.Atom) []*HTMLNode {
	var out []*HTMLNode
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if len(tags) == 0 {
				out = append(out, (*HTMLNode)(node))
			} else {
				for _, tag := range tags {
					if node.DataAtom == tag {
						out = append(out, (*HTMLNode)(node))
						break
					}
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk((*html.Node)(h))
	return out
}
