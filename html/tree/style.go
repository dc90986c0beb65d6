package tree

import (
	"strings"

	"github.com/benoitkugler/boxtree/css/display"
	"github.com/benoitkugler/boxtree/logger"
	"github.com/benoitkugler/boxtree/utils"
	"golang.org/x/net/html"
)

// Style is the resolved, read only style view consumed by box
// construction. It is stable for the duration of one construction pass.
type Style struct {
	Display display.Display
}

// StyleFor stores the resolved style of each element of a document.
//
// This module does not run a CSS cascade: styles come from the user
// agent defaults below, possibly overridden by the `display`
// declaration of the element's style attribute, or programmatically
// with SetDisplay. A full style engine may be substituted at the same
// seam.
type StyleFor struct {
	styles map[*html.Node]Style
}

// Elements hidden by the user agent style sheet.
var uaHidden = utils.NewSet(
	"area", "base", "datalist", "head", "link", "meta", "noscript",
	"param", "script", "source", "style", "template", "title", "track",
)

// Elements laid out as block containers by the user agent style sheet.
var uaBlock = utils.NewSet(
	"address", "article", "aside", "blockquote", "body", "details",
	"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure",
	"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
	"hr", "html", "legend", "li", "main", "nav", "ol", "p", "pre",
	"section", "summary", "ul",
)

func uaDisplay(tag string) display.Display {
	switch {
	case uaHidden.Has(tag):
		return display.None
	case uaBlock.Has(tag):
		return display.Block
	}
	return display.Inline
}

// GetAllComputedStyles resolves the display value of every element of
// the document.
func GetAllComputedStyles(doc *HTML) *StyleFor {
	logger.ProgressLogger.Println("Step 2 - Resolving display values")

	out := StyleFor{styles: make(map[*html.Node]Style)}
	for _, element := range doc.Document.Iter() {
		d := uaDisplay(element.Data)
		if value, has := displayDeclaration(element.Get("style")); has {
			if parsed, err := display.Parse(value); err != nil {
				logger.WarningLogger.Printf("ignored declaration display: %s (%s)", value, err)
			} else {
				d = parsed
			}
		}
		out.styles[element.AsHtmlNode()] = Style{Display: d}
	}
	return &out
}

// displayDeclaration extracts the value of the last `display`
// declaration of an inline style attribute.
func displayDeclaration(styleAttr string) (value string, has bool) {
	for _, decl := range strings.Split(styleAttr, ";") {
		name, v, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), "display") {
			value, has = strings.TrimSpace(v), true
		}
	}
	return value, has
}

// Get returns the resolved style of `element`, defaulting to the
// initial display value (inline).
func (s *StyleFor) Get(element *html.Node) Style {
	if style, in := s.styles[element]; in {
		return style
	}
	return Style{Display: display.Inline}
}

// SetDisplay overrides the resolved display value of `element`.
func (s *StyleFor) SetDisplay(element *html.Node, d display.Display) {
	style := s.styles[element]
	style.Display = d
	s.styles[element] = style
}
