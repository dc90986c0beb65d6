package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/boxtree/logger"
	"github.com/benoitkugler/boxtree/utils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// HTML represents an HTML document parsed by net/html.
type HTML struct {
	// Document is the document node returned by the parser. It is the
	// usual starting point of box construction, which skips past it (and
	// any doctype) to the root element.
	Document *utils.HTMLNode

	// Root is the root <html> element.
	Root *utils.HTMLNode
}

// NewHTML parses an HTML document.
//
// `contentType` is used to find the character encoding of non UTF-8
// inputs (see the html/charset package); it may be empty, in which case
// the encoding is sniffed from the content itself.
func NewHTML(input io.Reader, contentType string) (*HTML, error) {
	logger.ProgressLogger.Println("Step 1 - Parsing HTML")

	decoded, err := charset.NewReader(input, contentType)
	if err != nil {
		return nil, fmt.Errorf("can't decode html input: %s", err)
	}
	document, err := html.ParseWithOptions(decoded, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input: %s", err)
	}

	out := HTML{Document: (*utils.HTMLNode)(document)}
	for child := document.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == atom.Html {
			out.Root = (*utils.HTMLNode)(child)
			break
		}
	}
	if out.Root == nil {
		return nil, fmt.Errorf("invalid html input: no root element")
	}
	return &out, nil
}

// NewHTMLFromString parses an in-memory UTF-8 document.
func NewHTMLFromString(content string) (*HTML, error) {
	return NewHTML(strings.NewReader(content), "")
}
