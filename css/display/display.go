// Package display defines the computed value of the CSS display
// property, reduced to the outer/inner pairs needed by flow layout.
// See https://drafts.csswg.org/css-display/#the-display-properties
package display

import (
	"fmt"
	"strings"
)

// Outer describes how a box participates in its parent's formatting
// context.
type Outer uint8

const (
	// OuterNone means the element and its descendants generate no box.
	OuterNone Outer = iota
	OuterBlock
	OuterInline
)

// Inner describes the formatting context a box uses to lay out its own
// contents.
type Inner uint8

const (
	InnerFlow Inner = iota
	// InnerFlowRoot establishes a new formatting context for the
	// contents, independent from the surrounding flow.
	InnerFlowRoot
)

// Display is the resolved value of the display property: either "none",
// or a full value with an outer and an inner component.
type Display struct {
	Outer Outer
	Inner Inner
}

// Shorthands for the supported display values.
var (
	None        = Display{}
	Block       = Display{OuterBlock, InnerFlow}
	Inline      = Display{OuterInline, InnerFlow}
	FlowRoot    = Display{OuterBlock, InnerFlowRoot}
	InlineBlock = Display{OuterInline, InnerFlowRoot}
)

// IsNone reports whether the element generates no box at all.
func (d Display) IsNone() bool { return d.Outer == OuterNone }

func (o Outer) String() string {
	switch o {
	case OuterBlock:
		return "block"
	case OuterInline:
		return "inline"
	default:
		return "none"
	}
}

func (i Inner) String() string {
	if i == InnerFlowRoot {
		return "flow-root"
	}
	return "flow"
}

// String returns the shortest CSS keyword spelling of the value.
func (d Display) String() string {
	switch d {
	case None:
		return "none"
	case Block:
		return "block"
	case Inline:
		return "inline"
	case FlowRoot:
		return "flow-root"
	case InlineBlock:
		return "inline-block"
	}
	return fmt.Sprintf("%s %s", d.Outer, d.Inner)
}

var shorthands = map[string]Display{
	"none":         None,
	"block":        Block,
	"inline":       Inline,
	"flow-root":    FlowRoot,
	"inline-block": InlineBlock,
}

var (
	outerKeywords = map[string]Outer{"block": OuterBlock, "inline": OuterInline}
	innerKeywords = map[string]Inner{"flow": InnerFlow, "flow-root": InnerFlowRoot}
)

// Parse resolves a display declaration value, accepting both the single
// keyword spellings ("block", "inline-block", ...) and the two value
// syntax ("inline flow-root", ...).
func Parse(value string) (Display, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	switch len(fields) {
	case 1:
		if d, ok := shorthands[fields[0]]; ok {
			return d, nil
		}
	case 2:
		outer, okOuter := outerKeywords[fields[0]]
		inner, okInner := innerKeywords[fields[1]]
		if okOuter && okInner {
			return Display{outer, inner}, nil
		}
	}
	return None, fmt.Errorf("unsupported display value %q", value)
}
