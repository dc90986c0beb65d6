package boxes

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// BoxType identifies the concrete type of a box.
type BoxType uint8

const (
	// BlockT is a block container generated by an element.
	BlockT BoxType = iota
	// AnonymousBlockT is a block box synthesized to host inline content
	// appearing directly inside a block container.
	AnonymousBlockT
	// RootInlineT is the inline box seeding the inline formatting
	// context of an anonymous block box.
	RootInlineT
	// InlineT is an inline box generated by an element.
	InlineT
	// TextT is a text run.
	TextT
)

func (t BoxType) String() string {
	switch t {
	case BlockT:
		return "BlockBox"
	case AnonymousBlockT:
		return "AnonymousBlockBox"
	case RootInlineT:
		return "RootInlineBox"
	case InlineT:
		return "InlineBox"
	case TextT:
		return "TextBox"
	}
	return fmt.Sprintf("BoxType(%d)", t)
}

// Box is the node of the box tree. Concrete types embed BoxFields.
type Box interface {
	Box() *BoxFields
	Type() BoxType
}

// BoxFields is the common state of every box.
type BoxFields struct {
	// Element is the source node of the box. Anonymous boxes and root
	// inline boxes borrow the node of the content they were created
	// for, only for style and debug attribution.
	Element *html.Node

	// Context is the formatting context the box participates in.
	Context ContextID

	// Established is the formatting context the box establishes for its
	// descendants, or NoContext if its children join Context instead.
	Established ContextID

	// Children holds the child boxes, in document order. The parent
	// owns them exclusively.
	Children []Box
}

func newBoxFields(element *html.Node, context, established ContextID) BoxFields {
	return BoxFields{Element: element, Context: context, Established: established}
}

func (b *BoxFields) Box() *BoxFields { return b }

// ChildContext returns the formatting context offered to the box's
// in-flow children: the established context if any, the one the box
// participates in otherwise.
func (b *BoxFields) ChildContext() ContextID {
	if b.Established != NoContext {
		return b.Established
	}
	return b.Context
}

// AddChild appends `child` to the box, after every previously attached
// child.
func (b *BoxFields) AddChild(child Box) { b.Children = append(b.Children, child) }

// ElementTag returns the tag name of the source node.
func (b *BoxFields) ElementTag() string { return elementName(b.Element) }

// BlockBox is a block container: a box laying out its contents with
// block or inline flow.
type BlockBox struct {
	BoxFields
}

func NewBlockBox(element *html.Node, context, established ContextID) *BlockBox {
	out := BlockBox{BoxFields: newBoxFields(element, context, established)}
	return &out
}

func (*BlockBox) Type() BoxType { return BlockT }

func (b *BlockBox) String() string {
	return fmt.Sprintf("<BlockBox %s>", b.ElementTag())
}

// AnonymousBlockBox is a block level box with no element of its own,
// created to host inline content appearing next to block level siblings.
// It always establishes an independent inline formatting context, seeded
// with a single root inline box.
type AnonymousBlockBox struct {
	BoxFields
}

func NewAnonymousBlockBox(element *html.Node, context, established ContextID) *AnonymousBlockBox {
	out := AnonymousBlockBox{BoxFields: newBoxFields(element, context, established)}
	return &out
}

func (*AnonymousBlockBox) Type() BoxType { return AnonymousBlockT }

func (b *AnonymousBlockBox) String() string {
	return fmt.Sprintf("<AnonymousBlockBox (%s)>", b.ElementTag())
}

// RootInlineBox is the first child of every anonymous block box; the
// inline content hosted by the anonymous box is attached under it.
type RootInlineBox struct {
	BoxFields
}

func NewRootInlineBox(element *html.Node, context ContextID) *RootInlineBox {
	out := RootInlineBox{BoxFields: newBoxFields(element, context, NoContext)}
	return &out
}

func (*RootInlineBox) Type() BoxType { return RootInlineT }

func (b *RootInlineBox) String() string {
	return fmt.Sprintf("<RootInlineBox (%s)>", b.ElementTag())
}

// InlineBox participates in the inline formatting context of an
// ancestor; it never creates one itself.
type InlineBox struct {
	BoxFields
}

func NewInlineBox(element *html.Node, context ContextID) *InlineBox {
	out := InlineBox{BoxFields: newBoxFields(element, context, NoContext)}
	return &out
}

func (*InlineBox) Type() BoxType { return InlineT }

func (b *InlineBox) String() string {
	return fmt.Sprintf("<InlineBox %s>", b.ElementTag())
}

// TextBox is a leaf holding a run of trimmed, non empty text.
type TextBox struct {
	BoxFields

	Text string
}

func NewTextBox(element *html.Node, context ContextID, text string) *TextBox {
	if len(text) == 0 {
		panic("NewTextBox called with empty text")
	}
	out := TextBox{BoxFields: newBoxFields(element, context, NoContext), Text: text}
	return &out
}

func (*TextBox) Type() BoxType { return TextT }

func (b *TextBox) String() string {
	return fmt.Sprintf("<TextBox %s %q>", b.ElementTag(), b.Text)
}

// IsBlockLevel reports whether the box participates in its parent's
// layout as a block.
func IsBlockLevel(box Box) bool {
	t := box.Type()
	return t == BlockT || t == AnonymousBlockT
}

// IsInlineLevel reports whether the box participates in an inline
// formatting context.
func IsInlineLevel(box Box) bool {
	t := box.Type()
	return t == RootInlineT || t == InlineT || t == TextT
}

func elementName(node *html.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	default:
		return node.Data
	}
}

// BC is the content of a serialized box: either a text run or a list of
// serialized children.
type BC struct {
	Text string
	C    []SerBox
}

// SerBox is a light, comparable serialization of a box, used by tests
// to assert on tree shapes.
type SerBox struct {
	Tag     string
	Type    BoxType
	Content BC
}

// Serialize transforms a list of boxes into a structure easier to
// compare in tests.
func Serialize(boxList []Box) []SerBox {
	out := make([]SerBox, len(boxList))
	for i, box := range boxList {
		out[i].Tag = box.Box().ElementTag()
		out[i].Type = box.Type()
		if text, ok := box.(*TextBox); ok {
			out[i].Content.Text = text.Text
		} else {
			out[i].Content.C = Serialize(box.Box().Children)
		}
	}
	return out
}

// SerializedBoxEquals compares two serializations, treating empty and
// missing child lists alike.
func SerializedBoxEquals(got, exp []SerBox) bool {
	if len(got) != len(exp) {
		return false
	}
	for i := range got {
		g, e := got[i], exp[i]
		if g.Tag != e.Tag || g.Type != e.Type || g.Content.Text != e.Content.Text ||
			!SerializedBoxEquals(g.Content.C, e.Content.C) {
			return false
		}
	}
	return true
}

// PrintTree writes an indented dump of the box tree to `w`, with the
// participating and established context of each box.
func PrintTree(w io.Writer, box Box, arena *Arena) {
	printTree(w, box, arena, 0)
}

func printTree(w io.Writer, box Box, arena *Arena, depth int) {
	indent := strings.Repeat("  ", depth)
	fields := box.Box()
	fmt.Fprintf(w, "%s%s <%s> in=%s", indent, box.Type(), fields.ElementTag(), arena.Describe(fields.Context))
	if fields.Established != NoContext {
		fmt.Fprintf(w, " establishes=%s", arena.Describe(fields.Established))
	}
	if text, ok := box.(*TextBox); ok {
		fmt.Fprintf(w, " %q", text.Text)
	}
	fmt.Fprintln(w)
	for _, child := range fields.Children {
		printTree(w, child, arena, depth+1)
	}
}
