package boxes

import (
	"strings"
	"testing"

	tu "github.com/benoitkugler/boxtree/utils/testutils"
	"golang.org/x/net/html"
)

var (
	_ Box = (*BlockBox)(nil)
	_ Box = (*AnonymousBlockBox)(nil)
	_ Box = (*RootInlineBox)(nil)
	_ Box = (*InlineBox)(nil)
	_ Box = (*TextBox)(nil)
)

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func TestChildContext(t *testing.T) {
	arena := NewArena()
	block := arena.NewIndependentBlock()
	inline := arena.NewIndependentInline()

	joining := NewBlockBox(element("div"), block, NoContext)
	tu.AssertEqual(t, joining.ChildContext(), block)

	establishing := NewBlockBox(element("div"), block, inline)
	tu.AssertEqual(t, establishing.ChildContext(), inline)
}

func TestLevelPredicates(t *testing.T) {
	arena := NewArena()
	block := arena.NewIndependentBlock()
	inline := arena.NewIndependentInline()

	tu.AssertEqual(t, IsBlockLevel(NewBlockBox(element("div"), block, NoContext)), true)
	tu.AssertEqual(t, IsBlockLevel(NewAnonymousBlockBox(element("div"), block, inline)), true)
	tu.AssertEqual(t, IsBlockLevel(NewInlineBox(element("span"), inline)), false)

	tu.AssertEqual(t, IsInlineLevel(NewInlineBox(element("span"), inline)), true)
	tu.AssertEqual(t, IsInlineLevel(NewRootInlineBox(element("div"), inline)), true)
	tu.AssertEqual(t, IsInlineLevel(NewTextBox(element("span"), inline, "x")), true)
	tu.AssertEqual(t, IsInlineLevel(NewBlockBox(element("div"), block, NoContext)), false)
}

func TestSerialize(t *testing.T) {
	arena := NewArena()
	block := arena.NewIndependentBlock()
	inline := arena.NewIndependentInline()

	div := NewBlockBox(element("div"), block, NoContext)
	span := NewInlineBox(element("span"), inline)
	span.AddChild(NewTextBox(element("span"), inline, "hello"))
	anonymous := NewAnonymousBlockBox(element("div"), block, inline)
	root := NewRootInlineBox(element("div"), inline)
	root.AddChild(span)
	anonymous.AddChild(root)
	div.AddChild(anonymous)

	got := Serialize([]Box{div})
	exp := []SerBox{
		{"div", BlockT, BC{C: []SerBox{
			{"div", AnonymousBlockT, BC{C: []SerBox{
				{"div", RootInlineT, BC{C: []SerBox{
					{"span", InlineT, BC{C: []SerBox{
						{"span", TextT, BC{Text: "hello"}},
					}}},
				}}},
			}}},
		}}},
	}
	if !SerializedBoxEquals(got, exp) {
		t.Fatalf("expected\n%v\n got\n%v", exp, got)
	}
}

func TestSerializedBoxEquals(t *testing.T) {
	// empty and missing child lists compare equal
	tu.AssertEqual(t, SerializedBoxEquals(
		[]SerBox{{"div", BlockT, BC{}}},
		[]SerBox{{"div", BlockT, BC{C: []SerBox{}}}},
	), true)
	tu.AssertEqual(t, SerializedBoxEquals(
		[]SerBox{{"div", BlockT, BC{}}},
		[]SerBox{{"div", InlineT, BC{}}},
	), false)
	tu.AssertEqual(t, SerializedBoxEquals(
		[]SerBox{{"div", TextT, BC{Text: "a"}}},
		[]SerBox{{"div", TextT, BC{Text: "b"}}},
	), false)
}

func TestPrintTree(t *testing.T) {
	arena := NewArena()
	block := arena.NewIndependentBlock()
	inline := arena.NewIndependentInline()

	div := NewBlockBox(element("div"), block, NoContext)
	anonymous := NewAnonymousBlockBox(element("div"), block, inline)
	root := NewRootInlineBox(element("div"), inline)
	root.AddChild(NewTextBox(element("div"), inline, "hi"))
	anonymous.AddChild(root)
	div.AddChild(anonymous)

	var sb strings.Builder
	PrintTree(&sb, div, arena)
	out := sb.String()
	for _, part := range []string{
		"BlockBox <div> in=block#0",
		"AnonymousBlockBox <div> in=block#0 establishes=inline#1",
		`TextBox <div> in=inline#1 "hi"`,
	} {
		if !strings.Contains(out, part) {
			t.Fatalf("missing %q in dump:\n%s", part, out)
		}
	}
}
