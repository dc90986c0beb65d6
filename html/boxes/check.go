package boxes

import (
	"fmt"
	"strings"
)

var properChildren = map[BoxType][]BoxType{
	BlockT:          {BlockT, AnonymousBlockT},
	AnonymousBlockT: {RootInlineT},
	RootInlineT:     {InlineT, TextT},
	InlineT:         {InlineT, TextT},
}

// CheckTree validates the structural rules of a constructed box tree:
//
//   - every box participates in a formatting context;
//   - an anonymous block box establishes an inline formatting context
//     and holds exactly one root inline box;
//   - inline boxes and text runs live in inline formatting contexts,
//     text runs are trimmed, non empty leaves;
//   - a block container only holds block-level children, inline content
//     being hosted by anonymous boxes.
//
// This is not required by the layout phase and only helps debugging.
func CheckTree(box Box, arena *Arena) error {
	fields := box.Box()
	if fields.Context == NoContext {
		return fmt.Errorf("%s participates in no formatting context", box)
	}

	switch box := box.(type) {
	case *BlockBox:
		if !arena.IsBlock(fields.ChildContext()) {
			return fmt.Errorf("%s must provide a block formatting context to its children", box)
		}
	case *AnonymousBlockBox:
		if !arena.IsInline(fields.Established) {
			return fmt.Errorf("%s must establish an inline formatting context", box)
		}
		if len(fields.Children) != 1 || fields.Children[0].Type() != RootInlineT {
			return fmt.Errorf("%s must hold exactly one root inline box", box)
		}
		if fields.Children[0].Box().Context != fields.Established {
			return fmt.Errorf("%s: its root inline box must participate in the established context", box)
		}
	case *RootInlineBox, *InlineBox:
		if !arena.IsInline(fields.Context) {
			return fmt.Errorf("%s must participate in an inline formatting context", box)
		}
		if fields.Established != NoContext {
			return fmt.Errorf("%s must not establish a formatting context", box)
		}
	case *TextBox:
		if box.Text == "" || box.Text != strings.TrimSpace(box.Text) {
			return fmt.Errorf("%s must hold trimmed, non empty text", box)
		}
		if !arena.IsInline(fields.Context) {
			return fmt.Errorf("%s must participate in an inline formatting context", box)
		}
		if len(fields.Children) != 0 {
			return fmt.Errorf("%s must be a leaf", box)
		}
	}

	acceptable, restricted := properChildren[box.Type()]
	for _, child := range fields.Children {
		if restricted {
			isOk := false
			for _, typeOk := range acceptable {
				if child.Type() == typeOk {
					isOk = true
					break
				}
			}
			if !isOk {
				return fmt.Errorf("%s is not a proper child of %s", child, box)
			}
		}
		if err := CheckTree(child, arena); err != nil {
			return err
		}
	}
	return nil
}
