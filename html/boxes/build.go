package boxes

import (
	"strings"

	"github.com/benoitkugler/boxtree/css/display"
	"github.com/benoitkugler/boxtree/html/tree"
	"github.com/benoitkugler/boxtree/logger"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Builder drives one box tree construction pass over a styled document.
// Construction is deterministic and single threaded: for fixed styles,
// the same document always yields the same tree.
type Builder struct {
	styles *tree.StyleFor
	arena  *Arena

	// Permissive makes the builder drop the subtree of a child whose
	// construction fails, log a warning and keep going, instead of
	// aborting the whole pass. Already attached siblings are never
	// affected by a dropped child.
	Permissive bool
}

func NewBuilder(styles *tree.StyleFor) *Builder {
	return &Builder{styles: styles, arena: NewArena()}
}

// Arena exposes the formatting contexts created during the pass.
func (bd *Builder) Arena() *Arena { return bd.arena }

// BuildBoxTree builds the box tree of a whole parsed document: the
// returned box is the one generated by the root element. A nil box with
// a nil error means the document generates no box at all.
func BuildBoxTree(doc *tree.HTML, styles *tree.StyleFor) (Box, error) {
	logger.ProgressLogger.Println("Step 3 - Building the box tree")
	return NewBuilder(styles).Build(doc.Document.AsHtmlNode())
}

// Build constructs the box generated by `node` and its descendants,
// with no formatting context offered: the box, if any, establishes its
// own. Passing the document node starts construction at the root <html>
// element instead, the document and doctype nodes generating no box.
func (bd *Builder) Build(node *html.Node) (Box, error) {
	return bd.buildBox(node, NoContext)
}

// buildBox builds the box generated by `node`, `offered` being the
// formatting context the box should join, or NoContext if it is
// expected to establish one.
func (bd *Builder) buildBox(node *html.Node, offered ContextID) (Box, error) {
	switch node.Type {
	case html.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.DataAtom == atom.Html {
				return bd.buildBox(child, NoContext)
			}
		}
		return nil, nil
	case html.TextNode:
		// https://drafts.csswg.org/css-display-3/#flow-layout
		// > If the [text] sequence contains no text, however, it does
		// > not generate a text run.
		text := strings.TrimSpace(node.Data)
		if text == "" {
			return nil, nil
		}
		if !bd.arena.IsInline(offered) {
			return nil, &ContractError{Node: node, Reason: "a text run needs an inline formatting context"}
		}
		return NewTextBox(node, offered, text), nil
	case html.ElementNode:
		box, err := bd.boxForDisplay(node, offered)
		if box == nil || err != nil {
			return nil, err
		}
		if err := bd.buildChildren(node, box); err != nil {
			return nil, err
		}
		return box, nil
	default:
		// Doctype and comment nodes generate nothing.
		return nil, nil
	}
}

// boxForDisplay decides, per the "Generated box" rules of
// https://drafts.csswg.org/css-display/#the-display-properties, which
// box `node` generates and which formatting context it joins or
// establishes. The box is returned without children; a nil box stands
// for display: none.
func (bd *Builder) boxForDisplay(node *html.Node, offered ContextID) (Box, error) {
	d := bd.styles.Get(node).Display
	switch {
	case d.IsNone():
		return nil, nil
	case d.Outer == display.OuterBlock && d.Inner == display.InnerFlow:
		// Per https://www.w3.org/TR/css-display-3/#block-container, a
		// block container joins the offered formatting context when it
		// is a block one.
		if bd.arena.IsBlock(offered) {
			return NewBlockBox(node, offered, NoContext), nil
		}
		return bd.newEstablishingBlock(node, offered), nil
	case d.Outer == display.OuterBlock && d.Inner == display.InnerFlowRoot:
		// flow-root always establishes a new block formatting context,
		// regardless of what was offered.
		return bd.newEstablishingBlock(node, offered), nil
	case d.Outer == display.OuterInline && d.Inner == display.InnerFlow:
		if !bd.arena.IsInline(offered) {
			return nil, &ContractError{Node: node, Reason: "an inline box needs an inline formatting context"}
		}
		return NewInlineBox(node, offered), nil
	default: // inline flow-root
		return nil, &UnsupportedError{Node: node, Feature: "display: " + d.String()}
	}
}

// newEstablishingBlock creates a block container establishing a fresh
// independent block formatting context. With no context offered, the
// box participates in the context it establishes.
func (bd *Builder) newEstablishingBlock(node *html.Node, offered ContextID) *BlockBox {
	established := bd.arena.NewIndependentBlock()
	if offered == NoContext {
		offered = established
	}
	return NewBlockBox(node, offered, established)
}

// buildChildren builds the boxes generated by the children of `node`,
// in document order, and attaches them to `box`, routing inline-level
// content through the current anonymous inline container.
func (bd *Builder) buildChildren(node *html.Node, box Box) error {
	fields := box.Box()
	isInlineParent := IsInlineLevel(box)

	// The current inline container is transient: it is dropped as soon
	// as a block-level child is attached, so that later inline content
	// starts a fresh anonymous box.
	var container *RootInlineBox

	// inlineTarget returns the box and formatting context receiving
	// inline-level content: the box itself for an inline parent, the
	// current (created on demand) anonymous container otherwise.
	inlineTarget := func() (*BoxFields, ContextID) {
		if isInlineParent {
			return fields, fields.ChildContext()
		}
		if container == nil {
			container = bd.appendInlineContainer(fields)
		}
		return &container.BoxFields, container.Context
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			text := strings.TrimSpace(child.Data)
			if text == "" {
				continue
			}
			target, context := inlineTarget()
			target.AddChild(NewTextBox(child, context, text))
		case html.ElementNode:
			d := bd.styles.Get(child).Display
			switch {
			case d.IsNone():
				// No box and no recursion: the whole subtree is
				// suppressed.
			case d.Outer == display.OuterBlock:
				if isInlineParent {
					// An inline box receiving an in-flow block-level
					// child is not implemented; see the "When an inline
					// box contains an in-flow block-level box" part of
					// https://www.w3.org/TR/CSS2/visuren.html#box-gen
					if err := bd.dropOr(&UnsupportedError{Node: child, Feature: "block-level box inside an inline box"}); err != nil {
						return err
					}
					continue
				}
				childBox, err := bd.buildBox(child, fields.ChildContext())
				if err != nil {
					if err = bd.dropOr(err); err != nil {
						return err
					}
					continue
				}
				if childBox != nil {
					fields.AddChild(childBox)
					container = nil
				}
			default:
				if d.Inner == display.InnerFlowRoot {
					// Rejected before any anonymous container is
					// created, so a dropped child leaves no trace.
					if err := bd.dropOr(&UnsupportedError{Node: child, Feature: "display: " + d.String()}); err != nil {
						return err
					}
					continue
				}
				target, context := inlineTarget()
				childBox, err := bd.buildBox(child, context)
				if err != nil {
					if err = bd.dropOr(err); err != nil {
						return err
					}
					continue
				}
				if childBox != nil {
					target.AddChild(childBox)
				}
			}
		}
	}
	return nil
}

// appendInlineContainer creates an anonymous block box hosting a fresh
// inline formatting context, seeded with its root inline box, and
// attaches it as the next child of `parent`. The anonymous boxes borrow
// the parent's element, for style and debug attribution only.
func (bd *Builder) appendInlineContainer(parent *BoxFields) *RootInlineBox {
	context := bd.arena.NewIndependentInline()
	anonymous := NewAnonymousBlockBox(parent.Element, parent.ChildContext(), context)
	root := NewRootInlineBox(parent.Element, context)
	anonymous.AddChild(root)
	parent.AddChild(anonymous)
	return root
}

// dropOr applies the per-child error policy: in permissive mode the
// child subtree is dropped with a warning and a nil error is returned;
// otherwise the error is passed through, failing the pass.
func (bd *Builder) dropOr(err error) error {
	if bd.Permissive {
		logger.WarningLogger.Printf("dropped subtree: %s", err)
		return nil
	}
	return err
}
