package boxes

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// ErrUnsupported tags construction failures caused by features outside
// the scope of this module, as opposed to contract violations. Callers
// may test for it with errors.Is.
var ErrUnsupported = errors.New("unsupported feature")

// UnsupportedError is returned when a node requires a box or a nesting
// this module does not implement: an inline box establishing an
// independent formatting context (display: inline-block), or a
// block-level box inside an inline box.
type UnsupportedError struct {
	// Node is the offending document node.
	Node *html.Node

	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("<%s>: %s: %s", elementName(e.Node), ErrUnsupported, e.Feature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ContractError reports a violation of the classifier contract: an
// inline-level box was requested without an inline formatting context
// being offered. It names the offending node so the caller can decide
// to skip the subtree or abort the pass.
type ContractError struct {
	// Node is the offending document node.
	Node *html.Node

	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("<%s>: contract violation: %s", elementName(e.Node), e.Reason)
}
