package markdown

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/websearch/doctree"
)

// ErrUnknownNodeType is matched by every UnknownNodeTypeError.
var ErrUnknownNodeType = errors.New("unknown node type")

// UnknownNodeTypeError reports a node whose kind has no render function.
type UnknownNodeTypeError struct {
	Kind doctree.Kind
}

// Error implements the error interface.
func (e *UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("unknown node type: %s", e.Kind)
}

// Is makes errors.Is(err, ErrUnknownNodeType) hold.
func (e *UnknownNodeTypeError) Is(target error) bool {
	return target == ErrUnknownNodeType
}
