// Package tree provides traversal and diagnostic utilities over the
// heterogeneous parse trees produced by generated parser modules.
package tree

import (
	"encoding/json"
	"fmt"
	"os"
)

// Family discriminates structurally irregular node variants.
type Family string

const (
	// FamilyPlain is the regular node shape: the node's own fields hold
	// its type, span and children.
	FamilyPlain Family = ""
	// FamilyOptions marks grouped/optional nodes: the real payload lives
	// in Option, one level deeper than the node's own fields suggest.
	FamilyOptions Family = "options"
)

// Span is an inclusive character range into the original source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Text returns the source substring the span covers.
func (s Span) Text(source string) string {
	if s.Start < 0 || s.End+1 > len(source) || s.End < s.Start {
		return ""
	}
	return source[s.Start : s.End+1]
}

// Node is one node of a parse tree. A nil Span means the node's
// derivation was empty. Option is set only for the grouped/optional
// family; display and descent for that family go through Option, not
// the node's own fields.
type Node struct {
	Type     string  `json:"type"`
	Span     *Span   `json:"span,omitempty"`
	Family   Family  `json:"family,omitempty"`
	Option   *Node   `json:"option,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// AddChild appends a child node, ignoring nil.
func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Load reads a JSON-serialized tree from disk.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode tree file %s: %w", path, err)
	}
	return &root, nil
}
