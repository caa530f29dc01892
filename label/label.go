// Package label tracks human-readable names through the composition of
// expressions. A Label mirrors the shape of the expression it names —
// concatenations render back to back, unions render joined by "|" and
// parenthesized — but carries no pattern semantics at all: it exists only
// for display.
package label

import "strings"

type kind int

const (
	kindLeaf kind = iota
	kindConcat
	kindUnion
)

// Label is an immutable display tree. Composing labels never mutates the
// operands; children are shared by reference between the new value and its
// parents.
type Label struct {
	kind  kind
	name  string
	items []Label
}

// New returns a leaf Label rendering as name.
func New(name string) Label {
	return Label{kind: kindLeaf, name: name}
}

// Concat returns a Label rendering its items back to back, in order.
func Concat(items ...Label) Label {
	return Label{kind: kindConcat, items: items}
}

// Union returns a Label rendering its items joined by "|", parenthesized
// only when there is more than one item.
func Union(items ...Label) Label {
	return Label{kind: kindUnion, items: items}
}

// Concat returns a new Label rendering l immediately followed by other.
func (l Label) Concat(other Label) Label {
	return Concat(l, other)
}

// Union returns a new Label rendering l and other as alternatives.
func (l Label) Union(other Label) Label {
	return Union(l, other)
}

// String renders the tree: a leaf is its name, a concatenation is its
// children's renderings joined, and a union joins with "|" and wraps in
// parentheses unless it has a single child.
func (l Label) String() string {
	switch l.kind {
	case kindConcat:
		var b strings.Builder
		for _, it := range l.items {
			b.WriteString(it.String())
		}
		return b.String()
	case kindUnion:
		parts := make([]string, len(l.items))
		for i, it := range l.items {
			parts[i] = it.String()
		}
		joined := strings.Join(parts, "|")
		if len(l.items) > 1 {
			return "(" + joined + ")"
		}
		return joined
	default:
		return l.name
	}
}
