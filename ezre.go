package ezre

import (
	"fmt"
	"slices"
	"strings"

	"go.dw1.io/ezre/cardinality"
	"go.dw1.io/ezre/label"
)

type nodeKind int

const (
	nodeLeaf nodeKind = iota
	nodeAnd
	nodeOr
)

// node is the closed inner variant of an Expr: raw pattern text, a
// concatenation, or an alternation. Composite nodes hold shared references
// to their children; a child may be reused by several parents.
type node struct {
	kind  nodeKind
	text  string
	items []*Expr
}

// pattern derives the node's own regex text, pulling the cached pattern of
// each child. An alternation is parenthesized only when it has more than
// one alternative.
func (n node) pattern() string {
	switch n.kind {
	case nodeAnd:
		var b strings.Builder
		for _, it := range n.items {
			b.WriteString(it.pattern)
		}
		return b.String()
	case nodeOr:
		parts := make([]string, len(n.items))
		for i, it := range n.items {
			parts[i] = it.pattern
		}
		joined := strings.Join(parts, "|")
		if len(n.items) > 1 {
			return "(" + joined + ")"
		}
		return joined
	default:
		return n.text
	}
}

// Expr is a single expression node. Its pattern text is derived once at
// construction and cached; everything but the display label is immutable
// afterwards.
type Expr struct {
	node    node
	lbl     label.Label
	card    cardinality.Cardinality
	pattern string
	id      uint64
}

// newExpr registers the node, derives its pattern, and falls back to the
// "#<id>" display name when no label is given.
func newExpr(n node, lbl *label.Label, card cardinality.Cardinality) *Expr {
	e := &Expr{node: n, card: card}
	e.id = register(e)
	if lbl != nil {
		e.lbl = *lbl
	} else {
		e.lbl = label.New(fmt.Sprintf("#%d", e.id))
	}
	e.pattern = n.pattern() + card.String()
	return e
}

// FromString builds a leaf expression from raw pattern text. The text is
// emitted verbatim; use [FromSequence] for literal strings that need
// escaping, or [QuoteMeta] to escape by hand.
func FromString(text string) *Expr {
	return newExpr(node{kind: nodeLeaf, text: text}, nil, cardinality.One)
}

// Process-wide anchor leaves. A nil operand to [Concat] stands in for them.
var (
	Begin = FromString(`^`).As(`^`)
	End   = FromString(`$`).As(`$`)
)

// Concat returns the concatenation of a then b. A nil a is the
// start-of-input anchor [Begin]; a nil b is the end-of-input anchor [End].
// The result's label is a's label followed by b's.
func Concat(a, b *Expr) *Expr {
	if a == nil {
		a = Begin
	}
	if b == nil {
		b = End
	}
	lbl := a.lbl.Concat(b.lbl)
	return newExpr(node{kind: nodeAnd, items: []*Expr{a, b}}, &lbl, cardinality.One)
}

// Concat returns the concatenation of e then other. A nil other appends the
// end-of-input anchor [End].
func (e *Expr) Concat(other *Expr) *Expr {
	return Concat(e, other)
}

// Union returns the alternation of a and b, parenthesized in the rendered
// pattern. The result's label is a's label or-ed with b's.
func Union(a, b *Expr) *Expr {
	if a == nil || b == nil {
		panic("ezre: nil operand to Union")
	}
	lbl := a.lbl.Union(b.lbl)
	return newExpr(node{kind: nodeOr, items: []*Expr{a, b}}, &lbl, cardinality.One)
}

// Union returns the alternation of e and other.
func (e *Expr) Union(other *Expr) *Expr {
	return Union(e, other)
}

// Repeat returns an expression matching e's sub-expression repeated per c.
// The trivial exactly-one cardinality returns e itself; any other yields a
// new node wrapping the same inner expression, so e stays valid and
// unchanged. The new node's label is e's label followed by the quantifier
// text.
func (e *Expr) Repeat(c cardinality.Cardinality) *Expr {
	if c.Equal(cardinality.One) {
		return e
	}
	lbl := e.lbl.Concat(label.New(c.String()))
	return newExpr(e.node, &lbl, c)
}

// Group wraps e in a capturing group named name, rendering (?P<name>…)
// around e's pattern. The label is preserved.
func (e *Expr) Group(name string) *Expr {
	opening := FromString("(?P<" + name + ">")
	closing := FromString(")")
	lbl := e.lbl
	return newExpr(node{kind: nodeAnd, items: []*Expr{opening, e, closing}}, &lbl, cardinality.One)
}

// As renames e in place to a leaf label and returns e. Relabeling is the
// single permitted mutation: it changes nothing but the display name.
func (e *Expr) As(name string) *Expr {
	e.lbl = label.New(name)
	return e
}

// WithLabel replaces e's label in place with an already-built Label and
// returns e.
func (e *Expr) WithLabel(l label.Label) *Expr {
	e.lbl = l
	return e
}

// Pattern returns the derived regex text for this node, including its own
// quantifier suffix.
func (e *Expr) Pattern() string { return e.pattern }

// String returns the derived pattern, same as [Expr.Pattern].
func (e *Expr) String() string { return e.pattern }

// Label returns the display label.
func (e *Expr) Label() label.Label { return e.lbl }

// Cardinality returns the repetition applied to this node's own text.
func (e *Expr) Cardinality() cardinality.Cardinality { return e.card }

// Children returns the direct sub-expressions of a composite node, or nil
// for a leaf.
func (e *Expr) Children() []*Expr {
	if e.node.kind == nodeLeaf {
		return nil
	}
	return slices.Clone(e.node.items)
}
