package ezre

import (
	"slices"
	"strings"

	"github.com/coregx/coregex"

	"go.dw1.io/ezre/cardinality"
)

// QuoteMeta escapes all regular expression metacharacters in s, making it
// match only the literal text.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// FromSequence builds a single alternation over a set of literal strings.
// Each item is escaped for literal matching and duplicates are dropped; the
// survivors are ordered by descending length, then ascending lexicographic
// order, so the engine tries longer alternatives first and "ab" wins over
// "a" when both apply. An empty set renders the empty pattern.
func FromSequence(items []string) *Expr {
	escaped := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		q := QuoteMeta(it)
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		escaped = append(escaped, q)
	}
	slices.SortFunc(escaped, compareAlternatives)

	children := make([]*Expr, len(escaped))
	for i, q := range escaped {
		children[i] = FromString(q)
	}
	return newExpr(node{kind: nodeOr, items: children}, nil, cardinality.One)
}

// compareAlternatives orders longer strings first and breaks ties
// lexicographically.
func compareAlternatives(a, b string) int {
	if d := len(b) - len(a); d != 0 {
		return d
	}
	return strings.Compare(a, b)
}
