// Package cardinality models the repetition range of a regular-expression
// sub-pattern and renders it to the exact quantifier suffix: ?, *, +, {m,n}
// and their lazy (trailing ?) forms.
//
// A Cardinality is an immutable value built once by [New] (or the [Exact]
// shorthand) and validated at construction; two values are equal exactly when
// their rendered quantifier strings are equal, so New(nil, 2) and New(0, 2)
// compare equal.
package cardinality
