// Package ezre assembles regular-expression pattern strings compositionally
// from named sub-expressions, instead of hand-concatenating raw regex
// syntax.
//
// An [Expr] is built from raw pattern text ([FromString]) or a set of
// literal alternatives ([FromSequence]), combined by concatenation
// ([Expr.Concat]) and alternation ([Expr.Union]) with parenthesization
// applied automatically, repeated with a [cardinality.Cardinality]
// ([Expr.Repeat]), and wrapped in named capturing groups ([Expr.Group]).
// The derived pattern text is read off any node with [Expr.Pattern] and can
// be handed to an engine directly or through [Expr.Compile], which selects
// coregex (RE2-compatible) and falls back to [regexp2] when the pattern uses
// PCRE-only syntax.
//
// Every node also carries a display-only [label.Label] for diagnostics; it
// never affects the pattern.
package ezre
