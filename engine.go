package ezre

import (
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is the compiled form of an expression's pattern, backed by coregex
// (RE2-compatible, fast) or regexp2 (PCRE-compatible) depending on the
// syntax the pattern uses.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile hands e's derived pattern to a regex engine and returns the
// compiled form. Patterns carrying PCRE-only syntax (detected by needsPCRE)
// compile with regexp2; everything else uses coregex.
//
// The stored pattern text is never altered. The engine's copy alone has the
// {,n} quantifier rewritten to the equivalent {0,n} form, which both
// engines accept.
func (e *Expr) Compile() (*Regexp, error) {
	pat := normalizeQuantifiers(e.pattern)

	if needsPCRE(pat) {
		re, err := regexp2.Compile(pat, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: e.pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pat)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: e.pattern, core: re}, nil
}

// MustCompile is like [Expr.Compile] but panics if the pattern is rejected
// by the engine.
func (e *Expr) MustCompile() *Regexp {
	re, err := e.Compile()
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern the Regexp was compiled from, exactly as
// [Expr.Pattern] rendered it.
func (r *Regexp) String() string {
	return r.pattern
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	runes := []rune(s)
	out := make([]string, len(groups))
	for i, g := range groups {
		if g.Index < 0 || g.Length < 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}

	return out
}

// ReplaceAllString returns a copy of src with matches of the Regexp replaced
// by repl.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}

	replaced, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

// SubexpNames returns the names of the capturing groups in the Regexp. The
// name of the first group is names[1].
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	nums := r.pcre.GetGroupNumbers()
	max := 0
	for _, v := range nums {
		if v > max {
			max = v
		}
	}

	names := make([]string, max+1)
	for i := 0; i <= max; i++ {
		names[i] = r.pcre.GroupNameFromNumber(i)
	}

	return names
}

// normalizeQuantifiers rewrites every {,n} quantifier outside character
// classes and escapes to {0,n}. RE2- and .NET-family engines treat the
// short form as a literal brace; the rewrite is semantically the identity.
func normalizeQuantifiers(pattern string) string {
	if !strings.Contains(pattern, "{,") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 2)

	escaped, inClass := false, false
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case inClass:
			inClass = ch != ']'
		case ch == '[':
			inClass = true
		case ch == '{' && isShortRepeat(pattern[i+1:]):
			b.WriteString("{0")
			continue
		}

		b.WriteByte(ch)
	}

	return b.String()
}

// isShortRepeat reports whether rest begins with ",n}" for a decimal n, the
// tail of the {,n} short form.
func isShortRepeat(rest string) bool {
	if len(rest) < 3 || rest[0] != ',' {
		return false
	}

	i := 1
	for ; i < len(rest) && rest[i] >= '0' && rest[i] <= '9'; i++ {
	}

	return i > 1 && i < len(rest) && rest[i] == '}'
}

// needsPCRE reports whether the pattern uses syntax outside what the
// RE2-compatible engine accepts. Builder-produced structure never does, but
// leaf text is emitted verbatim and may carry lookarounds, backreferences,
// or other PCRE-only constructs.
func needsPCRE(pattern string) bool {
	tokens := []string{
		// Lookarounds
		"(?=", "(?!", "(?<=", "(?<!",
		// Atomic, conditional, branch-reset groups and comments
		"(?>", "(?(", "(?|", "(?#",
		// Recursion and subroutine calls
		"(?R)", "(?&", "(?P>",
		// Named backreferences
		`\k<`, `\k'`, `\k{`, "(?P=",
		// PCRE anchors
		`\A`, `\Z`, `\z`, `\G`,
		// PCRE escapes
		`\h`, `\H`, `\K`, `\R`, `\X`,
	}
	for _, tok := range tokens {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numbered backreferences: \1 through \9.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) {
			if next := pattern[i+1]; next >= '1' && next <= '9' {
				return true
			}
		}
		escaped = !escaped
	}

	// Named groups: only the (?P<name>...) spelling is RE2-compatible.
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return true
	}

	return false
}
