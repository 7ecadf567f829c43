package lexicmp

import "github.com/surrealdb/lexicmp/token"

// CompareFunc is the signature shared by the eight comparison functions:
// a total, deterministic three-way comparison returning -1 if a sorts
// before b, 0 if they compare equal, and +1 otherwise.
type CompareFunc func(a, b string) int

// Cmp compares a and b by raw scalar value. It differs from a plain
// string comparison only in that it shares the engine's deterministic
// handling of invalid UTF-8.
func Cmp(a, b string) int {
	return compare(a, b, token.Mode{})
}

// OnlyAlnumCmp compares like Cmp but ignores non-alphanumeric characters
// entirely, so "f-5" compares equal to "f5".
func OnlyAlnumCmp(a, b string) int {
	return compare(a, b, token.Mode{SkipNonAlnum: true})
}

// LexicalCmp compares lexicographically: scalars fold to their closest
// ASCII counterpart, comparison is case-insensitive, and punctuation,
// whitespace and symbols sort before alphanumerics. Distinct strings with
// the same ASCII representation fall back to raw scalar order.
func LexicalCmp(a, b string) int {
	return compare(a, b, token.Mode{Lexical: true})
}

// LexicalOnlyAlnumCmp compares like LexicalCmp but ignores
// non-alphanumeric characters entirely.
func LexicalOnlyAlnumCmp(a, b string) int {
	return compare(a, b, token.Mode{Lexical: true, SkipNonAlnum: true})
}

// NaturalCmp compares like Cmp but treats runs of ASCII digits as numbers,
// so "50" sorts before "100". Runs of any length compare without overflow.
func NaturalCmp(a, b string) int {
	return compare(a, b, token.Mode{Natural: true})
}

// NaturalOnlyAlnumCmp compares like NaturalCmp but ignores
// non-alphanumeric characters entirely.
func NaturalOnlyAlnumCmp(a, b string) int {
	return compare(a, b, token.Mode{Natural: true, SkipNonAlnum: true})
}

// NaturalLexicalCmp combines LexicalCmp and NaturalCmp: folded,
// case-insensitive comparison with digit runs compared by magnitude.
func NaturalLexicalCmp(a, b string) int {
	return compare(a, b, token.Mode{Natural: true, Lexical: true})
}

// NaturalLexicalOnlyAlnumCmp compares like NaturalLexicalCmp but ignores
// non-alphanumeric characters entirely.
func NaturalLexicalOnlyAlnumCmp(a, b string) int {
	return compare(a, b, token.Mode{Natural: true, Lexical: true, SkipNonAlnum: true})
}

// Option toggles one comparison behavior for Compare.
type Option func(*token.Mode)

// Natural enables magnitude comparison of ASCII digit runs.
func Natural() Option {
	return func(m *token.Mode) { m.Natural = true }
}

// Lexical enables ASCII folding, case-insensitivity, and the
// punctuation-before-alphanumerics rule.
func Lexical() Option {
	return func(m *token.Mode) { m.Lexical = true }
}

// OnlyAlnum makes the comparison ignore non-alphanumeric characters.
func OnlyAlnum() Option {
	return func(m *token.Mode) { m.SkipNonAlnum = true }
}

// Compare compares a and b under any combination of Options; with none it
// behaves like Cmp. The eight named functions are fixed bindings of the
// same engine and should be preferred where the combination is known up
// front.
func Compare(a, b string, opts ...Option) int {
	var m token.Mode
	for _, opt := range opts {
		opt(&m)
	}
	return compare(a, b, m)
}
