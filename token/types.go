package token

// Mode is the immutable per-comparison configuration. It is constructed
// once per comparison, read by the Tokenizer for its duration, and never
// shared across comparisons.
//
// Fields:
//   - Natural      — treat maximal runs of ASCII digits as numbers, so
//     "50" sorts before "100".
//   - SkipNonAlnum — ignore non-alphanumeric input entirely, so "f-5"
//     sorts next to "f5".
//   - Lexical      — fold scalars to their ASCII approximation and compare
//     case-insensitively; punctuation and symbols rank before
//     alphanumerics.
type Mode struct {
	Natural      bool
	SkipNonAlnum bool
	Lexical      bool
}

// Kind discriminates the two token variants.
type Kind uint8

const (
	// KindUnit is a single (possibly folded) scalar.
	KindUnit Kind = iota

	// KindNumber is a maximal run of ASCII decimal digits.
	KindNumber
)

// Token is one unit of comparison.
//
// For KindUnit, Rune holds the scalar (an ASCII byte after folding, or the
// raw scalar when no fold applies) and Alnum its class. For KindNumber,
// Run holds the raw digit substring with leading zeros preserved; it is a
// view into the source string, never a copy.
type Token struct {
	Kind  Kind
	Rune  rune
	Alnum bool
	Run   string
}
