package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/surrealdb/lexicmp/fold"
)

// Tokenizer is a lazy single-pass cursor over one source string. The zero
// value is exhausted; use New.
type Tokenizer struct {
	src  string
	pos  int    // byte offset of the next unread scalar
	rest string // un-emitted tail of a multi-unit fold expansion
	mode Mode
}

// New returns a Tokenizer over src configured by mode.
func New(src string, mode Mode) Tokenizer {
	return Tokenizer{src: src, mode: mode}
}

// Next pulls the next token from the stream. ok is false once the input is
// exhausted and no buffered expansion units remain; Next then keeps
// returning ok=false.
//
// Invalid UTF-8 decodes as U+FFFD one byte at a time, so malformed input
// still tokenizes deterministically.
func (t *Tokenizer) Next() (tok Token, ok bool) {
	// Residual units of the current fold expansion go out first, before
	// the cursor moves on. These are always ASCII.
	if t.rest != "" {
		b := t.rest[0]
		t.rest = t.rest[1:]
		return asciiUnit(b), true
	}

	if t.mode.SkipNonAlnum {
		for t.pos < len(t.src) {
			r, size := utf8.DecodeRuneInString(t.src[t.pos:])
			if fold.IsAlnum(r) {
				break
			}
			t.pos += size
		}
	}
	if t.pos >= len(t.src) {
		return Token{}, false
	}

	// Digit runs come from the raw input: input digits are already
	// canonical ASCII, so they are never folded.
	if t.mode.Natural && isDigit(t.src[t.pos]) {
		start := t.pos
		for t.pos < len(t.src) && isDigit(t.src[t.pos]) {
			t.pos++
		}
		return Token{Kind: KindNumber, Run: t.src[start:t.pos]}, true
	}

	r, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size

	if !t.mode.Lexical {
		return Token{Kind: KindUnit, Rune: r, Alnum: fold.IsAlnum(r)}, true
	}
	if s, ok := fold.Fold(r); ok {
		t.rest = s[1:]
		return asciiUnit(s[0]), true
	}
	// No ASCII approximation: pass the scalar through, lowercased to keep
	// the lexical stream case-insensitive.
	l := unicode.ToLower(r)
	return Token{Kind: KindUnit, Rune: l, Alnum: fold.IsAlnum(l)}, true
}

// asciiUnit wraps one folded output byte as a Unit token.
func asciiUnit(b byte) Token {
	return Token{Kind: KindUnit, Rune: rune(b), Alnum: fold.IsAlnum(rune(b))}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
