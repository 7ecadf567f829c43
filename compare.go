package lexicmp

import (
	"cmp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/surrealdb/lexicmp/fold"
	"github.com/surrealdb/lexicmp/token"
)

// compare drives two tokenizers in lock-step and stops at the first pair
// of tokens that differ. All state lives on the stack; nothing is
// allocated and nothing escapes the call.
func compare(a, b string, mode token.Mode) int {
	lt := token.New(a, mode)
	rt := token.New(b, mode)
	for {
		l, lok := lt.Next()
		r, rok := rt.Next()
		switch {
		case !lok && !rok:
			return tieBreak(a, b, mode)
		case !lok:
			// The exhausted side sorts first.
			return -1
		case !rok:
			return 1
		}
		if c := compareTokens(l, r, mode); c != 0 {
			return c
		}
	}
}

// tieBreak orders two strings whose token streams compared equal.
//
// Folding and numeric runs can make distinct strings token-equal ("Foo"
// vs "fóò", "007" vs "7"); those fall back to comparing the original
// scalars so the overall order stays total and reproducible. The fallback
// honors the mode it serves: lexical comparison stays case-insensitive
// ("ABC" and "abc" are equal, not tie-broken on case), and skip mode keeps
// ignoring the punctuation it agreed to ignore, so "f-5" equals "f5".
func tieBreak(a, b string, mode token.Mode) int {
	if !mode.Lexical && !mode.Natural {
		// Raw units already compared scalar by scalar; any remaining
		// difference is confined to skipped characters.
		return 0
	}
	return rawCompare(a, b, mode)
}

// rawCompare walks the original scalars of both strings in lock-step,
// lowercasing when mode folds and skipping non-alphanumerics when mode
// skips, without any ASCII approximation or digit-run handling.
func rawCompare(a, b string, mode token.Mode) int {
	var i, j int
	for {
		ra, aok := nextRaw(a, &i, mode.SkipNonAlnum)
		rb, bok := nextRaw(b, &j, mode.SkipNonAlnum)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if mode.Lexical {
			ra = unicode.ToLower(ra)
			rb = unicode.ToLower(rb)
		}
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
	}
}

// nextRaw decodes the next scalar of s at *pos, advancing past skipped
// characters first when skip is set. ok is false at end of input.
func nextRaw(s string, pos *int, skip bool) (r rune, ok bool) {
	for *pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[*pos:])
		*pos += size
		if skip && !fold.IsAlnum(r) {
			continue
		}
		return r, true
	}
	return 0, false
}

// compareTokens orders one pair of tokens under mode.
func compareTokens(l, r token.Token, mode token.Mode) int {
	switch {
	case l.Kind == token.KindNumber && r.Kind == token.KindNumber:
		return compareRuns(l.Run, r.Run)
	case l.Kind == token.KindNumber:
		return -compareUnitNumber(r, l, mode)
	case r.Kind == token.KindNumber:
		return compareUnitNumber(l, r, mode)
	}
	if mode.Lexical && l.Alnum != r.Alnum {
		// Alphanumerics sort after everything else.
		if l.Alnum {
			return 1
		}
		return -1
	}
	return cmp.Compare(l.Rune, r.Rune)
}

// compareRuns orders two digit runs by magnitude: stripped of leading
// zeros, a shorter run is smaller, and equal lengths compare digit by
// digit. Runs of equal value (e.g. "007" vs "7") are token-equal; any
// ordering between them comes from the tie-break.
func compareRuns(l, r string) int {
	ls := strings.TrimLeft(l, "0")
	rs := strings.TrimLeft(r, "0")
	if c := cmp.Compare(len(ls), len(rs)); c != 0 {
		return c
	}
	return strings.Compare(ls, rs)
}

// compareUnitNumber orders a Unit token u against a Number token n, with u
// on the left. Both streams share one mode in the public functions, so a
// unit only meets a number through direct Tokenizer use; the order is
// defined regardless: non-alphanumerics sort first (lexical modes), then
// by leading significant digit against the unit scalar, with the longer
// run winning a leading-digit tie.
func compareUnitNumber(u, n token.Token, mode token.Mode) int {
	if mode.Lexical && !u.Alnum {
		return -1
	}
	run := strings.TrimLeft(n.Run, "0")
	if run == "" {
		run = "0"
	}
	if c := cmp.Compare(u.Rune, rune(run[0])); c != 0 {
		return c
	}
	if len(run) > 1 {
		return -1
	}
	return 0
}
