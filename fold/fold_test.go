package fold_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surrealdb/lexicmp/fold"
)

// TestFold_ASCII verifies that every ASCII scalar folds to its lowercase
// self, including non-letters, which fold to themselves unchanged.
func TestFold_ASCII(t *testing.T) {
	cases := map[rune]string{
		'a': "a",
		'A': "a",
		'Z': "z",
		'5': "5",
		'!': "!",
		' ': " ",
		'~': "~",
	}
	for r, want := range cases {
		got, ok := fold.Fold(r)
		require.True(t, ok, "ASCII scalar %q must always fold", r)
		assert.Equal(t, want, got, "fold of %q", r)
	}
}

// TestFold_Diacritics verifies that accented Latin letters fold to their
// base letter, case-insensitively.
func TestFold_Diacritics(t *testing.T) {
	cases := map[rune]string{
		'á': "a",
		'Á': "a",
		'ä': "a",
		'å': "a",
		'é': "e",
		'ó': "o",
		'ü': "u",
		'ñ': "n",
		'ç': "c",
		'ś': "s",
		'ž': "z",
		'İ': "i",
		'ṫ': "t",
	}
	for r, want := range cases {
		got, ok := fold.Fold(r)
		require.True(t, ok, "%q must fold", r)
		assert.Equal(t, want, got, "fold of %q", r)
	}
}

// TestFold_MultiUnit verifies ligatures and letters that expand to more
// than one output byte.
func TestFold_MultiUnit(t *testing.T) {
	cases := map[rune]string{
		'ß': "ss",
		'ẞ': "ss",
		'æ': "ae",
		'Æ': "ae",
		'œ': "oe",
		'þ': "th",
		'ĳ': "ij",
	}
	for r, want := range cases {
		got, ok := fold.Fold(r)
		require.True(t, ok, "%q must fold", r)
		assert.Equal(t, want, got, "fold of %q", r)
	}
}

// TestFold_NonDecomposable verifies the hand-written entries for letters
// without a canonical decomposition.
func TestFold_NonDecomposable(t *testing.T) {
	cases := map[rune]string{
		'ø': "o",
		'Ø': "o",
		'đ': "d",
		'ð': "d",
		'ł': "l",
		'ħ': "h",
		'ı': "i",
		'ŋ': "n",
		'ſ': "s",
	}
	for r, want := range cases {
		got, ok := fold.Fold(r)
		require.True(t, ok, "%q must fold", r)
		assert.Equal(t, want, got, "fold of %q", r)
	}
}

// TestFold_NoApproximation verifies that scalars outside the folded ranges
// report no fold: CJK, Cyrillic, emoji, symbols.
func TestFold_NoApproximation(t *testing.T) {
	for _, r := range []rune{'漢', 'あ', 'б', '😀', '×', '÷', '€'} {
		_, ok := fold.Fold(r)
		assert.False(t, ok, "%q must not fold", r)
	}
}

// TestFold_Lowercase verifies the invariant that every fold is non-empty
// and entirely lowercase ASCII, across the whole derived range.
func TestFold_Lowercase(t *testing.T) {
	for r := rune(0x80); r <= 0x1EFF; r++ {
		s, ok := fold.Fold(r)
		if !ok {
			continue
		}
		require.NotEmpty(t, s, "fold of %q must be non-empty", r)
		for i := 0; i < len(s); i++ {
			b := s[i]
			assert.True(t, 'a' <= b && b <= 'z',
				"fold of %q contains non-lowercase byte %q", r, b)
		}
	}
}

// TestIsAlnum verifies classification on both the ASCII fast path and the
// Unicode fallback.
func TestIsAlnum(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', '9', 'é', '漢', 'б', 'Ⅷ'} {
		assert.True(t, fold.IsAlnum(r), "%q must be alphanumeric", r)
	}
	for _, r := range []rune{'-', '.', ' ', '!', '€', '😀', '́', unicode.ReplacementChar} {
		assert.False(t, fold.IsAlnum(r), "%q must not be alphanumeric", r)
	}
}
