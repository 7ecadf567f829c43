package fold

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// lowerASCII holds the lowercase fold of every ASCII byte as a ready-made
// one-byte string, so folding ASCII input never allocates.
var lowerASCII [utf8.RuneSelf]string

// table maps non-ASCII scalars to their lowercase ASCII approximation.
// Populated once during init, never mutated afterwards.
var table map[rune]string

// overrides lists Latin letters whose ASCII approximation cannot be derived
// by canonical decomposition, keyed per case. Multi-byte expansions (ß → ss)
// live here as well.
var overrides = map[rune]string{
	'ß': "ss", 'ẞ': "ss",
	'æ': "ae", 'Æ': "ae",
	'œ': "oe", 'Œ': "oe",
	'ø': "o", 'Ø': "o",
	'đ': "d", 'Đ': "d",
	'ð': "d", 'Ð': "d",
	'þ': "th", 'Þ': "th",
	'ł': "l", 'Ł': "l",
	'ħ': "h", 'Ħ': "h",
	'ı': "i",
	'ĸ': "k",
	'ŋ': "n", 'Ŋ': "n",
	'ŧ': "t", 'Ŧ': "t",
	'ſ': "s",
	'ĳ': "ij", 'Ĳ': "ij",
	'ƒ': "f", 'Ƒ': "f",
}

// decompRanges are the scalar ranges scanned at init for letters whose fold
// can be derived by NFD decomposition: Latin-1 Supplement, Latin Extended-A,
// Latin Extended-B, and Latin Extended Additional.
var decompRanges = [][2]rune{
	{0x00C0, 0x00FF},
	{0x0100, 0x024F},
	{0x1E00, 0x1EFF},
}

func init() {
	for b := rune(0); b < utf8.RuneSelf; b++ {
		lowerASCII[b] = string([]byte{byte(unicode.ToLower(b))})
	}

	table = make(map[rune]string, 1024)
	for _, rng := range decompRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			if s, ok := decomposeASCII(r); ok {
				table[r] = s
			}
		}
	}
	for r, s := range overrides {
		table[r] = s
	}
}

// decomposeASCII derives the fold of r by canonical (NFD) decomposition:
// combining marks are dropped and the remaining letters lowercased. Reports
// ok=false when any residue falls outside ASCII letters, in which case r has
// no mechanically derivable approximation.
func decomposeASCII(r rune) (string, bool) {
	var buf []byte
	for _, d := range norm.NFD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		l := unicode.ToLower(d)
		if l < 'a' || l > 'z' {
			return "", false
		}
		buf = append(buf, byte(l))
	}
	if len(buf) == 0 {
		return "", false
	}
	return string(buf), true
}

// Fold returns the canonical lowercase ASCII approximation of r as a
// non-empty string. ASCII scalars always fold, to their lowercase selves.
// ok is false when r has no ASCII approximation; callers should then pass
// the scalar through unfolded (lowercased if they compare case-insensitively).
//
// Fold is pure and allocation-free: the returned string is a view into a
// table fixed at package init.
func Fold(r rune) (string, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		return lowerASCII[r], true
	}
	s, ok := table[r]
	return s, ok
}

// IsAlnum reports whether r counts as alphanumeric for ordering purposes:
// an ASCII letter or digit on the fast path, a Unicode letter or number
// otherwise. Everything else — punctuation, whitespace, symbols, emoji,
// standalone combining marks — is not alphanumeric and sorts before it.
func IsAlnum(r rune) bool {
	if r < utf8.RuneSelf {
		return '0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
