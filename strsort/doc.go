// Package strsort sorts slices in place using the lexicmp comparison
// functions.
//
// It is thin glue over the standard library sort routines: pick one of the
// eight comparators (or any lexicmp.CompareFunc) and hand it a slice of
// strings, a slice of arbitrary elements with a string key, or a directory
// listing.
//
// The Stable variants preserve the relative order of elements that compare
// equal; the plain variants are slightly faster and do not. The By and
// key-mapped variants apply a pure mapping (for example
// strings.TrimSpace) to each element before comparing, never before
// reordering.
//
// ⚙️ Usage:
//
//	names := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
//	strsort.Strings(names, lexicmp.NaturalLexicalCmp)
//
//	// or trim the strings before comparing:
//	strsort.StringsBy(names, lexicmp.NaturalLexicalCmp, strings.TrimSpace)
//
// File names read from a directory sort the same way via DirEntries.
// Invalid UTF-8 in a name never fails a sort: each malformed byte
// tokenizes as the replacement scalar, so such names still receive a
// deterministic position. Names that decode identically compare equal,
// exactly as with a lossy text conversion; use a Stable variant if their
// relative input order matters.
package strsort
