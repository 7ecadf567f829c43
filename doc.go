// Package lexicmp compares and sorts strings (or file paths)
// lexicographically: non-ASCII characters such as á or ß are treated like
// their closest ASCII counterpart — á compares as a, ß as ss, and so on.
//
// 🚀 What is lexicmp?
//
//	A dependency-light, allocation-free comparison engine that approximates
//	how humans expect text to sort:
//	  • diacritics fold to their base Latin letter (é → e, ß → ss)
//	  • lexical comparison is case-insensitive
//	  • punctuation, whitespace and symbols sort before alphanumerics
//	  • natural mode compares digit runs by magnitude, so 50 < 100
//	  • skip mode ignores non-alphanumerics, so f-5 sorts next to f5
//
// When two distinct strings have the same ASCII representation ("Foo" and
// "fóò"), the engine falls back to comparing the original scalars, so
// sorting stays deterministic. The fallback keeps the promises of its
// mode: lexical comparison remains case-insensitive ("ABC" still equals
// "abc"), and skip mode keeps ignoring the characters it skipped.
//
// ✨ The eight comparison functions:
//
//	| Function                   | lexical | natural | skips non-alnum |
//	| -------------------------- | :-----: | :-----: | :-------------: |
//	| Cmp                        |         |         |                 |
//	| OnlyAlnumCmp               |         |         |       yes       |
//	| LexicalCmp                 |   yes   |         |                 |
//	| LexicalOnlyAlnumCmp        |   yes   |         |       yes       |
//	| NaturalCmp                 |         |   yes   |                 |
//	| NaturalOnlyAlnumCmp        |         |   yes   |       yes       |
//	| NaturalLexicalCmp          |   yes   |   yes   |                 |
//	| NaturalLexicalOnlyAlnumCmp |   yes   |   yes   |       yes       |
//
// Only the lexical functions are case-insensitive. Each returns the usual
// three-way result (-1, 0, +1), never fails, and allocates nothing; all
// eight are pure and safe for unsynchronized concurrent use, including as
// callbacks of a parallel sort.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/surrealdb/lexicmp"
//		"github.com/surrealdb/lexicmp/strsort"
//	)
//
//	strings := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
//	strsort.Strings(strings, lexicmp.NaturalLexicalCmp)
//	// [".", "50", "100", "B!", "é", "hello", "ß", "world"]
//
// Note: lexicmp doesn't attempt to be correct for every locale, but it
// should work reasonably well for a wide range of locales, while providing
// excellent performance.
//
// Under the hood, everything is organized in three subpackages plus this
// facade:
//
//	fold/    — per-scalar ASCII folding + alphanumeric classification
//	token/   — the lazy tokenizer both comparison sides pull from
//	strsort/ — slice, key-mapped and directory-entry sort helpers
package lexicmp
