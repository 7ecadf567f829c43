// Package fold maps Unicode scalars to their closest lowercase ASCII
// approximation and classifies characters as alphanumeric or not.
//
// Folding is the foundation of lexicographical comparison: `á` is treated
// as `a`, `Å` as `a`, `ß` as `ss`, and so on. A fold is always lowercase,
// always at least one byte long, and depends only on the scalar itself —
// never on surrounding text, locale, or any runtime state.
//
// The mapping lives in an immutable table assembled once at package init:
// a small set of hand-written entries covers the Latin letters that cannot
// be derived mechanically (ß, æ, ø, þ, đ, ...), and the rest of the Latin
// ranges are derived by canonically decomposing each candidate scalar and
// discarding its combining marks. After init the table is read-only, so
// folding is safe for unsynchronized concurrent use.
//
// Scalars with no ASCII approximation (CJK, emoji, symbols, ...) report no
// fold; callers are expected to pass them through unchanged.
//
// ⚙️ Usage:
//
//	s, ok := fold.Fold('ß') // "ss", true
//	s, ok = fold.Fold('Á')  // "a", true
//	_, ok = fold.Fold('漢') // "", false
//
//	fold.IsAlnum('x') // true
//	fold.IsAlnum('!') // false
package fold
