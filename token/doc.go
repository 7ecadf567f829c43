// Package token turns a string into the lazy stream of units that the
// comparison engine consumes.
//
// A Tokenizer is a single-pass cursor over one source string. Each call to
// Next yields one token:
//
//   - a Unit — one scalar, folded to its ASCII approximation in lexical
//     mode or passed through raw otherwise, tagged with its class; or
//   - a Number — in natural mode, the next maximal run of ASCII decimal
//     digits, carried as the raw digit substring so runs of any length
//     compare without overflow.
//
// In skip mode the cursor silently advances over non-alphanumeric input
// without emitting anything.
//
// When a fold expands one scalar into several bytes (ß → ss), the tail is
// buffered and emitted on subsequent pulls before the cursor advances, so
// "ß" and "ss" stay in lock-step when two streams are compared side by
// side. State is O(1): a byte offset plus the residual of the current
// expansion; no intermediate strings are materialized.
//
// ⚙️ Usage:
//
//	tok := token.New("ß2", token.Mode{Lexical: true, Natural: true})
//	for {
//		t, ok := tok.Next()
//		if !ok {
//			break
//		}
//		// Unit('s') Unit('s') Number("2")
//	}
package token
