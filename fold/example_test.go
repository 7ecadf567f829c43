package fold_test

import (
	"fmt"

	"github.com/surrealdb/lexicmp/fold"
)

// ExampleFold demonstrates folding accented letters, ligatures, and a
// scalar with no ASCII approximation.
func ExampleFold() {
	for _, r := range []rune{'Á', 'ß', 'œ', '!', '漢'} {
		s, ok := fold.Fold(r)
		fmt.Printf("%c → %q (ok=%v)\n", r, s, ok)
	}
	// Output:
	// Á → "a" (ok=true)
	// ß → "ss" (ok=true)
	// œ → "oe" (ok=true)
	// ! → "!" (ok=true)
	// 漢 → "" (ok=false)
}

// ExampleIsAlnum demonstrates the alphanumeric test used to rank
// punctuation before letters and digits.
func ExampleIsAlnum() {
	fmt.Println(fold.IsAlnum('a'), fold.IsAlnum('7'), fold.IsAlnum('-'), fold.IsAlnum('é'))
	// Output: true true false true
}
