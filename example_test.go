package lexicmp_test

import (
	"fmt"

	"github.com/surrealdb/lexicmp"
	"github.com/surrealdb/lexicmp/strsort"
)

// ExampleNaturalLexicalCmp reproduces the canonical mixed corpus:
// punctuation first, then numbers by magnitude, then folded,
// case-insensitive letters.
func ExampleNaturalLexicalCmp() {
	names := []string{"ß", "é", "100", "hello", "world", "50", ".", "B!"}
	strsort.Strings(names, lexicmp.NaturalLexicalCmp)
	fmt.Println(names)
	// Output: [. 50 100 B! é hello ß world]
}

// ExampleLexicalCmp contrasts lexical comparison with plain codepoint
// order.
func ExampleLexicalCmp() {
	fmt.Println(lexicmp.LexicalCmp("ABC", "abc"))
	fmt.Println(lexicmp.Cmp("ABC", "abc"))
	fmt.Println(lexicmp.LexicalCmp(".", "a"))
	// Output:
	// 0
	// -1
	// -1
}

// ExampleNaturalCmp shows digit runs compared by magnitude.
func ExampleNaturalCmp() {
	fmt.Println(lexicmp.NaturalCmp("50", "100"))
	fmt.Println(lexicmp.Cmp("50", "100"))
	// Output:
	// -1
	// 1
}

// ExampleCompare builds the same comparison from options.
func ExampleCompare() {
	c := lexicmp.Compare("f-5", "f5", lexicmp.Natural(), lexicmp.Lexical(), lexicmp.OnlyAlnum())
	fmt.Println(c)
	// Output: 0
}
