package strsort

import (
	"io/fs"
	"slices"

	"github.com/surrealdb/lexicmp"
)

// Strings sorts s in place using cmp. The sort is unstable: the original
// order of strings that compare equal is not preserved.
func Strings(s []string, cmp lexicmp.CompareFunc) {
	slices.SortFunc(s, cmp)
}

// StringsStable sorts s in place using cmp, preserving the relative order
// of strings that compare equal.
func StringsStable(s []string, cmp lexicmp.CompareFunc) {
	slices.SortStableFunc(s, cmp)
}

// StringsBy sorts s in place using cmp, applying key to each string before
// comparing it. key must be a pure view into its argument, such as
// strings.TrimSpace; the stored strings themselves are not modified.
func StringsBy(s []string, cmp lexicmp.CompareFunc, key func(string) string) {
	slices.SortFunc(s, func(a, b string) int { return cmp(key(a), key(b)) })
}

// StringsStableBy is StringsBy with a stable sort.
func StringsStableBy(s []string, cmp lexicmp.CompareFunc, key func(string) string) {
	slices.SortStableFunc(s, func(a, b string) int { return cmp(key(a), key(b)) })
}

// Slice sorts any slice in place by a string key derived from each
// element. The sort is unstable.
func Slice[T any](s []T, cmp lexicmp.CompareFunc, key func(T) string) {
	slices.SortFunc(s, func(a, b T) int { return cmp(key(a), key(b)) })
}

// SliceStable is Slice with a stable sort.
func SliceStable[T any](s []T, cmp lexicmp.CompareFunc, key func(T) string) {
	slices.SortStableFunc(s, func(a, b T) int { return cmp(key(a), key(b)) })
}

// DirEntries sorts a directory listing in place by entry name. Names that
// are not valid UTF-8 still sort deterministically. The sort is unstable,
// which is harmless here since names within a directory are unique.
func DirEntries(entries []fs.DirEntry, cmp lexicmp.CompareFunc) {
	slices.SortFunc(entries, func(a, b fs.DirEntry) int { return cmp(a.Name(), b.Name()) })
}
