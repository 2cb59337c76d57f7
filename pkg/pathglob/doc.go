// Package pathglob matches filesystem paths against glob-bearing path
// patterns and lazily enumerates the paths that satisfy them.
//
// A path pattern is a slash-separated path whose components may contain
// the glob syntax of package glob; in addition a component consisting of
// "**" matches any run of complete components. Matcher decides whether a
// given path satisfies such a pattern; Iterator walks the filesystem and
// yields each matching path exactly once:
//
//	it, err := pathglob.NewIterator("src/**/*.{h,cpp}", 0)
//	if err != nil { ... }
//	for it.Next() {
//		fmt.Println(it.Path())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Iteration is driven as a pipeline of per-component stages: runs of
// literal components, single-component globs, and one recursive stage for
// "**". Each stage holds the listing of one directory at a time (the
// recursive stage one listing per directory level it has descended into),
// so enumeration is lazy and memory does not grow with the number of
// matches.
package pathglob
