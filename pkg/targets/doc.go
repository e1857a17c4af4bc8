// Package targets turns raw command-line paths into marked targets and
// decides where each marked target lands for copy, move and link.
//
// Resolution and planning are read-only: they describe paths through a
// types.FileSystemService but never mutate anything.
package targets
