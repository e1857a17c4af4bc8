package dashboard

import "github.com/lithammer/fuzzysearch/fuzzy"

// Matches reports whether every character of filter appears in candidate in
// order, ignoring case. An empty filter matches everything.
func Matches(candidate, filter string) bool {
	if filter == "" {
		return true
	}
	return fuzzy.MatchFold(filter, candidate)
}

// popRune drops the last character of s.
func popRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
