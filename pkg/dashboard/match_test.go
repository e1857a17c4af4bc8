// pkg/dashboard/match_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the incremental filter predicate

package dashboard_test

import (
	"testing"

	"github.com/arthur-debert/fuga/pkg/dashboard"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		candidate string
		filter    string
		want      bool
	}{
		{"notes.txt", "nt", true},
		{"notes.txt", "tn", false},
		{"notes.txt", "", true},
		{"notes.txt", "NOTES", true},
		{"Notes.TXT", "ntx", true},
		{"notes.txt", "notes.txt", true},
		{"notes.txt", "notes.txt.bak", false},
		{"", "a", false},
		{"", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dashboard.Matches(tt.candidate, tt.filter),
			"Matches(%q, %q)", tt.candidate, tt.filter)
	}
}
