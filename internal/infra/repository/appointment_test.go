//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "rex", want: "rex"},
		{name: "percent escaped", input: "100%", want: `100\%`},
		{name: "underscore escaped", input: "rex_owner", want: `rex\_owner`},
		{name: "backslash escaped", input: `a\b`, want: `a\\b`},
		{name: "mixed wildcards", input: `%_\`, want: `\%\_\\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
