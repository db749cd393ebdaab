package shortcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codeRe = regexp.MustCompile(`^[0-9a-z]+$`)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "default on zero", length: 0, want: DefaultLength},
		{name: "six chars", length: 6, want: 6},
		{name: "longer than one uuid", length: 40, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := Generate(tt.length)
			assert.Len(t, code, tt.want)
			assert.Regexp(t, codeRe, code)
		})
	}
}

func TestGenerate_NoCollisionsInSmallSample(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code := Generate(DefaultLength)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
