package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"0", 0},
		{"42.25", 42.25},
		{"  7", 7},
		{"-2", -2},
		{"+3", 3},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1.5E-2", 0.015},
		{"3.5abc", 3.5},
		{"12px", 12},
		{"1e", 1},
		{"2e+", 2},
		{"1.2.3", 1.2},
		{"Infinity", math.Inf(1)},
		{"-Infinityx", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloat(tt.in))
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	for _, in := range []string{"", " ", "abc", "-", ".", "+.", "e5", "inf", "NaN"} {
		assert.True(t, math.IsNaN(ParseFloat(in)), "input %q", in)
	}
}
