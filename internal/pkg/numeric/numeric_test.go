package numeric_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/numeric"
)

func TestParseInt(t *testing.T) {
	testCases := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{name: "int", input: 3, want: 3, wantOK: true},
		{name: "negative int", input: -2, want: -2, wantOK: true},
		{name: "json float", input: float64(30), want: 30, wantOK: true},
		{name: "fractional float truncates", input: 2.9, want: 2, wantOK: true},
		{name: "json number", input: json.Number("12"), want: 12, wantOK: true},
		{name: "numeric string", input: " 7 ", want: 7, wantOK: true},
		{name: "decimal string", input: "3.7", want: 3, wantOK: true},
		{name: "dice expression reads leading count", input: "2d6", want: 2, wantOK: true},
		{name: "trailing words", input: "3 turnos", want: 3, wantOK: true},
		{name: "ordinal suffix", input: "3º", want: 3, wantOK: true},
		{name: "signed string", input: "+2", want: 2, wantOK: true},
		{name: "negative string", input: " -4 hp", want: -4, wantOK: true},
		{name: "json number with exponent", input: json.Number("1e3"), want: 1000, wantOK: true},
		{name: "no leading digit", input: "d6", wantOK: false},
		{name: "sign only", input: "-", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "bool", input: true, wantOK: false},
		{name: "NaN", input: math.NaN(), wantOK: false},
		{name: "infinity", input: math.Inf(1), wantOK: false},
		{name: "out of range string", input: "1000000000000", wantOK: false},
		{name: "out of range int64", input: int64(1) << 40, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := numeric.ParseInt(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 5, numeric.IntOr("5", 1))
	assert.Equal(t, 1, numeric.IntOr("five", 1))
	assert.Equal(t, 3, numeric.IntOr("3 turnos", 0))
}

func TestNonNegativeOr(t *testing.T) {
	assert.Equal(t, 4, numeric.NonNegativeOr(4, 0))
	assert.Equal(t, 0, numeric.NonNegativeOr(-4, 0))
	assert.Equal(t, 6, numeric.NonNegativeOr(nil, 6))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, numeric.Clamp(-1, 0, 3))
	assert.Equal(t, 3, numeric.Clamp(9, 0, 3))
	assert.Equal(t, 2, numeric.Clamp(2, 0, 3))
	assert.Equal(t, 0, numeric.Clamp(2, 0, -1))
}
