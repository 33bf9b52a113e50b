package statroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/statroll"
)

type fixedRoller struct {
	value int
}

func (f *fixedRoller) Roll(_ int) (int, error) { return f.value, nil }
func (f *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = f.value
	}
	return out, nil
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected statroll.Expression
		str      string
	}{
		{name: "flat", input: " 13 ", expected: statroll.Expression{Modifier: 13}, str: "13"},
		{name: "plain dice", input: "2d6", expected: statroll.Expression{Count: 2, Size: 6}, str: "2d6"},
		{name: "implicit count", input: "d20", expected: statroll.Expression{Count: 1, Size: 20}, str: "1d20"},
		{name: "bonus", input: "1D20 + 3", expected: statroll.Expression{Count: 1, Size: 20, Modifier: 3}, str: "1d20+3"},
		{name: "penalty", input: "3d4-1", expected: statroll.Expression{Count: 3, Size: 4, Modifier: -1}, str: "3d4-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := statroll.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, expr)
			assert.Equal(t, tc.str, expr.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "0d6", "2d0", "2d6+", "500d6"} {
		_, err := statroll.Parse(input)
		require.Error(t, err, input)
		assert.True(t, errors.IsInvalidArgument(err), input)
	}
}

func TestRoll(t *testing.T) {
	roller := statroll.New(&fixedRoller{value: 4})

	result, err := roller.Roll("2d6+1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, result.Dice)
	assert.Equal(t, 9, result.Total)
	assert.Equal(t, "2d6+1 [4,4] = 9", result.Description())

	result, err = roller.Roll("3")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Empty(t, result.Dice)
	assert.Equal(t, "3 = 3", result.Description())
}

func TestRollWithDefaultRoller(t *testing.T) {
	result, err := statroll.New(nil).Roll("4d6")
	require.NoError(t, err)
	assert.Len(t, result.Dice, 4)
	assert.GreaterOrEqual(t, result.Total, 4)
	assert.LessOrEqual(t, result.Total, 24)
}
