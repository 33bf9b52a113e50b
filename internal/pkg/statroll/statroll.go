// Package statroll rolls character stats written as dice expressions (2d6, 1d20+3)
package statroll

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

const (
	maxDiceCount = 100
	maxDieSize   = 1000
)

var expressionRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)

// Expression is a parsed dice expression. Count 0 means a flat value.
type Expression struct {
	Count    int
	Size     int
	Modifier int
}

// IsFlat reports whether the expression is a plain number
func (e Expression) IsFlat() bool {
	return e.Count == 0
}

// String formats the expression in NdM+K notation
func (e Expression) String() string {
	if e.IsFlat() {
		return strconv.Itoa(e.Modifier)
	}
	switch {
	case e.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Size, e.Modifier)
	case e.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", e.Count, e.Size, -e.Modifier)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Size)
	}
}

// Parse reads a stat value as a dice expression or a flat integer
func Parse(value string) (Expression, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), ""))
	if normalized == "" {
		return Expression{}, errors.InvalidArgument("stat has no value")
	}

	if flat, err := strconv.Atoi(normalized); err == nil {
		return Expression{Modifier: flat}, nil
	}

	matches := expressionRegex.FindStringSubmatch(normalized)
	if matches == nil {
		return Expression{}, errors.InvalidArgumentf("invalid dice expression: %s (expected format: NdM+K)", value)
	}

	count := 1
	if matches[1] != "" {
		count, _ = strconv.Atoi(matches[1])
	}
	size, _ := strconv.Atoi(matches[2])
	if count <= 0 || size <= 0 {
		return Expression{}, errors.InvalidArgumentf("dice count and size must be positive: %s", value)
	}
	if count > maxDiceCount || size > maxDieSize {
		return Expression{}, errors.InvalidArgumentf("dice expression too large: %s", value)
	}

	modifier := 0
	if matches[4] != "" {
		modifier, _ = strconv.Atoi(matches[4])
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return Expression{Count: count, Size: size, Modifier: modifier}, nil
}

// Result of rolling a stat
type Result struct {
	Expression Expression
	Dice       []int
	Total      int
}

// Description renders the roll, e.g. "2d6+1 [3,4] = 8"
func (r *Result) Description() string {
	if r.Expression.IsFlat() {
		return fmt.Sprintf("%s = %d", r.Expression, r.Total)
	}
	values := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		values[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("%s [%s] = %d", r.Expression, strings.Join(values, ","), r.Total)
}

// Roller rolls stat expressions with an rpg-toolkit dice roller
type Roller struct {
	dice dice.Roller
}

// New creates a Roller. A nil roller uses the toolkit's default random roller.
func New(roller dice.Roller) *Roller {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Roller{dice: roller}
}

// Roll parses value and rolls it. Flat values roll no dice.
func (r *Roller) Roll(value string) (*Result, error) {
	expr, err := Parse(value)
	if err != nil {
		return nil, err
	}
	if expr.IsFlat() {
		return &Result{Expression: expr, Dice: []int{}, Total: expr.Modifier}, nil
	}

	rolled, err := r.dice.RollN(expr.Count, expr.Size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", expr)
	}

	total := expr.Modifier
	for _, d := range rolled {
		total += d
	}
	return &Result{Expression: expr, Dice: rolled, Total: total}, nil
}
