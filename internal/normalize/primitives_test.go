package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

func TestStatValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "trimmed string", input: "  12 ", expected: "12"},
		{name: "dice expression", input: " 1d6+2", expected: "1d6+2"},
		{name: "integer", input: 30, expected: "30"},
		{name: "float", input: 3.5, expected: "3.5"},
		{name: "json number", input: json.Number("13"), expected: "13"},
		{name: "object", input: map[string]any{"x": 1}, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalize.StatValue(tc.input))
		})
	}
}

func TestStatsAlwaysCarriesEveryKey(t *testing.T) {
	stats := normalize.Stats(record.Record{"life": "30", "luck": "7"})

	assert.Len(t, stats, len(entities.StatKeys()))
	assert.Equal(t, "30", stats[entities.StatLife])
	assert.Equal(t, "", stats[entities.StatRange])
	assert.NotContains(t, stats, entities.StatKey("luck"))

	assert.Equal(t, entities.EmptyStats(), normalize.Stats("garbage"))
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, []string{"uno", "dos"}, normalize.Features("uno\r\n\n  dos  "))
	assert.Equal(t, []string{"a", "3"}, normalize.Features([]any{" a ", "", 3, map[string]any{}}))
	assert.Equal(t, []string{"x"}, normalize.Features([]string{"x", " "}))
	assert.Equal(t, []string{}, normalize.Features(nil))
}

func TestModifiers(t *testing.T) {
	modifiers := normalize.Modifiers([]any{
		map[string]any{"stat": "defense", "value": 2},
		map[string]any{"stat": "vida", "value": "-1"},
		map[string]any{"stat": "luck", "value": 1},
		map[string]any{"stat": "attack", "value": "lots"},
		"junk",
	})

	assert.Equal(t, []entities.Modifier{
		{Stat: entities.StatDefense, Value: 2},
		{Stat: entities.StatLife, Value: -1},
	}, modifiers)
	assert.Equal(t, []entities.Modifier{}, normalize.Modifiers(nil))
}

func TestCurrentHealth(t *testing.T) {
	stats := entities.Stats{entities.StatLife: "30"}

	assert.Equal(t, 12, normalize.CurrentHealth(12, stats))
	assert.Equal(t, 30, normalize.CurrentHealth(nil, stats))
	assert.Equal(t, 30, normalize.CurrentHealth("abc", stats))
	assert.Equal(t, 0, normalize.CurrentHealth(-5, stats))
	assert.Equal(t, 45, normalize.CurrentHealth(45, stats))
	assert.Equal(t, 2, normalize.CurrentHealth(nil, entities.Stats{entities.StatLife: "2d6"}))
	assert.Equal(t, 0, normalize.CurrentHealth(nil, entities.Stats{entities.StatLife: "d6"}))
}

func TestPortrait(t *testing.T) {
	assert.Equal(t, "boomer.png", normalize.Portrait(" boomer.png "))
	for _, v := range []any{nil, "", "null", "undefined", 42} {
		assert.Equal(t, entities.DefaultPortrait, normalize.Portrait(v))
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, 3, normalize.Level("3"))
	assert.Equal(t, 1, normalize.Level(0))
	assert.Equal(t, 1, normalize.Level("abc"))
	assert.Equal(t, 4, normalize.Level(4.9))
	assert.Equal(t, 3, normalize.Level("3º"))
}
