package roster

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

// SeedFunc returns the roster written on the very first run
type SeedFunc func() []*entities.Character

// DefaultSeed returns the bundled starter roster
func DefaultSeed() []*entities.Character {
	return normalize.Roster([]any{
		record.Record{
			"id":       "boomer-el-chamuscado",
			"name":     "Boomer, el chamuscado",
			"ancestry": "Humano",
			"clazz":    "Mago",
			"level":    3,
			"group":    "Sir Diego",
			"campaign": "Los cultistas y Maria",
			"estadisticas": record.Record{
				"vida":       "30",
				"ataque":     "3",
				"defensa":    "13",
				"danio":      "3",
				"movimiento": "3",
				"alcance":    "3",
			},
			"currentHealth": 30,
		},
	})
}

// SeedFromYAML parses a seed roster file: a YAML sequence of characters in the
// current or any legacy schema
func SeedFromYAML(data []byte) ([]*entities.Character, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid seed roster")
	}

	list := make([]any, 0, len(raw))
	for _, entry := range raw {
		rec, err := record.FromStruct(entry)
		if err != nil {
			return nil, errors.Wrap(err, "invalid seed character")
		}
		list = append(list, map[string]any(rec))
	}
	return normalize.Roster(list), nil
}
