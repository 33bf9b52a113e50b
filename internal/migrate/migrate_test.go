package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

type MigrateTestSuite struct {
	suite.Suite
}

func TestMigrateSuite(t *testing.T) {
	suite.Run(t, new(MigrateTestSuite))
}

func (s *MigrateTestSuite) TestCharacterLegacyFields() {
	in := record.Record{
		"nombre":        "Boomer, el chamuscado",
		"raza":          "Humano",
		"clase":         "Mago",
		"nivel":         "3",
		"grupo":         "Sir Diego",
		"campaña":       "Los cultistas y Maria",
		"notas":         "quemado",
		"vidaActual":    12,
		"retrato":       "boomer.png",
		"identificador": "boomer",
		"estadisticas": map[string]any{
			"vida":   "30",
			"ataque": "3",
			"daño":   "1d6",
		},
	}

	out := migrate.Character(in)

	s.Equal("Boomer, el chamuscado", out["name"])
	s.Equal("Humano", out["ancestry"])
	s.Equal("Mago", out["clazz"])
	s.Equal("3", out["level"])
	s.Equal("Sir Diego", out["group"])
	s.Equal("Los cultistas y Maria", out["campaign"])
	s.Equal("quemado", out["notes"])
	s.Equal(12, out["currentHealth"])
	s.Equal("boomer.png", out["portrait"])
	s.Equal("boomer", out["id"])

	stats, ok := out.Record("stats")
	s.Require().True(ok)
	s.Equal("30", stats["life"])
	s.Equal("3", stats["attack"])
	s.Equal("1d6", stats["damage"])
}

func (s *MigrateTestSuite) TestCanonicalFieldsWin() {
	in := record.Record{
		"name":   "Canonical",
		"nombre": "Legacy",
		"stats":  map[string]any{"life": "10", "vida": "99"},
	}

	out := migrate.Character(in)

	s.Equal("Canonical", out["name"])
	stats, _ := out.Record("stats")
	s.Equal("10", stats["life"])
}

func (s *MigrateTestSuite) TestNullCanonicalIsFilled() {
	out := migrate.Character(record.Record{"name": nil, "alias": "Sombra"})
	s.Equal("Sombra", out["name"])
}

func (s *MigrateTestSuite) TestLegacyProbeOrder() {
	out := migrate.ActiveAbility(record.Record{
		"progreso":        2,
		"currentCooldown": 1,
	})
	s.Equal(2, out["cooldownProgress"])
}

func (s *MigrateTestSuite) TestDoesNotMutateInput() {
	in := record.Record{"nombre": "Boomer"}
	_ = migrate.Character(in)

	s.NotContains(in, "name")
}

func (s *MigrateTestSuite) TestNilInput() {
	s.Nil(migrate.Character(nil))
	s.Nil(migrate.ActiveAbility(nil))
	s.Nil(migrate.PassiveAbility(nil))
	s.Nil(migrate.InventoryItem(nil))
}

func (s *MigrateTestSuite) TestNestedLegacyLists() {
	in := record.Record{
		"habilidadesActivas": []any{
			map[string]any{"titulo": "Bola de fuego", "enfriamiento": 3, "esBasica": false},
			"not an object",
		},
		"habilidadesPasivas": []any{
			map[string]any{
				"nombre": "Piel dura",
				"modificadores": []any{
					map[string]any{"estadistica": "defensa", "valor": 2},
				},
			},
		},
		"inventario": []any{
			map[string]any{"titulo": "Antorcha", "icono": "torch.png"},
		},
	}

	out := migrate.Character(in)

	actives, ok := out.List("activeAbilities")
	s.Require().True(ok)
	s.Require().Len(actives, 1)
	active := actives[0].(record.Record)
	s.Equal("Bola de fuego", active["title"])
	s.Equal(3, active["cooldown"])
	s.Equal(false, active["isBasic"])

	passives, _ := out.List("passiveAbilities")
	s.Require().Len(passives, 1)
	passive := passives[0].(record.Record)
	s.Equal("Piel dura", passive["title"])
	modifiers, _ := passive.List("modifiers")
	s.Require().Len(modifiers, 1)
	modifier := modifiers[0].(record.Record)
	s.Equal("defense", modifier["stat"])
	s.Equal(2, modifier["value"])

	items, _ := out.List("inventory")
	s.Require().Len(items, 1)
	item := items[0].(record.Record)
	s.Equal("Antorcha", item["title"])
	s.Equal("torch.png", item["image"])
}

func (s *MigrateTestSuite) TestNestedCanonicalLists() {
	in := record.Record{
		"activeAbilities": []any{
			map[string]any{"titulo": "Golpe", "duracion": 2},
		},
	}

	out := migrate.Character(in)

	actives, _ := out.List("activeAbilities")
	s.Require().Len(actives, 1)
	active := actives[0].(record.Record)
	s.Equal("Golpe", active["title"])
	s.Equal(2, active["effectDuration"])
}

func (s *MigrateTestSuite) TestScalarFeaturesBecomeText() {
	out := migrate.ActiveAbility(record.Record{"titulo": "Golpe", "rasgos": "uno\ndos"})
	s.Equal("uno\ndos", out["features"])

	out = migrate.ActiveAbility(record.Record{"features": []any{"a"}})
	s.Equal([]any{"a"}, out["features"])
}

func (s *MigrateTestSuite) TestStatKey() {
	s.Equal("life", migrate.StatKey("vida"))
	s.Equal("damage", migrate.StatKey("danio"))
	s.Equal("range", migrate.StatKey("range"))
	s.Equal("luck", migrate.StatKey("luck"))
}
