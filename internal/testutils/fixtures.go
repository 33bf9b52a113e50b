package testutils

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Boomer, el chamuscado"
	// TestCharacterID is the ID derived from TestCharacterName
	TestCharacterID = "boomer-el-chamuscado"
)

// CreateTestCharacter returns a canonical character with the basic attack, a
// ready fireball, one passive ability and one inventory item
func CreateTestCharacter() *entities.Character {
	return normalize.Entity(builders.NewCharacterBuilder().
		WithID(TestCharacterID).
		WithName(TestCharacterName).
		WithStat(entities.StatLife, "30").
		WithStat(entities.StatAttack, "3").
		WithStat(entities.StatDamage, "1d6").
		WithCurrentHealth(30).
		WithActiveAbility(entities.NewBasicAttack(TestCharacterName)).
		WithActiveAbility(entities.ActiveAbility{
			ID:               "fireball-active",
			Title:            "Fireball",
			Cooldown:         3,
			CooldownProgress: 3,
			Image:            "fireball.png",
		}).
		WithPassiveAbility(entities.PassiveAbility{
			ID:        "tough-skin-passive",
			Title:     "Tough skin",
			Modifiers: []entities.Modifier{{Stat: entities.StatDefense, Value: 2}},
		}).
		WithInventoryItem(entities.InventoryItem{ID: "torch-item", Title: "Torch"}).
		Build())
}

// CreateTestRoster returns canonical characters with the given names
func CreateTestRoster(names ...string) []*entities.Character {
	out := make([]*entities.Character, 0, len(names))
	for _, name := range names {
		out = append(out, normalize.Entity(builders.NewCharacterBuilder().WithName(name).Build()))
	}
	return out
}
