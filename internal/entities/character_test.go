package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
)

func TestCloneIsIndependent(t *testing.T) {
	original := &entities.Character{
		ID:    "boomer",
		Name:  "Boomer",
		Stats: entities.Stats{entities.StatLife: "30"},
		ActiveAbilities: []entities.ActiveAbility{
			{ID: "fireball", Title: "Fireball", Features: []string{"burns"}},
		},
		PassiveAbilities: []entities.PassiveAbility{
			{ID: "tough", Title: "Tough", Modifiers: []entities.Modifier{{Stat: entities.StatLife, Value: 2}}},
		},
		Inventory: []entities.InventoryItem{{ID: "rope", Title: "Rope"}},
	}

	clone := original.Clone()
	clone.Stats[entities.StatLife] = "1"
	clone.ActiveAbilities[0].Features[0] = "freezes"
	clone.PassiveAbilities[0].Modifiers[0].Value = 9
	clone.Inventory[0].Title = "Chain"
	clone.ActiveAbilities = append(clone.ActiveAbilities, entities.ActiveAbility{ID: "extra"})

	assert.Equal(t, "30", original.Stats[entities.StatLife])
	assert.Equal(t, "burns", original.ActiveAbilities[0].Features[0])
	assert.Equal(t, 2, original.PassiveAbilities[0].Modifiers[0].Value)
	assert.Equal(t, "Rope", original.Inventory[0].Title)
	assert.Len(t, original.ActiveAbilities, 1)
}

func TestCloneNil(t *testing.T) {
	var c *entities.Character
	assert.Nil(t, c.Clone())
}

func TestNewBlankCharacter(t *testing.T) {
	blank := entities.NewBlankCharacter()

	require.Len(t, blank.Stats, len(entities.StatKeys()))
	for _, key := range entities.StatKeys() {
		assert.Equal(t, "", blank.Stats[key])
	}
	assert.Equal(t, entities.DefaultPortrait, blank.Portrait)
	assert.Equal(t, 1, blank.Level)
}

func TestEntityTypes(t *testing.T) {
	c := &entities.Character{ID: "boomer"}
	a := &entities.ActiveAbility{ID: "fireball"}

	assert.Equal(t, "boomer", c.GetID())
	assert.Equal(t, "character", c.GetType())
	assert.Equal(t, "fireball", a.GetID())
	assert.Equal(t, "active_ability", a.GetType())
}

func TestStatKeys(t *testing.T) {
	assert.True(t, entities.IsStatKey("life"))
	assert.False(t, entities.IsStatKey("vida"))
	assert.Equal(t, "Movement", entities.StatMovement.Label())
	assert.Equal(t, []string{"life", "attack", "defense", "damage", "movement", "range"}, entities.StatKeyNames())
}

func TestBasicAttack(t *testing.T) {
	basic := entities.NewBasicAttack("Boomer")

	assert.True(t, basic.IsBasic)
	assert.Equal(t, entities.BasicAttackID, basic.ID)
	assert.Equal(t, "Basic attack of Boomer.", basic.Description)
	assert.Equal(t, "Basic attack of the character.", entities.BasicAttackDescription(""))
	assert.True(t, entities.IsBasicAttackID("ataque-basico"))
}
