// Package entities defines the canonical character sheet types
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Character is a roster entry in canonical form
type Character struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Portrait         string           `json:"portrait"`
	Ancestry         string           `json:"ancestry"`
	Clazz            string           `json:"clazz"`
	Level            int              `json:"level"`
	Group            string           `json:"group"`
	Campaign         string           `json:"campaign"`
	Stats            Stats            `json:"stats"`
	CurrentHealth    int              `json:"currentHealth"`
	ActiveAbilities  []ActiveAbility  `json:"activeAbilities"`
	PassiveAbilities []PassiveAbility `json:"passiveAbilities"`
	Inventory        []InventoryItem  `json:"inventory"`
	Notes            string           `json:"notes"`
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return "character"
}

// NewBlankCharacter returns the empty draft the editor starts from
func NewBlankCharacter() *Character {
	return &Character{
		Level:            DefaultLevel,
		Portrait:         DefaultPortrait,
		Stats:            EmptyStats(),
		ActiveAbilities:  []ActiveAbility{},
		PassiveAbilities: []PassiveAbility{},
		Inventory:        []InventoryItem{},
	}
}

// Clone returns a structurally independent copy: mutating the copy's maps
// or slices never affects c.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c

	if c.Stats != nil {
		out.Stats = make(Stats, len(c.Stats))
		for k, v := range c.Stats {
			out.Stats[k] = v
		}
	}
	if c.ActiveAbilities != nil {
		out.ActiveAbilities = make([]ActiveAbility, len(c.ActiveAbilities))
		for i, a := range c.ActiveAbilities {
			out.ActiveAbilities[i] = a.Clone()
		}
	}
	if c.PassiveAbilities != nil {
		out.PassiveAbilities = make([]PassiveAbility, len(c.PassiveAbilities))
		for i, p := range c.PassiveAbilities {
			out.PassiveAbilities[i] = p.Clone()
		}
	}
	if c.Inventory != nil {
		out.Inventory = make([]InventoryItem, len(c.Inventory))
		copy(out.Inventory, c.Inventory)
	}
	return &out
}

// FindActiveAbility returns the index of the active ability with id, or -1
func (c *Character) FindActiveAbility(id string) int {
	for i := range c.ActiveAbilities {
		if c.ActiveAbilities[i].ID == id {
			return i
		}
	}
	return -1
}

// FindPassiveAbility returns the index of the passive ability with id, or -1
func (c *Character) FindPassiveAbility(id string) int {
	for i := range c.PassiveAbilities {
		if c.PassiveAbilities[i].ID == id {
			return i
		}
	}
	return -1
}

// FindInventoryItem returns the index of the inventory item with id, or -1
func (c *Character) FindInventoryItem(id string) int {
	for i := range c.Inventory {
		if c.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}
