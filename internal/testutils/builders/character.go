// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
)

// CharacterBuilder provides a fluent interface for building test Character instances.
// Build does not normalize; pass the result through normalize.Entity for canonical form.
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder starting from a blank character
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: entities.NewBlankCharacter()}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the name, deriving the ID when none was set
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	if b.character.ID == "" {
		b.character.ID = idgen.Derive(name)
	}
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithStat sets a single stat
func (b *CharacterBuilder) WithStat(key entities.StatKey, value string) *CharacterBuilder {
	b.character.Stats[key] = value
	return b
}

// WithCurrentHealth sets the tracked health
func (b *CharacterBuilder) WithCurrentHealth(health int) *CharacterBuilder {
	b.character.CurrentHealth = health
	return b
}

// WithPortrait sets the portrait reference
func (b *CharacterBuilder) WithPortrait(portrait string) *CharacterBuilder {
	b.character.Portrait = portrait
	return b
}

// WithActiveAbility appends an active ability
func (b *CharacterBuilder) WithActiveAbility(ability entities.ActiveAbility) *CharacterBuilder {
	b.character.ActiveAbilities = append(b.character.ActiveAbilities, ability)
	return b
}

// WithPassiveAbility appends a passive ability
func (b *CharacterBuilder) WithPassiveAbility(ability entities.PassiveAbility) *CharacterBuilder {
	b.character.PassiveAbilities = append(b.character.PassiveAbilities, ability)
	return b
}

// WithInventoryItem appends an inventory item
func (b *CharacterBuilder) WithInventoryItem(item entities.InventoryItem) *CharacterBuilder {
	b.character.Inventory = append(b.character.Inventory, item)
	return b
}

// WithNotes sets the notes
func (b *CharacterBuilder) WithNotes(notes string) *CharacterBuilder {
	b.character.Notes = notes
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
