package entities

import "fmt"

// DefaultPortrait is the bundled placeholder used whenever a character has no usable portrait
const DefaultPortrait = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAEAAAABACAQAAAAAYLlVAAAAKklEQVR4Ae3BMQEAAADCIPunNsN+YAAAAAAAAAAAAAAAAAAAAAD4GlrxAAE9eEIAAAAASUVORK5CYII="

// DefaultAbilityImage is shown for abilities without an image
const DefaultAbilityImage = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAxMjAgMTIwIj48cmVjdCB3aWR0aD0iMTIwIiBoZWlnaHQ9IjEyMCIgcng9IjE2IiBmaWxsPSIlMjMyYjIxM2EiLz48cGF0aCBkPSJNNjAgMThsMTIuOSAyNi4yIDI4LjkgNC4yLTIxIDE5LjYgNSAyOC41TDYwIDgzLjIgMzQuMiA5Ni41bDUtMjguNS0yMS0xOS42IDI4LjktNC4yeiIgZmlsbD0iJTIzZjRjODZhIiBvcGFjaXR5PSIwLjkiLz48L3N2Zz4="

const (
	// BasicAttackID is the id of the synthesized basic attack
	BasicAttackID = "basic-attack"
	// LegacyBasicAttackID is the id older rosters used for the basic attack
	LegacyBasicAttackID = "ataque-basico"
	// BasicAttackTitle is the title of the synthesized basic attack
	BasicAttackTitle = "Basic attack"
	// BasicAttackFeature describes what the synthesized basic attack does
	BasicAttackFeature = "Deals the character's base damage."

	// UnnamedCharacter replaces a blank character name
	UnnamedCharacter = "Unnamed character"
	// UntitledItem replaces a blank inventory item title
	UntitledItem = "Untitled item"

	// DefaultLevel is the level of characters without a valid one
	DefaultLevel = 1
)

// IsBasicAttackID reports whether id names the basic attack in the current or legacy schema
func IsBasicAttackID(id string) bool {
	return id == BasicAttackID || id == LegacyBasicAttackID
}

// BasicAttackDescription is the description of the basic attack for the named character
func BasicAttackDescription(characterName string) string {
	if characterName == "" {
		characterName = "the character"
	}
	return fmt.Sprintf("Basic attack of %s.", characterName)
}

// NewBasicAttack builds the mandatory basic attack for a character
func NewBasicAttack(characterName string) ActiveAbility {
	return ActiveAbility{
		ID:          BasicAttackID,
		Title:       BasicAttackTitle,
		Description: BasicAttackDescription(characterName),
		Features:    []string{BasicAttackFeature},
		IsBasic:     true,
	}
}
