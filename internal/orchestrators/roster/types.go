package roster

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/statroll"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/transfer"
)

// LoadInput defines the request for loading the roster
type LoadInput struct{}

// LoadOutput defines the response for loading the roster
type LoadOutput struct {
	Source     rosterrepo.Source
	Count      int
	SelectedID string
}

// ApplyCharacterUpdateInput defines the request for updating a character
type ApplyCharacterUpdateInput struct {
	CharacterID string
	Mutator     Mutator
}

// ApplyCharacterUpdateOutput defines the response for updating a character.
// Character is nil when the ID matched no character.
type ApplyCharacterUpdateOutput struct {
	Character      *entities.Character
	PrimaryWritten bool
}

// SelectCharacterInput defines the request for selecting a character.
// An empty ID clears the selection.
type SelectCharacterInput struct {
	CharacterID string
}

// SelectCharacterOutput defines the response for selecting a character
type SelectCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Deleted    *entities.Character
	SelectedID string
}

// SaveCharacterInput defines the character editor submission. An empty
// CharacterID creates a new character.
type SaveCharacterInput struct {
	CharacterID string
	Name        string
	Portrait    string
	Ancestry    string
	Clazz       string
	Level       int
	Group       string
	Campaign    string

	// Stats replaces the listed stats; stats not listed keep their value on edit
	Stats entities.Stats

	// CurrentHealth overrides the current health when set
	CurrentHealth *int
}

// SaveCharacterOutput defines the response for the character editor
type SaveCharacterOutput struct {
	Character *entities.Character
	Created   bool
}

// SaveActiveAbilityInput defines the active ability editor submission. An
// empty AbilityID creates a new ability.
type SaveActiveAbilityInput struct {
	CharacterID    string
	AbilityID      string
	Title          string
	Description    string
	Features       []string
	Image          string
	Cooldown       int
	EffectDuration int
}

// SaveActiveAbilityOutput defines the response for saving an active ability
type SaveActiveAbilityOutput struct {
	Character *entities.Character
	Ability   *entities.ActiveAbility
	Created   bool
}

// SavePassiveAbilityInput defines the passive ability editor submission. An
// empty AbilityID creates a new ability.
type SavePassiveAbilityInput struct {
	CharacterID    string
	AbilityID      string
	Title          string
	Description    string
	Features       []string
	Modifiers      []entities.Modifier
	Cooldown       int
	EffectDuration int
}

// SavePassiveAbilityOutput defines the response for saving a passive ability
type SavePassiveAbilityOutput struct {
	Character *entities.Character
	Ability   *entities.PassiveAbility
	Created   bool
}

// SaveInventoryItemInput defines the inventory editor submission. An empty
// ItemID creates a new item.
type SaveInventoryItemInput struct {
	CharacterID string
	ItemID      string
	Title       string
	Description string
	Image       string
}

// SaveInventoryItemOutput defines the response for saving an inventory item
type SaveInventoryItemOutput struct {
	Character *entities.Character
	Item      *entities.InventoryItem
	Created   bool
}

// DeleteEntryInput identifies an ability or item on a character
type DeleteEntryInput struct {
	CharacterID string
	EntryID     string
}

// DeleteEntryOutput defines the response for deleting an ability or item
type DeleteEntryOutput struct {
	Character *entities.Character
}

// SaveNotesInput defines the request for replacing a character's notes
type SaveNotesInput struct {
	CharacterID string
	Notes       string
}

// SaveNotesOutput defines the response for saving notes
type SaveNotesOutput struct {
	Character *entities.Character
}

// SetCurrentHealthInput sets the current health to Health when given,
// otherwise moves it by Delta. The result never drops below zero.
type SetCurrentHealthInput struct {
	CharacterID string
	Health      *int
	Delta       int
}

// SetCurrentHealthOutput defines the response for changing current health
type SetCurrentHealthOutput struct {
	Character *entities.Character
}

// ExecuteAbilityInput defines the request for using an active ability
type ExecuteAbilityInput struct {
	CharacterID string
	AbilityID   string
}

// ExecuteAbilityOutput defines the response for using an active ability
type ExecuteAbilityOutput struct {
	Character *entities.Character
	Ability   *entities.ActiveAbility
}

// PassTurnInput defines the request for passing a turn
type PassTurnInput struct {
	CharacterID string
}

// PassTurnOutput defines the response for passing a turn
type PassTurnOutput struct {
	Character *entities.Character
}

// ResetCooldownInput defines the request for making an ability ready again
type ResetCooldownInput struct {
	CharacterID string
	AbilityID   string
}

// ResetCooldownOutput defines the response for resetting a cooldown
type ResetCooldownOutput struct {
	Character *entities.Character
	Ability   *entities.ActiveAbility
}

// PassiveModifiersInput defines the request for a character's passive modifiers
type PassiveModifiersInput struct {
	CharacterID string
}

// ModifierSource is one passive ability's contribution to a stat
type ModifierSource struct {
	AbilityID    string
	AbilityTitle string
	Value        int
}

// PassiveModifiersOutput holds per-stat totals and where they come from.
// Every stat key is present in Totals and Details.
type PassiveModifiersOutput struct {
	Totals  map[entities.StatKey]int
	Details map[entities.StatKey][]ModifierSource
}

// RollStatInput defines the request for rolling a stat
type RollStatInput struct {
	CharacterID string
	Stat        entities.StatKey

	// ApplyModifiers adds the passive modifier total for the stat
	ApplyModifiers bool
}

// RollStatOutput defines the response for rolling a stat
type RollStatOutput struct {
	Result   *statroll.Result
	Modifier int
	Total    int
}

// ImportInput defines the request for importing an exported character
type ImportInput struct {
	Data []byte
}

// ImportOutput defines the response for importing a character
type ImportOutput struct {
	Character *entities.Character
}

// ExportInput defines the request for exporting a character
type ExportInput struct {
	CharacterID string
}

// ExportOutput defines the response for exporting a character
type ExportOutput struct {
	Envelope *transfer.Envelope
	Filename string
	Data     []byte
}
