package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
)

// SaveCharacter creates a character or edits the profile and stats of an
// existing one. Abilities, inventory and notes survive an edit. The saved
// character becomes the selected one.
func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(input.Name), vb)
	errors.ValidateNonNegative("level", input.Level, vb)
	if input.CurrentHealth != nil {
		errors.ValidateNonNegative("currentHealth", *input.CurrentHealth, vb)
	}
	validateStats(input.Stats, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.CharacterID == "" {
		return o.createCharacter(ctx, input)
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		draft.Name = strings.TrimSpace(input.Name)
		if input.Portrait != "" {
			draft.Portrait = input.Portrait
		}
		draft.Ancestry = input.Ancestry
		draft.Clazz = input.Clazz
		if input.Level > 0 {
			draft.Level = input.Level
		}
		draft.Group = input.Group
		draft.Campaign = input.Campaign
		if draft.Stats == nil {
			draft.Stats = entities.EmptyStats()
		}
		for key, value := range input.Stats {
			draft.Stats[key] = value
		}
		if input.CurrentHealth != nil {
			draft.CurrentHealth = *input.CurrentHealth
		}
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	if !o.isSelected(character.ID) {
		if _, err := o.SelectCharacter(ctx, &SelectCharacterInput{CharacterID: character.ID}); err != nil {
			return nil, err
		}
	}

	return &SaveCharacterOutput{Character: character}, nil
}

func (o *orchestrator) createCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	stats := entities.EmptyStats()
	for key, value := range input.Stats {
		stats[key] = value
	}
	name := strings.TrimSpace(input.Name)

	draft := &entities.Character{
		Name:             name,
		Portrait:         input.Portrait,
		Ancestry:         input.Ancestry,
		Clazz:            input.Clazz,
		Level:            input.Level,
		Group:            input.Group,
		Campaign:         input.Campaign,
		Stats:            stats,
		ActiveAbilities:  []entities.ActiveAbility{},
		PassiveAbilities: []entities.PassiveAbility{},
		Inventory:        []entities.InventoryItem{},
	}
	if input.CurrentHealth != nil {
		draft.CurrentHealth = *input.CurrentHealth
	} else {
		draft.CurrentHealth = normalize.CurrentHealth(nil, stats)
	}

	out, err := o.addCharacter(ctx, func(ids []string) *entities.Character {
		draft.ID = idgen.Unique(idgen.Derive(name), ids)
		character := normalize.Entity(draft)
		character.ID = draft.ID
		return character
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created", "character_id", out.ID, "name", out.Name)
	o.notify(out.Clone())

	return &SaveCharacterOutput{Character: out, Created: true}, nil
}

// SaveNotes replaces a character's notes verbatim
func (o *orchestrator) SaveNotes(ctx context.Context, input *SaveNotesInput) (*SaveNotesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		draft.Notes = input.Notes
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &SaveNotesOutput{Character: character}, nil
}

// SetCurrentHealth changes the tracked current health
func (o *orchestrator) SetCurrentHealth(ctx context.Context, input *SetCurrentHealthInput) (*SetCurrentHealthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		health := draft.CurrentHealth + input.Delta
		if input.Health != nil {
			health = *input.Health
		}
		draft.CurrentHealth = max(health, 0)
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &SetCurrentHealthOutput{Character: character}, nil
}

func validateStats(stats entities.Stats, vb *errors.ValidationBuilder) {
	for key := range stats {
		if !entities.IsStatKey(string(key)) {
			vb.Fieldf("stats", "unknown stat %q", key)
		}
	}
}
