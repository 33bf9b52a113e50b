package roster

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/numeric"
)

// SaveActiveAbility adds or edits an active ability. New abilities start ready.
// Edits keep the ID and basic flag, and clamp the cooldown progress to the
// new cooldown.
func (o *orchestrator) SaveActiveAbility(ctx context.Context, input *SaveActiveAbilityInput) (*SaveActiveAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", strings.TrimSpace(input.Title), vb)
	errors.ValidateNonNegative("cooldown", input.Cooldown, vb)
	errors.ValidateNonNegative("effectDuration", input.EffectDuration, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var savedID string
	created := input.AbilityID == ""
	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		ability := entities.ActiveAbility{
			Title:          strings.TrimSpace(input.Title),
			Description:    strings.TrimSpace(input.Description),
			Features:       normalize.Features(input.Features),
			Image:          strings.TrimSpace(input.Image),
			Cooldown:       input.Cooldown,
			EffectDuration: input.EffectDuration,
		}

		if created {
			ability.ID = o.activeIDs.Generate(ability.Title, activeIDs(draft))
			ability.CooldownProgress = ability.Cooldown
			draft.ActiveAbilities = append(draft.ActiveAbilities, ability)
			savedID = ability.ID
			return draft, nil
		}

		i := draft.FindActiveAbility(input.AbilityID)
		if i < 0 {
			return nil, abilityNotFound(input.AbilityID)
		}
		previous := draft.ActiveAbilities[i]
		ability.ID = previous.ID
		ability.IsBasic = previous.IsBasic
		ability.CooldownProgress = numeric.Clamp(previous.CooldownProgress, 0, ability.Cooldown)
		draft.ActiveAbilities[i] = ability
		savedID = ability.ID
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	out := &SaveActiveAbilityOutput{Character: character, Created: created}
	if i := character.FindActiveAbility(savedID); i >= 0 {
		out.Ability = &character.ActiveAbilities[i]
	}
	return out, nil
}

// SavePassiveAbility adds or edits a passive ability
func (o *orchestrator) SavePassiveAbility(ctx context.Context, input *SavePassiveAbilityInput) (*SavePassiveAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", strings.TrimSpace(input.Title), vb)
	errors.ValidateNonNegative("cooldown", input.Cooldown, vb)
	errors.ValidateNonNegative("effectDuration", input.EffectDuration, vb)
	for _, m := range input.Modifiers {
		if !entities.IsStatKey(string(m.Stat)) {
			vb.Fieldf("modifiers", "unknown stat %q", m.Stat)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var savedID string
	created := input.AbilityID == ""
	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		ability := entities.PassiveAbility{
			Title:          strings.TrimSpace(input.Title),
			Description:    strings.TrimSpace(input.Description),
			Features:       normalize.Features(input.Features),
			Modifiers:      append([]entities.Modifier{}, input.Modifiers...),
			Cooldown:       input.Cooldown,
			EffectDuration: input.EffectDuration,
		}

		if created {
			ability.ID = o.passiveIDs.Generate(ability.Title, passiveIDs(draft))
			draft.PassiveAbilities = append(draft.PassiveAbilities, ability)
			savedID = ability.ID
			return draft, nil
		}

		i := draft.FindPassiveAbility(input.AbilityID)
		if i < 0 {
			return nil, abilityNotFound(input.AbilityID)
		}
		ability.ID = draft.PassiveAbilities[i].ID
		draft.PassiveAbilities[i] = ability
		savedID = ability.ID
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	out := &SavePassiveAbilityOutput{Character: character, Created: created}
	if i := character.FindPassiveAbility(savedID); i >= 0 {
		out.Ability = &character.PassiveAbilities[i]
	}
	return out, nil
}

// SaveInventoryItem adds or edits an inventory item
func (o *orchestrator) SaveInventoryItem(ctx context.Context, input *SaveInventoryItemInput) (*SaveInventoryItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", strings.TrimSpace(input.Title), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var savedID string
	created := input.ItemID == ""
	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		item := entities.InventoryItem{
			Title:       strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Image:       strings.TrimSpace(input.Image),
		}

		if created {
			item.ID = o.itemIDs.Generate(item.Title, itemIDs(draft))
			draft.Inventory = append(draft.Inventory, item)
			savedID = item.ID
			return draft, nil
		}

		i := draft.FindInventoryItem(input.ItemID)
		if i < 0 {
			return nil, itemNotFound(input.ItemID)
		}
		item.ID = draft.Inventory[i].ID
		draft.Inventory[i] = item
		savedID = item.ID
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	out := &SaveInventoryItemOutput{Character: character, Created: created}
	if i := character.FindInventoryItem(savedID); i >= 0 {
		out.Item = &character.Inventory[i]
	}
	return out, nil
}

// DeleteActiveAbility removes an active ability. The basic attack cannot be removed.
func (o *orchestrator) DeleteActiveAbility(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		i := draft.FindActiveAbility(input.EntryID)
		if i < 0 {
			return nil, abilityNotFound(input.EntryID)
		}
		if draft.ActiveAbilities[i].IsBasic {
			return nil, errors.FailedPrecondition("the basic attack cannot be deleted").
				WithMeta("ability_id", input.EntryID)
		}
		draft.ActiveAbilities = append(draft.ActiveAbilities[:i], draft.ActiveAbilities[i+1:]...)
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteEntryOutput{Character: character}, nil
}

// DeletePassiveAbility removes a passive ability
func (o *orchestrator) DeletePassiveAbility(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		i := draft.FindPassiveAbility(input.EntryID)
		if i < 0 {
			return nil, abilityNotFound(input.EntryID)
		}
		draft.PassiveAbilities = append(draft.PassiveAbilities[:i], draft.PassiveAbilities[i+1:]...)
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteEntryOutput{Character: character}, nil
}

// DeleteInventoryItem removes an inventory item
func (o *orchestrator) DeleteInventoryItem(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		i := draft.FindInventoryItem(input.EntryID)
		if i < 0 {
			return nil, itemNotFound(input.EntryID)
		}
		draft.Inventory = append(draft.Inventory[:i], draft.Inventory[i+1:]...)
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &DeleteEntryOutput{Character: character}, nil
}

func abilityNotFound(id string) error {
	return errors.NotFoundf("ability %q not found", id).WithMeta("ability_id", id)
}

func itemNotFound(id string) error {
	return errors.NotFoundf("item %q not found", id).WithMeta("item_id", id)
}

func activeIDs(c *entities.Character) []string {
	ids := make([]string, len(c.ActiveAbilities))
	for i, a := range c.ActiveAbilities {
		ids[i] = a.ID
	}
	return ids
}

func passiveIDs(c *entities.Character) []string {
	ids := make([]string, len(c.PassiveAbilities))
	for i, p := range c.PassiveAbilities {
		ids[i] = p.ID
	}
	return ids
}

func itemIDs(c *entities.Character) []string {
	ids := make([]string, len(c.Inventory))
	for i, item := range c.Inventory {
		ids[i] = item.ID
	}
	return ids
}
