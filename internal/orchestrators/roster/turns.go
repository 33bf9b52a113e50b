package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-charsheet/internal/cooldown"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// ExecuteAbility uses a ready active ability, which ends the turn for the
// whole ability set
func (o *orchestrator) ExecuteAbility(ctx context.Context, input *ExecuteAbilityInput) (*ExecuteAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument("ability ID is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		abilities, err := cooldown.Execute(draft.ActiveAbilities, input.AbilityID)
		if err != nil {
			return nil, err
		}
		draft.ActiveAbilities = abilities
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "ability executed",
		"character_id", character.ID,
		"ability_id", input.AbilityID)

	return &ExecuteAbilityOutput{
		Character: character,
		Ability:   activeAbility(character, input.AbilityID),
	}, nil
}

// PassTurn advances every cooldown by one turn without using an ability
func (o *orchestrator) PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		draft.ActiveAbilities = cooldown.PassTurn(draft.ActiveAbilities)
		return draft, nil
	})
	if err != nil {
		return nil, err
	}
	return &PassTurnOutput{Character: character}, nil
}

// ResetCooldown makes an ability that is on cooldown ready again
func (o *orchestrator) ResetCooldown(ctx context.Context, input *ResetCooldownInput) (*ResetCooldownOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument("ability ID is required")
	}

	character, err := o.update(ctx, input.CharacterID, func(draft *entities.Character) (*entities.Character, error) {
		abilities, err := cooldown.Reset(draft.ActiveAbilities, input.AbilityID)
		if err != nil {
			return nil, err
		}
		draft.ActiveAbilities = abilities
		return draft, nil
	})
	if err != nil {
		return nil, err
	}

	return &ResetCooldownOutput{
		Character: character,
		Ability:   activeAbility(character, input.AbilityID),
	}, nil
}

func activeAbility(c *entities.Character, id string) *entities.ActiveAbility {
	if i := c.FindActiveAbility(id); i >= 0 {
		return &c.ActiveAbilities[i]
	}
	return nil
}
