package roster

import (
	"context"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// PassiveModifiers sums the stat modifiers granted by a character's passive abilities
func (o *orchestrator) PassiveModifiers(_ context.Context, input *PassiveModifiersInput) (*PassiveModifiersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}
	return passiveModifiers(character), nil
}

// RollStat rolls a stat. Dice expressions such as "2d6+1" are rolled and flat
// values are returned as they are.
func (o *orchestrator) RollStat(_ context.Context, input *RollStatInput) (*RollStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entities.IsStatKey(string(input.Stat)) {
		return nil, errors.InvalidArgumentf("unknown stat %q", input.Stat).
			WithMeta("valid_stats", entities.StatKeyNames())
	}

	character, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	value := character.Stats[input.Stat]
	if value == "" {
		return nil, errors.FailedPreconditionf("%s has no %s value", character.Name, input.Stat.Label()).
			WithMeta("stat", string(input.Stat))
	}

	result, err := o.roller.Roll(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Stat.Label())
	}

	out := &RollStatOutput{Result: result, Total: result.Total}
	if input.ApplyModifiers {
		out.Modifier = passiveModifiers(character).Totals[input.Stat]
		out.Total += out.Modifier
	}
	return out, nil
}

// lookup returns a copy of the character with id or a NotFound error
func (o *orchestrator) lookup(id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	character := o.GetCharacterByID(id)
	if character == nil {
		return nil, errors.NotFoundf("character %q not found", id).WithMeta("character_id", id)
	}
	return character, nil
}

func passiveModifiers(c *entities.Character) *PassiveModifiersOutput {
	out := &PassiveModifiersOutput{
		Totals:  make(map[entities.StatKey]int),
		Details: make(map[entities.StatKey][]ModifierSource),
	}
	for _, key := range entities.StatKeys() {
		out.Totals[key] = 0
		out.Details[key] = []ModifierSource{}
	}

	for _, ability := range c.PassiveAbilities {
		for _, m := range ability.Modifiers {
			if !entities.IsStatKey(string(m.Stat)) {
				continue
			}
			out.Totals[m.Stat] += m.Value
			out.Details[m.Stat] = append(out.Details[m.Stat], ModifierSource{
				AbilityID:    ability.ID,
				AbilityTitle: ability.Title,
				Value:        m.Value,
			})
		}
	}
	return out
}
