// Package cooldown implements the turn-based cooldown state machine of active abilities.
//
// An ability is ready when its progress has caught up with its cooldown. Using
// an ability ends the turn: the used ability restarts at 0 and every other
// ability ticks forward by one, capped at its own cooldown. Abilities with a
// cooldown of 0 are always ready.
//
// Every function returns a new slice and leaves its input untouched.
package cooldown

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// State of an active ability
type State string

const (
	// StateReady means the ability can be executed
	StateReady State = "READY"
	// StateOnCooldown means the ability is still recharging
	StateOnCooldown State = "ON_COOLDOWN"
)

// StateOf reports the state of an ability
func StateOf(a entities.ActiveAbility) State {
	if a.Cooldown <= 0 || a.CooldownProgress >= a.Cooldown {
		return StateReady
	}
	return StateOnCooldown
}

// Remaining returns how many turns are left before the ability is ready
func Remaining(a entities.ActiveAbility) int {
	if StateOf(a) == StateReady {
		return 0
	}
	return a.Cooldown - max(a.CooldownProgress, 0)
}

// Advance applies one turn to the whole ability set. The ability with usedID
// restarts at 0; an empty usedID passes the turn without using anything.
func Advance(abilities []entities.ActiveAbility, usedID string) []entities.ActiveAbility {
	out := make([]entities.ActiveAbility, len(abilities))
	for i, a := range abilities {
		a = a.Clone()
		switch {
		case a.Cooldown <= 0:
			a.CooldownProgress = 0
		case usedID != "" && a.ID == usedID:
			a.CooldownProgress = 0
		default:
			a.CooldownProgress = min(max(a.CooldownProgress, 0)+1, a.Cooldown)
		}
		out[i] = a
	}
	return out
}

// Execute uses the ability with id and advances the turn
func Execute(abilities []entities.ActiveAbility, id string) ([]entities.ActiveAbility, error) {
	i, err := find(abilities, id)
	if err != nil {
		return nil, err
	}
	if StateOf(abilities[i]) != StateReady {
		return nil, errors.FailedPreconditionf("ability %q is on cooldown", abilities[i].Title).
			WithMeta("ability_id", id).
			WithMeta("remaining", Remaining(abilities[i]))
	}
	return Advance(abilities, id), nil
}

// PassTurn advances the turn without using an ability
func PassTurn(abilities []entities.ActiveAbility) []entities.ActiveAbility {
	return Advance(abilities, "")
}

// Reset snaps an ability that is on cooldown back to ready
func Reset(abilities []entities.ActiveAbility, id string) ([]entities.ActiveAbility, error) {
	i, err := find(abilities, id)
	if err != nil {
		return nil, err
	}
	if StateOf(abilities[i]) == StateReady {
		return nil, errors.FailedPreconditionf("ability %q is already ready", abilities[i].Title).
			WithMeta("ability_id", id)
	}

	out := make([]entities.ActiveAbility, len(abilities))
	for j, a := range abilities {
		out[j] = a.Clone()
	}
	out[i].CooldownProgress = out[i].Cooldown
	return out, nil
}

func find(abilities []entities.ActiveAbility, id string) (int, error) {
	for i := range abilities {
		if abilities[i].ID == id {
			return i, nil
		}
	}
	return -1, errors.NotFoundf("ability %q not found", id).WithMeta("ability_id", id)
}
