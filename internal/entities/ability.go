package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// ActiveAbility is an ability the character executes during a turn
type ActiveAbility struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Image       string   `json:"image"`
	// Cooldown is the number of turns between uses; 0 means always ready
	Cooldown int `json:"cooldown"`
	// CooldownProgress counts turns since the last use, in [0, Cooldown]
	CooldownProgress int  `json:"cooldownProgress"`
	EffectDuration   int  `json:"effectDuration"`
	IsBasic          bool `json:"isBasic"`
}

// GetID returns the ability ID
func (a *ActiveAbility) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *ActiveAbility) GetType() string {
	return "active_ability"
}

// Clone returns a copy that shares no slices with a
func (a ActiveAbility) Clone() ActiveAbility {
	a.Features = cloneStrings(a.Features)
	return a
}

// Modifier adjusts a stat while the passive ability applies
type Modifier struct {
	Stat  StatKey `json:"stat"`
	Value int     `json:"value"`
}

// PassiveAbility is an always-on trait of the character
type PassiveAbility struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Features       []string   `json:"features"`
	Modifiers      []Modifier `json:"modifiers"`
	Cooldown       int        `json:"cooldown"`
	EffectDuration int        `json:"effectDuration"`
}

// GetID returns the ability ID
func (p *PassiveAbility) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PassiveAbility) GetType() string {
	return "passive_ability"
}

// Clone returns a copy that shares no slices with p
func (p PassiveAbility) Clone() PassiveAbility {
	p.Features = cloneStrings(p.Features)
	if p.Modifiers != nil {
		modifiers := make([]Modifier, len(p.Modifiers))
		copy(modifiers, p.Modifiers)
		p.Modifiers = modifiers
	}
	return p
}

var (
	_ core.Entity = (*ActiveAbility)(nil)
	_ core.Entity = (*PassiveAbility)(nil)
)

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
