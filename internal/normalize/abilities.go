package normalize

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/numeric"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

func entityID(rec record.Record, title string) string {
	if id := Text(rec.Get("id")); id != "" {
		return id
	}
	return idgen.Derive(title)
}

// ActiveAbility canonicalizes an active ability. An ability without a title is invalid.
//
// A missing or unparsable progress means the ability is ready, so freshly
// imported abilities can be used straight away.
func ActiveAbility(rec record.Record) (entities.ActiveAbility, bool) {
	if rec == nil {
		return entities.ActiveAbility{}, false
	}
	title := Text(rec.Get("title"))
	if title == "" {
		return entities.ActiveAbility{}, false
	}

	id := entityID(rec, title)
	cooldown := numeric.NonNegativeOr(rec.Get("cooldown"), 0)

	progress := cooldown
	if cooldown == 0 {
		progress = 0
	} else if p, ok := numeric.ParseInt(rec.Get("cooldownProgress")); ok {
		progress = numeric.Clamp(p, 0, cooldown)
	}

	return entities.ActiveAbility{
		ID:               id,
		Title:            title,
		Description:      Text(rec.Get("description")),
		Features:         Features(rec.Get("features")),
		Image:            Text(rec.Get("image")),
		Cooldown:         cooldown,
		CooldownProgress: progress,
		EffectDuration:   numeric.NonNegativeOr(rec.Get("effectDuration"), 0),
		IsBasic:          truthy(rec.Get("isBasic")) || entities.IsBasicAttackID(id),
	}, true
}

// PassiveAbility canonicalizes a passive ability. An ability without a title is invalid.
func PassiveAbility(rec record.Record) (entities.PassiveAbility, bool) {
	if rec == nil {
		return entities.PassiveAbility{}, false
	}
	title := Text(rec.Get("title"))
	if title == "" {
		return entities.PassiveAbility{}, false
	}

	return entities.PassiveAbility{
		ID:             entityID(rec, title),
		Title:          title,
		Description:    Text(rec.Get("description")),
		Features:       Features(rec.Get("features")),
		Modifiers:      Modifiers(rec.Get("modifiers")),
		Cooldown:       numeric.NonNegativeOr(rec.Get("cooldown"), 0),
		EffectDuration: numeric.NonNegativeOr(rec.Get("effectDuration"), 0),
	}, true
}

// InventoryItem canonicalizes an inventory item. A blank title becomes the
// placeholder title rather than invalidating the item.
func InventoryItem(rec record.Record) (entities.InventoryItem, bool) {
	if rec == nil {
		return entities.InventoryItem{}, false
	}
	title := Text(rec.Get("title"))
	if title == "" {
		title = entities.UntitledItem
	}

	return entities.InventoryItem{
		ID:          entityID(rec, title),
		Title:       title,
		Description: Text(rec.Get("description")),
		Image:       Text(rec.Get("image")),
	}, true
}

// EnsureBasicActiveAbility guarantees exactly one basic ability, at index 0.
//
// An empty list gets a synthesized basic attack. Otherwise the first flagged
// ability, or the first ability when none is flagged, moves to the front and
// every other flag is cleared. Cooldowns are clamped on the way out.
// The input slice is not modified.
func EnsureBasicActiveAbility(abilities []entities.ActiveAbility, characterName string) []entities.ActiveAbility {
	if len(abilities) == 0 {
		return []entities.ActiveAbility{entities.NewBasicAttack(characterName)}
	}

	basic := 0
	for i := range abilities {
		if abilities[i].IsBasic {
			basic = i
			break
		}
	}

	out := make([]entities.ActiveAbility, 0, len(abilities))
	out = append(out, abilities[basic].Clone())
	for i := range abilities {
		if i != basic {
			out = append(out, abilities[i].Clone())
		}
	}

	for i := range out {
		a := &out[i]
		a.IsBasic = i == 0
		if a.Cooldown < 0 {
			a.Cooldown = 0
		}
		if a.EffectDuration < 0 {
			a.EffectDuration = 0
		}
		a.CooldownProgress = numeric.Clamp(a.CooldownProgress, 0, a.Cooldown)
	}

	if out[0].Title == "" {
		out[0].Title = entities.BasicAttackTitle
	}
	if out[0].Description == "" {
		out[0].Description = entities.BasicAttackDescription(characterName)
	}
	return out
}
