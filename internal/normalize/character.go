package normalize

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

// Character migrates and canonicalizes a character record. Nil input yields nil.
func Character(raw record.Record) *entities.Character {
	rec := migrate.Character(raw)
	if rec == nil {
		return nil
	}

	name := Text(rec.Get("name"))
	if name == "" {
		name = entities.UnnamedCharacter
	}
	id := Text(rec.Get("id"))
	if id == "" {
		id = idgen.Derive(name)
	}
	notes, _ := record.Stringify(rec.Get("notes"))
	stats := Stats(rec.Get("stats"))

	return &entities.Character{
		ID:               id,
		Name:             name,
		Portrait:         Portrait(rec.Get("portrait")),
		Ancestry:         Text(rec.Get("ancestry")),
		Clazz:            Text(rec.Get("clazz")),
		Level:            Level(rec.Get("level")),
		Group:            Text(rec.Get("group")),
		Campaign:         Text(rec.Get("campaign")),
		Stats:            stats,
		CurrentHealth:    CurrentHealth(rec.Get("currentHealth"), stats),
		ActiveAbilities:  EnsureBasicActiveAbility(DedupeActive(activeList(rec.Get("activeAbilities"))), name),
		PassiveAbilities: DedupePassive(passiveList(rec.Get("passiveAbilities"))),
		Inventory:        DedupeItems(itemList(rec.Get("inventory"))),
		Notes:            notes,
	}
}

// Entity re-normalizes a typed character, e.g. a draft after a mutation
func Entity(c *entities.Character) *entities.Character {
	if c == nil {
		return nil
	}
	rec, err := record.FromStruct(c)
	if err != nil {
		return c.Clone()
	}
	return Character(rec)
}

// Roster canonicalizes a stored roster. Entries that are not objects are dropped
// and later duplicates of a character id are discarded.
func Roster(list []any) []*entities.Character {
	roster := make([]*entities.Character, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, entry := range list {
		rec, ok := record.From(entry)
		if !ok {
			continue
		}
		character := Character(rec)
		if character == nil {
			continue
		}
		if _, dup := seen[character.ID]; dup {
			continue
		}
		seen[character.ID] = struct{}{}
		roster = append(roster, character)
	}
	return roster
}

func activeList(v any) []entities.ActiveAbility {
	list, _ := v.([]any)
	out := make([]entities.ActiveAbility, 0, len(list))
	for _, entry := range list {
		rec, _ := record.From(entry)
		if ability, ok := ActiveAbility(rec); ok {
			out = append(out, ability)
		}
	}
	return out
}

func passiveList(v any) []entities.PassiveAbility {
	list, _ := v.([]any)
	out := make([]entities.PassiveAbility, 0, len(list))
	for _, entry := range list {
		rec, _ := record.From(entry)
		if ability, ok := PassiveAbility(rec); ok {
			out = append(out, ability)
		}
	}
	return out
}

func itemList(v any) []entities.InventoryItem {
	list, _ := v.([]any)
	out := make([]entities.InventoryItem, 0, len(list))
	for _, entry := range list {
		rec, _ := record.From(entry)
		if item, ok := InventoryItem(rec); ok {
			out = append(out, item)
		}
	}
	return out
}
