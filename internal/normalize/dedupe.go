package normalize

import "github.com/KirkDiggler/rpg-charsheet/internal/entities"

func dedupe[T any](list []T, id func(*T) string) []T {
	out := make([]T, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for i := range list {
		key := id(&list[i])
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, list[i])
	}
	return out
}

// DedupeActive keeps the first ability for every id and drops abilities without one
func DedupeActive(list []entities.ActiveAbility) []entities.ActiveAbility {
	return dedupe(list, func(a *entities.ActiveAbility) string { return a.ID })
}

// DedupePassive keeps the first ability for every id and drops abilities without one
func DedupePassive(list []entities.PassiveAbility) []entities.PassiveAbility {
	return dedupe(list, func(p *entities.PassiveAbility) string { return p.ID })
}

// DedupeItems keeps the first item for every id and drops items without one
func DedupeItems(list []entities.InventoryItem) []entities.InventoryItem {
	return dedupe(list, func(i *entities.InventoryItem) string { return i.ID })
}
