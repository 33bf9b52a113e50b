// Package normalize turns migrated records into canonical entities.
//
// Normalizers never fail. Scalars that cannot be salvaged fall back to their
// defaults, and list entries that cannot be salvaged are dropped. Every
// normalizer is idempotent: normalizing canonical output yields the same value.
package normalize

import (
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/numeric"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

// Text returns the trimmed string form of a scalar, or "" for anything else
func Text(v any) string {
	s, _ := record.Stringify(v)
	return strings.TrimSpace(s)
}

// StatValue canonicalizes a single stat. Numbers keep their shortest decimal
// form, dice expressions are kept as trimmed text and missing values become "".
func StatValue(v any) string {
	return Text(v)
}

// Stats reads every fixed stat key from v. Keys outside the fixed set are ignored.
func Stats(v any) entities.Stats {
	stats := entities.EmptyStats()
	rec, ok := record.From(v)
	if !ok {
		return stats
	}
	for _, key := range entities.StatKeys() {
		stats[key] = StatValue(rec.Get(string(key)))
	}
	return stats
}

// Features accepts a list of strings or newline separated text and returns the
// trimmed, non-empty lines. The result is never nil.
func Features(v any) []string {
	features := []string{}

	var raw []string
	switch f := v.(type) {
	case []string:
		raw = f
	case []any:
		for _, entry := range f {
			if s, ok := record.Stringify(entry); ok {
				raw = append(raw, s)
			}
		}
	default:
		if s, ok := record.Stringify(f); ok {
			raw = strings.Split(s, "\n")
		}
	}

	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			features = append(features, line)
		}
	}
	return features
}

// Modifier canonicalizes a passive modifier. Unknown stats and non-numeric
// values make it invalid.
func Modifier(rec record.Record) (entities.Modifier, bool) {
	if rec == nil {
		return entities.Modifier{}, false
	}
	stat := migrate.StatKey(Text(rec.Get("stat")))
	if !entities.IsStatKey(stat) {
		return entities.Modifier{}, false
	}
	value, ok := numeric.ParseInt(rec.Get("value"))
	if !ok {
		return entities.Modifier{}, false
	}
	return entities.Modifier{Stat: entities.StatKey(stat), Value: value}, true
}

// Modifiers canonicalizes a modifier list, silently dropping malformed entries
func Modifiers(v any) []entities.Modifier {
	modifiers := []entities.Modifier{}
	list, _ := v.([]any)
	for _, entry := range list {
		rec, ok := record.From(entry)
		if !ok {
			continue
		}
		if modifier, ok := Modifier(rec); ok {
			modifiers = append(modifiers, modifier)
		}
	}
	return modifiers
}

// CurrentHealth returns the tracked health when it parses, otherwise the numeric
// life stat, otherwise 0. The result is never negative.
func CurrentHealth(v any, stats entities.Stats) int {
	health, ok := numeric.ParseInt(v)
	if !ok {
		health = numeric.IntOr(stats[entities.StatLife], 0)
	}
	if health < 0 {
		return 0
	}
	return health
}

// Portrait returns the portrait reference, or the bundled placeholder when the
// value is missing, blank or a serialized null
func Portrait(v any) string {
	s, ok := v.(string)
	if !ok {
		return entities.DefaultPortrait
	}
	s = strings.TrimSpace(s)
	switch s {
	case "", "null", "undefined":
		return entities.DefaultPortrait
	}
	return s
}

// Level parses the character level; anything below 1 becomes the default level
func Level(v any) int {
	level, ok := numeric.ParseInt(v)
	if !ok || level < 1 {
		return entities.DefaultLevel
	}
	return level
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.TrimSpace(b) == "true"
	}
	return false
}
