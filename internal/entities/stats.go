package entities

// StatKey identifies one of the fixed character stats
type StatKey string

// Stat keys
const (
	StatLife     StatKey = "life"
	StatAttack   StatKey = "attack"
	StatDefense  StatKey = "defense"
	StatDamage   StatKey = "damage"
	StatMovement StatKey = "movement"
	StatRange    StatKey = "range"
)

var statKeys = []StatKey{StatLife, StatAttack, StatDefense, StatDamage, StatMovement, StatRange}

var statLabels = map[StatKey]string{
	StatLife:     "Life",
	StatAttack:   "Attack",
	StatDefense:  "Defense",
	StatDamage:   "Damage",
	StatMovement: "Movement",
	StatRange:    "Range",
}

// StatKeys returns the stat keys in display order
func StatKeys() []StatKey {
	keys := make([]StatKey, len(statKeys))
	copy(keys, statKeys)
	return keys
}

// StatKeyNames returns the stat keys as plain strings, in display order
func StatKeyNames() []string {
	names := make([]string, len(statKeys))
	for i, key := range statKeys {
		names[i] = string(key)
	}
	return names
}

// IsStatKey reports whether key is one of the fixed stat keys
func IsStatKey(key string) bool {
	_, ok := statLabels[StatKey(key)]
	return ok
}

// Label returns the display label of the stat
func (k StatKey) Label() string {
	if label, ok := statLabels[k]; ok {
		return label
	}
	return string(k)
}

// Stats maps every stat key to its trimmed value. Values are numbers or dice
// expressions kept as strings; an unset stat is the empty string.
type Stats map[StatKey]string

// EmptyStats returns a Stats value with every key set to the empty string
func EmptyStats() Stats {
	stats := make(Stats, len(statKeys))
	for _, key := range statKeys {
		stats[key] = ""
	}
	return stats
}
