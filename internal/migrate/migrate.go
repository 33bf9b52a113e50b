// Package migrate maps records written by older or localized versions of the
// character sheet onto the current field names.
//
// Every migrator is pure: it returns a shallow copy, fills a canonical field only
// when it is absent, and checks the legacy names in order, taking the first
// non-null value. Values are never dropped; normalization decides what survives.
package migrate

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

type alias struct {
	canonical string
	legacy    []string
}

var legacyIDs = []string{"identificador", "slug", "codigo", "uuid"}

var characterAliases = []alias{
	{"id", legacyIDs},
	{"name", []string{"nombre", "alias"}},
	{"ancestry", []string{"ascendencia", "ancestria", "raza", "race"}},
	{"clazz", []string{"clase", "profesion", "class"}},
	{"level", []string{"nivel", "lv"}},
	{"group", []string{"grupo", "compañia", "compania", "faccion"}},
	{"campaign", []string{"campaña", "campana", "campanaActual"}},
	{"portrait", []string{"retrato", "imagen", "avatar"}},
	{"notes", []string{"notas"}},
	{"currentHealth", []string{"vidaActual", "saludActual", "hpActual"}},
	{"stats", []string{"estadisticas", "atributos"}},
	{"activeAbilities", []string{"habilidadesActivas"}},
	{"passiveAbilities", []string{"habilidadesPasivas"}},
	{"inventory", []string{"inventario", "objetos"}},
}

var abilityAliases = []alias{
	{"id", legacyIDs},
	{"title", []string{"titulo", "nombre", "name"}},
	{"description", []string{"descripcion", "detalle"}},
	{"cooldown", []string{"enfriamiento", "cd", "cooldownTotal"}},
	{"effectDuration", []string{"duracion", "turnos", "duracionEfecto", "efectoDuracion", "duration"}},
}

var activeOnlyAliases = []alias{
	{"features", []string{"caracteristicas", "rasgos", "efectos", "detalles", "descripcionLarga"}},
	{"cooldownProgress", []string{
		"progresoEnfriamiento", "progresoCooldown", "progreso",
		"cooldownActual", "actualCooldown", "currentCooldown", "progress",
	}},
	{"image", []string{"imagen", "icono", "icon"}},
	{"isBasic", []string{"esBasica", "basica"}},
}

var passiveOnlyAliases = []alias{
	{"features", []string{"caracteristicas", "rasgos", "efectos", "detalles"}},
	{"modifiers", []string{"modificadores"}},
}

var itemAliases = []alias{
	{"id", legacyIDs},
	{"title", []string{"titulo", "nombre", "name"}},
	{"description", []string{"descripcion", "detalle"}},
	{"image", []string{"imagen", "icono", "icon"}},
}

var modifierAliases = []alias{
	{"stat", []string{"estadistica", "atributo", "clave"}},
	{"value", []string{"valor", "cantidad", "modificador"}},
}

// statAliases lists, per canonical stat key, the localized keys older rosters used
var statAliases = []alias{
	{string(entities.StatLife), []string{"vida", "salud", "hp"}},
	{string(entities.StatAttack), []string{"ataque"}},
	{string(entities.StatDefense), []string{"defensa"}},
	{string(entities.StatDamage), []string{"danio", "daño", "dano"}},
	{string(entities.StatMovement), []string{"movimiento"}},
	{string(entities.StatRange), []string{"alcance"}},
}

var legacyStatNames = func() map[string]string {
	names := make(map[string]string)
	for _, a := range statAliases {
		for _, legacy := range a.legacy {
			names[legacy] = a.canonical
		}
	}
	return names
}()

func fill(out, in record.Record, aliases []alias) {
	for _, a := range aliases {
		if out.Has(a.canonical) {
			continue
		}
		if v, ok := in.First(a.legacy...); ok {
			out[a.canonical] = v
		}
	}
}

// StatKey translates a localized stat name into its canonical key.
// Unknown names are returned unchanged.
func StatKey(name string) string {
	if canonical, ok := legacyStatNames[name]; ok {
		return canonical
	}
	return name
}

// Character migrates a character record, including one level of nested
// abilities and inventory items. Nil input is returned unchanged.
func Character(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, characterAliases)

	if stats, ok := out.Record("stats"); ok {
		out["stats"] = Stats(stats)
	}
	if list, ok := out.List("activeAbilities"); ok {
		out["activeAbilities"] = migrateList(list, ActiveAbility)
	}
	if list, ok := out.List("passiveAbilities"); ok {
		out["passiveAbilities"] = migrateList(list, PassiveAbility)
	}
	if list, ok := out.List("inventory"); ok {
		out["inventory"] = migrateList(list, InventoryItem)
	}
	return out
}

// Stats copies localized stat keys onto their canonical keys
func Stats(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, statAliases)
	return out
}

// ActiveAbility migrates an active ability record
func ActiveAbility(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, abilityAliases)
	fill(out, in, activeOnlyAliases)
	features(out)
	return out
}

// PassiveAbility migrates a passive ability record and its modifiers
func PassiveAbility(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, abilityAliases)
	fill(out, in, passiveOnlyAliases)
	features(out)

	if list, ok := out.List("modifiers"); ok {
		out["modifiers"] = migrateList(list, Modifier)
	}
	return out
}

// Modifier migrates a passive modifier and translates a localized stat name
func Modifier(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, modifierAliases)
	if stat, ok := out.Get("stat").(string); ok {
		out["stat"] = StatKey(stat)
	}
	return out
}

// InventoryItem migrates an inventory item record
func InventoryItem(in record.Record) record.Record {
	if in == nil {
		return nil
	}
	out := in.Clone()
	fill(out, in, itemAliases)
	return out
}

// features keeps list-valued features as they are and turns any other
// legacy scalar into text, which the normalizer splits by line
func features(out record.Record) {
	v, ok := out["features"]
	if !ok || v == nil {
		return
	}
	if _, isList := v.([]any); isList {
		return
	}
	if s, ok := record.Stringify(v); ok {
		out["features"] = s
	}
}

func migrateList(list []any, migrateOne func(record.Record) record.Record) []any {
	out := make([]any, 0, len(list))
	for _, entry := range list {
		rec, ok := record.From(entry)
		if !ok {
			continue
		}
		out = append(out, migrateOne(rec))
	}
	return out
}
