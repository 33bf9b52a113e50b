package idgen_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestDerive(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "name with comma", input: "Boomer, el chamuscado", want: "boomer-el-chamuscado"},
		{name: "diacritics", input: "Ataque básico", want: "ataque-basico"},
		{name: "enye", input: "Daño Mágico", want: "dano-magico"},
		{name: "leading and trailing symbols", input: "  --Fire!!Ball--  ", want: "fire-ball"},
		{name: "digits kept", input: "Potion x3", want: "potion-x3"},
		{name: "empty", input: "", want: idgen.Fallback},
		{name: "only symbols", input: "¡¿?!", want: idgen.Fallback},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idgen.Derive(tc.input))
		})
	}
}

func TestDeriveIsDeterministicAndWellFormed(t *testing.T) {
	first := idgen.Derive("Boomer, el chamuscado")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, idgen.Derive("Boomer, el chamuscado"))
	}
	assert.NotEmpty(t, first)
	assert.Regexp(t, slugPattern, first)
}

func TestDeriveTruncates(t *testing.T) {
	long := strings.Repeat("abc ", 40)

	slug := idgen.Derive(long)

	assert.LessOrEqual(t, len(slug), idgen.MaxLength)
	assert.Regexp(t, slugPattern, slug)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, "boomer", idgen.Unique("boomer", nil))
	assert.Equal(t, "boomer-1", idgen.Unique("boomer", []string{"boomer"}))
	assert.Equal(t, "boomer-3", idgen.Unique("boomer", []string{"boomer", "boomer-1", "boomer-2"}))
}

func TestSuffixedGenerator(t *testing.T) {
	gen := idgen.NewSuffixed("active")

	assert.Equal(t, "fireball-active", gen.Generate("Fireball", nil))
	assert.Equal(t, "fireball-active-1", gen.Generate("Fireball", []string{"fireball-active"}))
	assert.Equal(t, "rope", idgen.NewSuffixed("").Generate("Rope", nil))
}
