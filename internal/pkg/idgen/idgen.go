// Package idgen derives stable, human readable IDs from titles and names
package idgen

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen Generator

const (
	// MaxLength bounds derived IDs
	MaxLength = 64
	// Fallback is used when a title has no usable characters
	Fallback = "character"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generator produces an ID for a new entity given its title and the IDs already taken
type Generator interface {
	Generate(title string, existing []string) string
}

// Derive turns text into a slug: diacritics stripped, lowercased, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, truncated to MaxLength.
// The same text always yields the same slug, and the result is never empty.
func Derive(text string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		text,
	)
	if err != nil {
		stripped = text
	}

	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(stripped), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxLength {
		slug = strings.TrimRight(slug[:MaxLength], "-")
	}
	if slug == "" {
		return Fallback
	}
	return slug
}

// Unique returns base if it is not in existing, otherwise the first of
// base-1, base-2, ... that is free.
func Unique(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// SuffixedGenerator derives IDs from titles and appends a fixed suffix,
// e.g. "fireball-active" for active abilities
type SuffixedGenerator struct {
	suffix string
}

// NewSuffixed creates a generator that appends "-suffix" to derived slugs.
// An empty suffix yields plain slugs.
func NewSuffixed(suffix string) *SuffixedGenerator {
	return &SuffixedGenerator{suffix: suffix}
}

// Generate derives a collision-free ID for title
func (g *SuffixedGenerator) Generate(title string, existing []string) string {
	base := Derive(title)
	if g.suffix != "" {
		base = base + "-" + g.suffix
	}
	return Unique(base, existing)
}
