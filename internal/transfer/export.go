// Package transfer reads and writes the portable character file format
package transfer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
)

const (
	// ExportVersion is the only envelope version this build reads and writes
	ExportVersion = 1
	// FileExtension is appended to exported file names
	FileExtension = ".charsheet.json"

	timestampLayout    = "2006-01-02T15:04:05.000Z"
	maxConcurrentFetch = 4
)

// Envelope is the export file format
type Envelope struct {
	Version    int                 `json:"version"`
	ExportedAt string              `json:"exportedAt"`
	Character  *entities.Character `json:"character"`

	// Unresolved lists image references that could not be inlined and were kept as-is
	Unresolved []string `json:"-"`
}

// Marshal encodes the envelope as indented JSON
func (e *Envelope) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal export")
	}
	return data, nil
}

// Filename returns the export file name for a character
func Filename(characterName string) string {
	return idgen.Derive(characterName) + FileExtension
}

// BuildExport wraps a copy of character in an envelope with its portrait,
// active ability and inventory images inlined. An image that cannot be
// resolved keeps its original reference.
func BuildExport(ctx context.Context, character *entities.Character, resolver ImageResolver, clk clock.Clock) (*Envelope, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if clk == nil {
		clk = clock.New()
	}

	out := character.Clone()
	refs := []*string{&out.Portrait}
	for i := range out.ActiveAbilities {
		refs = append(refs, &out.ActiveAbilities[i].Image)
	}
	for i := range out.Inventory {
		refs = append(refs, &out.Inventory[i].Image)
	}

	var (
		mu         sync.Mutex
		unresolved []string
	)
	resolved := make([]string, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetch)
	for i, ref := range refs {
		original := *ref
		resolved[i] = original
		if resolver == nil || original == "" || IsInlined(original) {
			continue
		}

		g.Go(func() error {
			inlined, err := resolver.Resolve(gctx, original)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return errors.WrapWithCode(ctxErr, errors.CodeCanceled, "export canceled")
				}
				slog.WarnContext(gctx, "failed to inline image, keeping reference",
					"character_id", out.ID,
					"ref", original,
					"error", err)
				mu.Lock()
				unresolved = append(unresolved, original)
				mu.Unlock()
				return nil
			}
			resolved[i] = inlined
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, ref := range refs {
		*ref = resolved[i]
	}

	return &Envelope{
		Version:    ExportVersion,
		ExportedAt: clk.Now().UTC().Format(timestampLayout),
		Character:  out,
		Unresolved: unresolved,
	}, nil
}
