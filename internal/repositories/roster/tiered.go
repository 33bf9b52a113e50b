package roster

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

const seededMarker = "1"

// TieredConfig contains configuration for the two-tier repository
type TieredConfig struct {
	// Primary is read and written synchronously on every call
	Primary Store
	// Durable mirrors the primary store and is read only when the primary is empty
	Durable Store
	// Seed provides the first-run roster; defaults to DefaultSeed
	Seed SeedFunc
	// Closers are closed after the durable writer drains
	Closers []func() error
}

// Validate validates the TieredConfig
func (cfg *TieredConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Primary == nil {
		vb.RequiredField("primary")
	}
	if cfg.Durable == nil {
		vb.RequiredField("durable")
	}
	return vb.Build()
}

type tieredRepository struct {
	primary Store
	durable Store
	writer  *backgroundWriter
	seed    SeedFunc
	closers []func() error
}

// NewTiered creates a repository that reconciles a primary and a durable store
func NewTiered(cfg *TieredConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == nil {
		seed = DefaultSeed
	}

	return &tieredRepository{
		primary: cfg.Primary,
		durable: cfg.Durable,
		writer:  newBackgroundWriter(cfg.Durable),
		seed:    seed,
		closers: cfg.Closers,
	}, nil
}

func (r *tieredRepository) LoadRoster(ctx context.Context, _ *LoadRosterInput) (*LoadRosterOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load roster")
	}

	if raw, ok := r.read(ctx, r.primary, "primary", KeyCharacters); ok {
		if characters, ok := parseRoster(ctx, raw, "primary"); ok {
			if normalized, ok := encodeRoster(ctx, characters); ok {
				r.writer.Set(KeyCharacters, normalized)
			}
			return &LoadRosterOutput{Characters: characters, Source: SourcePrimary}, nil
		}
	}

	if raw, ok := r.read(ctx, r.durable, "durable", KeyCharacters); ok {
		if characters, ok := parseRoster(ctx, raw, "durable"); ok {
			if normalized, ok := encodeRoster(ctx, characters); ok {
				if err := r.primary.Set(ctx, KeyCharacters, normalized); err != nil {
					slog.WarnContext(ctx, "failed to backfill primary store", "error", err)
				}
			}
			slog.InfoContext(ctx, "restored roster from durable store", "count", len(characters))
			return &LoadRosterOutput{Characters: characters, Source: SourceDurable}, nil
		}
	}

	if r.seeded(ctx) {
		return &LoadRosterOutput{Characters: []*entities.Character{}, Source: SourceEmpty}, nil
	}

	characters := r.seed()
	if characters == nil {
		characters = []*entities.Character{}
	}
	r.saveRoster(ctx, characters)
	if err := r.primary.Set(ctx, KeySeeded, seededMarker); err != nil {
		slog.WarnContext(ctx, "failed to write seed marker to primary store", "error", err)
	}
	r.writer.Set(KeySeeded, seededMarker)

	slog.InfoContext(ctx, "seeded default roster", "count", len(characters))
	return &LoadRosterOutput{Characters: characters, Source: SourceSeed}, nil
}

func (r *tieredRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) (*SaveRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	characters := input.Characters
	if characters == nil {
		characters = []*entities.Character{}
	}
	return &SaveRosterOutput{PrimaryWritten: r.saveRoster(ctx, characters)}, nil
}

// saveRoster writes the primary store synchronously and queues the durable
// write. The durable write happens even when the primary rejects the roster.
func (r *tieredRepository) saveRoster(ctx context.Context, characters []*entities.Character) bool {
	raw, ok := encodeRoster(ctx, characters)
	if !ok {
		return false
	}

	written := true
	if err := r.primary.Set(ctx, KeyCharacters, raw); err != nil {
		slog.WarnContext(ctx, "failed to write roster to primary store",
			"count", len(characters),
			"bytes", len(raw),
			"error", err)
		written = false
	}
	r.writer.Set(KeyCharacters, raw)
	return written
}

func (r *tieredRepository) LoadSelectedID(ctx context.Context, _ *LoadSelectedIDInput) (*LoadSelectedIDOutput, error) {
	if id, ok := r.read(ctx, r.primary, "primary", KeySelectedID); ok && id != "" {
		r.writer.Set(KeySelectedID, id)
		return &LoadSelectedIDOutput{ID: id}, nil
	}

	if id, ok := r.read(ctx, r.durable, "durable", KeySelectedID); ok && id != "" {
		if err := r.primary.Set(ctx, KeySelectedID, id); err != nil {
			slog.WarnContext(ctx, "failed to backfill selection", "error", err)
		}
		return &LoadSelectedIDOutput{ID: id}, nil
	}

	if err := r.primary.Set(ctx, KeySelectedID, ""); err != nil {
		slog.WarnContext(ctx, "failed to clear selection", "error", err)
	}
	return &LoadSelectedIDOutput{}, nil
}

func (r *tieredRepository) SaveSelectedID(ctx context.Context, input *SaveSelectedIDInput) (*SaveSelectedIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := r.primary.Set(ctx, KeySelectedID, input.ID); err != nil {
		slog.WarnContext(ctx, "failed to write selection to primary store", "error", err)
	}
	if input.ID == "" {
		r.writer.Delete(KeySelectedID)
	} else {
		r.writer.Set(KeySelectedID, input.ID)
	}
	return &SaveSelectedIDOutput{}, nil
}

func (r *tieredRepository) Flush(ctx context.Context) error {
	return r.writer.Flush(ctx)
}

func (r *tieredRepository) Close() error {
	r.writer.Close()

	var firstErr error
	for _, closer := range r.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// read returns the value under key, treating every failure as absent
func (r *tieredRepository) read(ctx context.Context, store Store, tier, key string) (string, bool) {
	value, err := store.Get(ctx, key)
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "store read failed, treating as absent",
				"tier", tier,
				"key", key,
				"error", err)
		}
		return "", false
	}
	return value, true
}

func (r *tieredRepository) seeded(ctx context.Context) bool {
	if _, ok := r.read(ctx, r.primary, "primary", KeySeeded); ok {
		return true
	}
	_, ok := r.read(ctx, r.durable, "durable", KeySeeded)
	return ok
}

func encodeRoster(ctx context.Context, characters []*entities.Character) (string, bool) {
	data, err := json.Marshal(characters)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal roster", "error", err)
		return "", false
	}
	return string(data), true
}

// parseRoster decodes a stored roster. Corrupt JSON, a non-array payload and an
// empty roster all count as no data.
func parseRoster(ctx context.Context, raw, tier string) ([]*entities.Character, bool) {
	value, err := record.DecodeValue([]byte(raw))
	if err != nil {
		slog.WarnContext(ctx, "stored roster is corrupt, treating as absent", "tier", tier, "error", err)
		return nil, false
	}
	list, ok := value.([]any)
	if !ok {
		slog.WarnContext(ctx, "stored roster is not a list, treating as absent", "tier", tier)
		return nil, false
	}

	characters := normalize.Roster(list)
	if len(characters) == 0 {
		return nil, false
	}
	return characters, true
}
