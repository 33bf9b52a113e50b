// Package roster persists the character roster and the selected character
// across a fast primary store and a durable store.
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
)

// Repository defines the interface for roster persistence.
//
// Storage failures never surface from loads: corrupt or unreadable data is
// treated as absent and the next source in the fallback chain is consulted.
type Repository interface {
	// LoadRoster returns the stored roster, falling back from the primary to the
	// durable store and finally to the one-time seed roster
	// Returns errors.Canceled if ctx is done
	LoadRoster(ctx context.Context, input *LoadRosterInput) (*LoadRosterOutput, error)

	// SaveRoster writes the roster to the primary store and queues the durable write
	// Returns errors.InvalidArgument for nil input
	SaveRoster(ctx context.Context, input *SaveRosterInput) (*SaveRosterOutput, error)

	// LoadSelectedID returns the persisted selection, or "" when none is stored
	LoadSelectedID(ctx context.Context, input *LoadSelectedIDInput) (*LoadSelectedIDOutput, error)

	// SaveSelectedID persists the selection; an empty ID clears it
	SaveSelectedID(ctx context.Context, input *SaveSelectedIDInput) (*SaveSelectedIDOutput, error)

	// Flush waits for queued durable writes
	Flush(ctx context.Context) error

	// Close flushes and releases the stores
	Close() error
}

// Source tells where a loaded roster came from
type Source string

// Roster sources
const (
	SourcePrimary Source = "primary"
	SourceDurable Source = "durable"
	SourceSeed    Source = "seed"
	SourceEmpty   Source = "empty"
)

// LoadRosterInput defines the input for loading the roster
type LoadRosterInput struct{}

// LoadRosterOutput defines the output for loading the roster
type LoadRosterOutput struct {
	Characters []*entities.Character
	Source     Source
}

// SaveRosterInput defines the input for saving the roster
type SaveRosterInput struct {
	Characters []*entities.Character
}

// SaveRosterOutput defines the output for saving the roster
type SaveRosterOutput struct {
	// PrimaryWritten is false when the primary store rejected the write; the
	// durable write is still queued
	PrimaryWritten bool
}

// LoadSelectedIDInput defines the input for loading the selection
type LoadSelectedIDInput struct{}

// LoadSelectedIDOutput defines the output for loading the selection
type LoadSelectedIDOutput struct {
	ID string
}

// SaveSelectedIDInput defines the input for saving the selection
type SaveSelectedIDInput struct {
	ID string
}

// SaveSelectedIDOutput defines the output for saving the selection
type SaveSelectedIDOutput struct{}
