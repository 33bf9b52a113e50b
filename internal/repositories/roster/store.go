package roster

//go:generate mockgen -destination=mock/mock_store.go -package=rostermock github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster Store

import "context"

// Storage keys shared by both tiers
const (
	KeyCharacters = "charsheet.characters"
	KeySelectedID = "charsheet.selectedId"
	KeySeeded     = "charsheet.seeded"
)

// Store is a string key/value backend. Both the primary and the durable tier
// implement it.
type Store interface {
	// Get returns the value stored under key
	// Returns errors.NotFound if the key is absent
	// Returns errors.Unavailable for backend failures
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key
	// Returns errors.ResourceExhausted when the value exceeds the store quota
	// Returns errors.Unavailable for backend failures
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
