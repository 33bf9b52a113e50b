package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
)

// CreateTestSQLiteStore opens a durable store in a temporary directory.
// The store is closed when the test ends.
func CreateTestSQLiteStore(t *testing.T) (*roster.SQLiteStore, string) {
	path := filepath.Join(t.TempDir(), "charsheet.db")

	store, err := roster.OpenSQLiteStore(context.Background(), &roster.SQLiteStoreConfig{Path: path})
	require.NoError(t, err, "failed to open sqlite store")

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store, path
}
