package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster/mock"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/mocks"
)

func TestInspectStore(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		values     map[string]string
		status     roster.TierStatus
		records    int
		characters int
	}{
		{
			name:   "absent",
			status: roster.TierStatusAbsent,
		},
		{
			name:   "corrupt json",
			values: map[string]string{roster.KeyCharacters: `[{"id":`},
			status: roster.TierStatusCorrupt,
		},
		{
			name:   "object instead of list",
			values: map[string]string{roster.KeyCharacters: `{"id":"x"}`},
			status: roster.TierStatusNotList,
		},
		{
			name:    "list without characters",
			values:  map[string]string{roster.KeyCharacters: `[1, "two", null]`},
			status:  roster.TierStatusEmpty,
			records: 3,
		},
		{
			name: "drops duplicates and non-objects",
			values: map[string]string{
				roster.KeyCharacters: `[{"id":"x","name":"X"},{"id":"x","name":"Again"},7,{"nombre":"Vieja"}]`,
				roster.KeySelectedID: "x",
				roster.KeySeeded:     "1",
			},
			status:     roster.TierStatusOK,
			records:    4,
			characters: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := roster.NewMemoryStore(0)
			for key, value := range tc.values {
				require.NoError(t, store.Set(ctx, key, value))
			}

			report := roster.InspectStore(ctx, store, "primary")
			assert.Equal(t, "primary", report.Tier)
			assert.Equal(t, tc.status, report.Status)
			assert.Equal(t, tc.records, report.Records)
			assert.Equal(t, tc.characters, report.Characters)
			assert.Equal(t, tc.records-tc.characters, report.Dropped())
			assert.Equal(t, tc.status == roster.TierStatusOK, report.Status.Usable())
			assert.Equal(t, tc.values[roster.KeySelectedID], report.SelectedID)
			assert.Equal(t, tc.values[roster.KeySeeded] != "", report.Seeded)

			damaged := tc.status == roster.TierStatusCorrupt || tc.status == roster.TierStatusNotList
			assert.Equal(t, damaged, errors.IsDataLoss(report.Err), "err: %v", report.Err)
			if damaged {
				assert.Equal(t, "primary", errors.GetMeta(report.Err)["tier"])
				assert.Equal(t, 3, errors.GetCode(report.Err).ExitCode())
			}
		})
	}
}

func TestInspectStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := rostermock.NewMockStore(ctrl)
	mocks.ExpectStoreUnavailable(store)

	report := roster.InspectStore(context.Background(), store, "durable")
	assert.Equal(t, roster.TierStatusUnavailable, report.Status)
	assert.True(t, errors.IsUnavailable(report.Err))
	assert.False(t, errors.IsDataLoss(report.Err))
	assert.False(t, report.Seeded)
}
