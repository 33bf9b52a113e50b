package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
)

func TestRepairRosterRewritesCorruptTier(t *testing.T) {
	ctx := context.Background()
	primary := rosterrepo.NewMemoryStore(0)
	durable := rosterrepo.NewMemoryStore(0)
	require.NoError(t, primary.Set(ctx, rosterrepo.KeyCharacters, `not json`))
	require.NoError(t, durable.Set(ctx, rosterrepo.KeyCharacters, `[{"nombre":"Vieja","estadisticas":{"vida":"12"}}]`))

	var out bytes.Buffer
	require.NoError(t, repairRoster(ctx, &out, primary, durable))
	assert.Contains(t, out.String(), "Rewrote 1 character(s) from the durable store")

	for _, store := range []rosterrepo.Store{primary, durable} {
		raw, err := store.Get(ctx, rosterrepo.KeyCharacters)
		require.NoError(t, err)

		var characters []*entities.Character
		require.NoError(t, json.Unmarshal([]byte(raw), &characters))
		require.Len(t, characters, 1)
		assert.Equal(t, "Vieja", characters[0].Name)
		assert.Equal(t, "vieja", characters[0].ID)

		report := rosterrepo.InspectStore(ctx, store, "check")
		assert.Equal(t, rosterrepo.TierStatusOK, report.Status)
	}
}

func TestPrintTierReports(t *testing.T) {
	var out bytes.Buffer
	printTierReports(&out, []*rosterrepo.TierReport{
		{Tier: "primary", Status: rosterrepo.TierStatusOK, Records: 3, Characters: 2, SelectedID: "x", Seeded: true},
		{Tier: "durable", Status: rosterrepo.TierStatusAbsent},
	})

	text := out.String()
	assert.Contains(t, text, "STORE")
	assert.Contains(t, text, "primary")
	assert.Contains(t, text, "absent")
	assert.Contains(t, text, "true")
}

func TestUnrecoverableReportsDataLoss(t *testing.T) {
	ctx := context.Background()
	primary := rosterrepo.NewMemoryStore(0)
	durable := rosterrepo.NewMemoryStore(0)
	require.NoError(t, primary.Set(ctx, rosterrepo.KeyCharacters, `[{"id":`))
	require.NoError(t, durable.Set(ctx, rosterrepo.KeyCharacters, `{"id":"x"}`))

	reports := []*rosterrepo.TierReport{
		rosterrepo.InspectStore(ctx, primary, "primary"),
		rosterrepo.InspectStore(ctx, durable, "durable"),
	}
	err := unrecoverable(reports)
	require.Error(t, err)
	assert.True(t, errors.IsDataLoss(err))
	assert.Equal(t, 3, errors.GetCode(err).ExitCode())
	assert.Contains(t, err.Error(), "primary, durable")

	require.NoError(t, durable.Set(ctx, rosterrepo.KeyCharacters, `[{"id":"x","name":"X"}]`))
	reports[1] = rosterrepo.InspectStore(ctx, durable, "durable")
	assert.NoError(t, unrecoverable(reports))

	empty := rosterrepo.InspectStore(ctx, rosterrepo.NewMemoryStore(0), "primary")
	assert.NoError(t, unrecoverable([]*rosterrepo.TierReport{empty}))
}

func TestReportError(t *testing.T) {
	var out bytes.Buffer
	notFound := errors.Wrap(errors.NotFoundf("character %q not found", "x"), "failed to show")
	assert.Equal(t, 2, reportError(&out, notFound))
	assert.Equal(t, "Error: failed to show\n", out.String())

	out.Reset()
	lost := errors.DataLossf("no store holds a usable roster; damaged: %s", "primary")
	assert.Equal(t, 3, reportError(&out, lost))
	assert.Equal(t, "Error: DATA_LOSS: no store holds a usable roster; damaged: primary\n", out.String())
}
