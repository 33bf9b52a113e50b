package roster

import (
	"context"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

// TierStatus classifies the roster found in one store
type TierStatus string

const (
	TierStatusOK          TierStatus = "ok"
	TierStatusAbsent      TierStatus = "absent"
	TierStatusEmpty       TierStatus = "empty"
	TierStatusCorrupt     TierStatus = "corrupt"
	TierStatusNotList     TierStatus = "not_list"
	TierStatusUnavailable TierStatus = "unavailable"
)

// Usable reports whether a load would accept the roster from this tier
func (s TierStatus) Usable() bool {
	return s == TierStatusOK
}

// TierReport describes what a store holds under the roster keys
type TierReport struct {
	Tier       string
	Status     TierStatus
	Bytes      int
	Records    int
	Characters int
	SelectedID string
	Seeded     bool
	Err        error
}

// Dropped is the number of stored entries a load would discard
func (r *TierReport) Dropped() int {
	return r.Records - r.Characters
}

// InspectStore reads the roster keys of a single store without changing them
func InspectStore(ctx context.Context, store Store, tier string) *TierReport {
	report := &TierReport{Tier: tier}

	raw, err := store.Get(ctx, KeyCharacters)
	switch {
	case errors.IsNotFound(err):
		report.Status = TierStatusAbsent
	case err != nil:
		report.Status = TierStatusUnavailable
		report.Err = err
		return report
	default:
		report.Bytes = len(raw)
		inspectRoster(report, raw)
	}

	if id, err := store.Get(ctx, KeySelectedID); err == nil {
		report.SelectedID = id
	}
	if _, err := store.Get(ctx, KeySeeded); err == nil {
		report.Seeded = true
	}
	return report
}

func inspectRoster(report *TierReport, raw string) {
	value, err := record.DecodeValue([]byte(raw))
	if err != nil {
		report.Status = TierStatusCorrupt
		report.Err = errors.WrapWithCode(err, errors.CodeDataLoss, "stored roster is unreadable").
			WithMeta("tier", report.Tier)
		return
	}
	list, ok := value.([]any)
	if !ok {
		report.Status = TierStatusNotList
		report.Err = errors.DataLossf("stored roster is a %T, not a list", value).
			WithMeta("tier", report.Tier)
		return
	}

	report.Records = len(list)
	report.Characters = len(normalize.Roster(list))
	if report.Characters == 0 {
		report.Status = TierStatusEmpty
		return
	}
	report.Status = TierStatusOK
}
