package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charsheet/internal/transfer"
)

// Import adds a character from an export file. The character always gets an
// ID that is free in the roster and becomes the selected one.
func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec, err := transfer.ParseImport(input.Data)
	if err != nil {
		return nil, err
	}
	character := normalize.Character(rec)
	if character == nil {
		return nil, errors.InvalidArgument("import file has no character")
	}

	requestedID := character.ID
	out, err := o.addCharacter(ctx, func(ids []string) *entities.Character {
		character.ID = idgen.Unique(requestedID, ids)
		return character
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character imported",
		"character_id", out.ID,
		"requested_id", requestedID,
		"name", out.Name)
	o.notify(out.Clone())

	return &ImportOutput{Character: out}, nil
}

// Export builds the export file for a character with its images inlined
func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	envelope, err := transfer.BuildExport(ctx, character, o.resolver, o.clock)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to export %s", character.Name)
	}
	if len(envelope.Unresolved) > 0 {
		slog.WarnContext(ctx, "export kept unresolved image references",
			"character_id", character.ID,
			"count", len(envelope.Unresolved))
	}

	data, err := envelope.Marshal()
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Envelope: envelope,
		Filename: transfer.Filename(character.Name),
		Data:     data,
	}, nil
}
