package roster

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// SelectCharacter makes a character the current one and persists the choice
func (o *orchestrator) SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	selected, err := o.selectLocked(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "character selected", "character_id", input.CharacterID)
	o.notify(selected.Clone())

	return &SelectCharacterOutput{Character: selected}, nil
}

// DeleteCharacter removes a character. Deleting the selected character moves
// the selection to the first remaining one.
func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	deleted, selectedID, selected, reselected, err := o.deleteLocked(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character deleted",
		"character_id", deleted.ID,
		"selected_id", selectedID)

	if reselected {
		o.notify(selected)
	}

	return &DeleteCharacterOutput{
		Deleted:    deleted,
		SelectedID: selectedID,
	}, nil
}

func (o *orchestrator) selectLocked(ctx context.Context, id string) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if id != "" && o.indexOf(id) < 0 {
		return nil, errors.NotFoundf("character %q not found", id).WithMeta("character_id", id)
	}
	if err := o.persistSelection(ctx, id); err != nil {
		return nil, err
	}
	return o.selectedClone(), nil
}

// deleteLocked removes the character and repoints the selection when it was
// the selected one. It returns the deleted character, the new selection and
// whether the selection moved.
func (o *orchestrator) deleteLocked(ctx context.Context, id string) (*entities.Character, string, *entities.Character, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := o.indexOf(id)
	if i < 0 {
		return nil, "", nil, false, errors.NotFoundf("character %q not found", id).WithMeta("character_id", id)
	}

	deleted := o.characters[i]
	remaining := slices.Delete(slices.Clone(o.characters), i, i+1)
	selectedID := o.selectedID
	reselected := selectedID == deleted.ID
	if reselected {
		selectedID = ""
		if len(remaining) > 0 {
			selectedID = remaining[0].ID
		}
	}

	if _, err := o.persistRoster(ctx, remaining); err != nil {
		return nil, "", nil, false, err
	}
	if err := o.persistSelection(ctx, selectedID); err != nil {
		return nil, "", nil, false, err
	}
	return deleted, o.selectedID, o.selectedClone(), reselected, nil
}
