// Package roster implements the roster orchestrator: it owns the loaded roster
// and the current selection, and routes every change through a single
// update engine that renormalizes and persists the result.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/normalize"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/statroll"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/transfer"
)

// Mutator edits a draft copy of a character. Returning nil keeps the draft.
// An error aborts the update and leaves the roster untouched.
type Mutator func(draft *entities.Character) (*entities.Character, error)

// RenderFunc is told about the selected character after it changes. A nil
// character means nothing is selected.
type RenderFunc func(character *entities.Character)

// Service defines the interface for roster operations
type Service interface {
	// Load reads the roster and selection from the repository
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Read access. All returned characters are copies.
	Characters() []*entities.Character
	GetCharacterByID(id string) *entities.Character
	GetSelectedCharacter() *entities.Character

	// ApplyCharacterUpdate is the single entry point for changing a character
	ApplyCharacterUpdate(ctx context.Context, input *ApplyCharacterUpdateInput) (*ApplyCharacterUpdateOutput, error)

	// Roster management
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// Sheet sections
	SaveActiveAbility(ctx context.Context, input *SaveActiveAbilityInput) (*SaveActiveAbilityOutput, error)
	SavePassiveAbility(ctx context.Context, input *SavePassiveAbilityInput) (*SavePassiveAbilityOutput, error)
	SaveInventoryItem(ctx context.Context, input *SaveInventoryItemInput) (*SaveInventoryItemOutput, error)
	DeleteActiveAbility(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
	DeletePassiveAbility(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
	DeleteInventoryItem(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
	SaveNotes(ctx context.Context, input *SaveNotesInput) (*SaveNotesOutput, error)
	SetCurrentHealth(ctx context.Context, input *SetCurrentHealthInput) (*SetCurrentHealthOutput, error)

	// Turns
	ExecuteAbility(ctx context.Context, input *ExecuteAbilityInput) (*ExecuteAbilityOutput, error)
	PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error)
	ResetCooldown(ctx context.Context, input *ResetCooldownInput) (*ResetCooldownOutput, error)

	// Stats
	PassiveModifiers(ctx context.Context, input *PassiveModifiersInput) (*PassiveModifiersOutput, error)
	RollStat(ctx context.Context, input *RollStatInput) (*RollStatOutput, error)

	// Import and export
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Repository rosterrepo.Repository

	// Optional
	Resolver transfer.ImageResolver
	Roller   *statroll.Roller
	Clock    clock.Clock
	Render   RenderFunc

	ActiveIDGenerator  idgen.Generator
	PassiveIDGenerator idgen.Generator
	ItemIDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// orchestrator is safe for concurrent use. Mutators and the render callback
// must not call back into the orchestrator.
type orchestrator struct {
	repo     rosterrepo.Repository
	resolver transfer.ImageResolver
	roller   *statroll.Roller
	clock    clock.Clock
	render   RenderFunc

	activeIDs  idgen.Generator
	passiveIDs idgen.Generator
	itemIDs    idgen.Generator

	mu         sync.Mutex
	characters []*entities.Character
	selectedID string
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:       cfg.Repository,
		resolver:   cfg.Resolver,
		roller:     cfg.Roller,
		clock:      cfg.Clock,
		render:     cfg.Render,
		activeIDs:  cfg.ActiveIDGenerator,
		passiveIDs: cfg.PassiveIDGenerator,
		itemIDs:    cfg.ItemIDGenerator,
		characters: []*entities.Character{},
	}
	if o.resolver == nil {
		o.resolver = transfer.NewInliner(nil)
	}
	if o.roller == nil {
		o.roller = statroll.New(nil)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.activeIDs == nil {
		o.activeIDs = idgen.NewSuffixed("active")
	}
	if o.passiveIDs == nil {
		o.passiveIDs = idgen.NewSuffixed("passive")
	}
	if o.itemIDs == nil {
		o.itemIDs = idgen.NewSuffixed("item")
	}
	return o, nil
}

// Load replaces the in-memory state with what the repository holds. A stored
// selection that no longer matches a character falls back to the first one.
func (o *orchestrator) Load(ctx context.Context, _ *LoadInput) (*LoadOutput, error) {
	rosterOut, err := o.repo.LoadRoster(ctx, &rosterrepo.LoadRosterInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster")
	}
	selectedOut, err := o.repo.LoadSelectedID(ctx, &rosterrepo.LoadSelectedIDInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selection")
	}

	o.mu.Lock()
	o.characters = rosterOut.Characters
	if o.characters == nil {
		o.characters = []*entities.Character{}
	}
	o.selectedID = selectedOut.ID
	if o.indexOf(o.selectedID) < 0 {
		o.selectedID = o.firstID()
	}
	output := &LoadOutput{
		Source:     rosterOut.Source,
		Count:      len(o.characters),
		SelectedID: o.selectedID,
	}
	o.mu.Unlock()

	slog.DebugContext(ctx, "roster loaded",
		"source", output.Source,
		"count", output.Count,
		"selected_id", output.SelectedID)

	return output, nil
}

// Characters returns copies of every character in roster order
func (o *orchestrator) Characters() []*entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]*entities.Character, len(o.characters))
	for i, c := range o.characters {
		out[i] = c.Clone()
	}
	return out
}

// GetCharacterByID returns a copy of the character with id, or nil
func (o *orchestrator) GetCharacterByID(id string) *entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()

	if i := o.indexOf(id); i >= 0 {
		return o.characters[i].Clone()
	}
	return nil
}

// GetSelectedCharacter returns a copy of the selected character, or nil
func (o *orchestrator) GetSelectedCharacter() *entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()

	if i := o.indexOf(o.selectedID); i >= 0 {
		return o.characters[i].Clone()
	}
	return nil
}

// ApplyCharacterUpdate runs the mutator on a draft copy of the character,
// renormalizes the result, stores it in place and persists the roster. An
// unknown id is a no-op that returns a nil character.
func (o *orchestrator) ApplyCharacterUpdate(ctx context.Context, input *ApplyCharacterUpdateInput) (*ApplyCharacterUpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Mutator == nil {
		return nil, errors.InvalidArgument("mutator is required")
	}

	out, selected, err := o.applyUpdate(ctx, input)
	if err != nil {
		return nil, err
	}
	if out.Character == nil {
		slog.DebugContext(ctx, "update skipped, character not found", "character_id", input.CharacterID)
		return out, nil
	}

	if selected {
		o.notify(out.Character.Clone())
	}
	return out, nil
}

// applyUpdate does the locked part of ApplyCharacterUpdate. The roster entry
// is replaced only once the new roster has been saved.
func (o *orchestrator) applyUpdate(ctx context.Context, input *ApplyCharacterUpdateInput) (*ApplyCharacterUpdateOutput, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := o.indexOf(input.CharacterID)
	if i < 0 {
		return &ApplyCharacterUpdateOutput{}, false, nil
	}

	current := o.characters[i]
	draft := current.Clone()
	result, err := input.Mutator(draft)
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		result = draft
	}

	updated := normalize.Entity(result)
	updated.ID = current.ID

	next := slices.Clone(o.characters)
	next[i] = updated
	primaryWritten, err := o.persistRoster(ctx, next)
	if err != nil {
		return nil, false, err
	}

	return &ApplyCharacterUpdateOutput{
		Character:      updated.Clone(),
		PrimaryWritten: primaryWritten,
	}, o.selectedID == updated.ID, nil
}

// update applies mutator to an existing character and fails with NotFound
// when there is no such character
func (o *orchestrator) update(ctx context.Context, characterID string, mutator Mutator) (*entities.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.ApplyCharacterUpdate(ctx, &ApplyCharacterUpdateInput{
		CharacterID: characterID,
		Mutator:     mutator,
	})
	if err != nil {
		return nil, err
	}
	if out.Character == nil {
		return nil, errors.NotFoundf("character %q not found", characterID).
			WithMeta("character_id", characterID)
	}
	return out.Character, nil
}

// addCharacter appends the character built from the ids in use, selects it and
// persists both. It returns a copy of the stored character.
func (o *orchestrator) addCharacter(ctx context.Context, build func(ids []string) *entities.Character) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	character := build(o.characterIDs())
	next := append(slices.Clone(o.characters), character)
	if _, err := o.persistRoster(ctx, next); err != nil {
		return nil, err
	}
	if err := o.persistSelection(ctx, character.ID); err != nil {
		return nil, err
	}
	return character.Clone(), nil
}

// persistRoster saves the roster and then adopts it. Callers hold o.mu.
func (o *orchestrator) persistRoster(ctx context.Context, characters []*entities.Character) (bool, error) {
	out, err := o.repo.SaveRoster(ctx, &rosterrepo.SaveRosterInput{Characters: characters})
	if err != nil {
		return false, errors.Wrap(err, "failed to save roster")
	}
	o.characters = characters
	if !out.PrimaryWritten {
		slog.WarnContext(ctx, "roster kept only in durable store", "count", len(characters))
	}
	return out.PrimaryWritten, nil
}

// persistSelection saves the selection and then adopts it. Callers hold o.mu.
func (o *orchestrator) persistSelection(ctx context.Context, id string) error {
	if _, err := o.repo.SaveSelectedID(ctx, &rosterrepo.SaveSelectedIDInput{ID: id}); err != nil {
		return errors.Wrap(err, "failed to save selection")
	}
	o.selectedID = id
	return nil
}

// selectedClone returns a copy of the selected character. Callers hold o.mu.
func (o *orchestrator) selectedClone() *entities.Character {
	if i := o.indexOf(o.selectedID); i >= 0 {
		return o.characters[i].Clone()
	}
	return nil
}

func (o *orchestrator) isSelected(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selectedID == id
}

func (o *orchestrator) notify(c *entities.Character) {
	if o.render != nil {
		o.render(c)
	}
}

// indexOf returns the position of id in the roster, or -1. Callers hold o.mu.
func (o *orchestrator) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range o.characters {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// firstID returns the first character's id, or "". Callers hold o.mu.
func (o *orchestrator) firstID() string {
	if len(o.characters) == 0 {
		return ""
	}
	return o.characters[0].ID
}

// characterIDs lists the ids in use. Callers hold o.mu.
func (o *orchestrator) characterIDs() []string {
	ids := make([]string, len(o.characters))
	for i, c := range o.characters {
		ids[i] = c.ID
	}
	return ids
}
