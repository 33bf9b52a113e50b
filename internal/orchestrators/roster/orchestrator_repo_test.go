package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
	mockclock "github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen/mock"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster/mock"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/builders"
	transfermock "github.com/KirkDiggler/rpg-charsheet/internal/transfer/mock"
)

type OrchestratorRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *rostermock.MockRepository
	svc      roster.Service
}

func TestOrchestratorRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrchestratorRepositoryTestSuite))
}

func (s *OrchestratorRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rostermock.NewMockRepository(s.ctrl)

	svc, err := roster.NewOrchestrator(&roster.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorRepositoryTestSuite) expectLoad(characters ...*entities.Character) {
	s.mockRepo.EXPECT().
		LoadRoster(s.ctx, &rosterrepo.LoadRosterInput{}).
		Return(&rosterrepo.LoadRosterOutput{Characters: characters, Source: rosterrepo.SourcePrimary}, nil)
	s.mockRepo.EXPECT().
		LoadSelectedID(s.ctx, &rosterrepo.LoadSelectedIDInput{}).
		Return(&rosterrepo.LoadSelectedIDOutput{}, nil)
}

func (s *OrchestratorRepositoryTestSuite) TestLoadCanceled() {
	s.mockRepo.EXPECT().
		LoadRoster(s.ctx, gomock.Any()).
		Return(nil, errors.WrapWithCode(context.Canceled, errors.CodeCanceled, "load canceled"))

	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Empty(s.svc.Characters())
}

func (s *OrchestratorRepositoryTestSuite) TestEmptyRosterSelectsNothing() {
	s.expectLoad()

	out, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)
	s.Equal("", out.SelectedID)
	s.Nil(s.svc.GetSelectedCharacter())
}

func (s *OrchestratorRepositoryTestSuite) TestUpdateReportsPrimaryFailure() {
	s.expectLoad(testutils.CreateTestCharacter())
	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		SaveRoster(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rosterrepo.SaveRosterInput) (*rosterrepo.SaveRosterOutput, error) {
			s.Require().Len(input.Characters, 1)
			s.Equal("Updated", input.Characters[0].Name)
			return &rosterrepo.SaveRosterOutput{PrimaryWritten: false}, nil
		})

	out, err := s.svc.ApplyCharacterUpdate(s.ctx, &roster.ApplyCharacterUpdateInput{
		CharacterID: testutils.TestCharacterID,
		Mutator: func(draft *entities.Character) (*entities.Character, error) {
			draft.Name = "Updated"
			return draft, nil
		},
	})
	s.Require().NoError(err)
	s.False(out.PrimaryWritten)
	s.Equal("Updated", out.Character.Name)
}

func (s *OrchestratorRepositoryTestSuite) TestCreatePersistsRosterThenSelection() {
	s.expectLoad()
	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockRepo.EXPECT().
			SaveRoster(s.ctx, gomock.Any()).
			Return(&rosterrepo.SaveRosterOutput{PrimaryWritten: true}, nil),
		s.mockRepo.EXPECT().
			SaveSelectedID(s.ctx, &rosterrepo.SaveSelectedIDInput{ID: "mira"}).
			Return(&rosterrepo.SaveSelectedIDOutput{}, nil),
	)

	out, err := s.svc.SaveCharacter(s.ctx, &roster.SaveCharacterInput{Name: "Mira"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("mira", out.Character.ID)
}

func (s *OrchestratorRepositoryTestSuite) TestValidationSkipsPersistence() {
	s.expectLoad(testutils.CreateTestCharacter())
	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	_, err = s.svc.SaveActiveAbility(s.ctx, &roster.SaveActiveAbilityInput{
		CharacterID: testutils.TestCharacterID,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ExecuteAbility(s.ctx, &roster.ExecuteAbilityInput{
		CharacterID: testutils.TestCharacterID,
		AbilityID:   "ghost",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorRepositoryTestSuite) TestFailedSaveLeavesRosterUntouched() {
	s.expectLoad(testutils.CreateTestCharacter())
	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		SaveRoster(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("store down")).
		Times(3)

	_, err = s.svc.ApplyCharacterUpdate(s.ctx, &roster.ApplyCharacterUpdateInput{
		CharacterID: testutils.TestCharacterID,
		Mutator: func(draft *entities.Character) (*entities.Character, error) {
			draft.Name = "Updated"
			return draft, nil
		},
	})
	s.Require().Error(err)
	s.Equal(testutils.TestCharacterName, s.svc.GetCharacterByID(testutils.TestCharacterID).Name)

	_, err = s.svc.SaveCharacter(s.ctx, &roster.SaveCharacterInput{Name: "Mira"})
	s.Require().Error(err)
	s.Len(s.svc.Characters(), 1)

	_, err = s.svc.DeleteCharacter(s.ctx, &roster.DeleteCharacterInput{CharacterID: testutils.TestCharacterID})
	s.Require().Error(err)
	s.Len(s.svc.Characters(), 1)
	s.Equal(testutils.TestCharacterID, s.svc.GetSelectedCharacter().ID)
}

func (s *OrchestratorRepositoryTestSuite) TestPanickingMutatorReleasesLock() {
	s.expectLoad(testutils.CreateTestCharacter())
	_, err := s.svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	s.Panics(func() {
		_, _ = s.svc.ApplyCharacterUpdate(s.ctx, &roster.ApplyCharacterUpdateInput{
			CharacterID: testutils.TestCharacterID,
			Mutator: func(*entities.Character) (*entities.Character, error) {
				panic("mutator bug")
			},
		})
	})

	done := make(chan *entities.Character, 1)
	go func() { done <- s.svc.GetSelectedCharacter() }()
	select {
	case selected := <-done:
		s.Require().NotNil(selected)
		s.Equal(testutils.TestCharacterName, selected.Name)
	case <-time.After(time.Second):
		s.Fail("orchestrator stayed locked after a mutator panic")
	}
}

func (s *OrchestratorRepositoryTestSuite) TestExportInlinesThroughResolver() {
	resolver := transfermock.NewMockImageResolver(s.ctrl)
	clk := mockclock.NewMockClock(s.ctrl)
	svc, err := roster.NewOrchestrator(&roster.Config{
		Repository: s.mockRepo,
		Resolver:   resolver,
		Clock:      clk,
	})
	s.Require().NoError(err)

	character := builders.NewCharacterBuilder().
		WithID("mira").
		WithName("Mira").
		WithPortrait("portraits/mira.png").
		WithActiveAbility(entities.ActiveAbility{ID: "rayo-active", Title: "Rayo", Image: "rayo.png"}).
		Build()
	s.expectLoad(character)
	_, err = svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	resolver.EXPECT().
		Resolve(gomock.Any(), "portraits/mira.png").
		Return("data:image/png;base64,bWlyYQ==", nil)
	resolver.EXPECT().
		Resolve(gomock.Any(), "rayo.png").
		Return("", errors.NotFound("image rayo.png not found"))
	clk.EXPECT().
		Now().
		Return(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)).
		AnyTimes()

	out, err := svc.Export(s.ctx, &roster.ExportInput{CharacterID: "mira"})
	s.Require().NoError(err)
	s.Equal("2024-05-01T12:00:00.000Z", out.Envelope.ExportedAt)
	s.Equal("data:image/png;base64,bWlyYQ==", out.Envelope.Character.Portrait)
	s.Equal([]string{"rayo.png"}, out.Envelope.Unresolved)
	s.Equal("portraits/mira.png", svc.GetCharacterByID("mira").Portrait)
}

func (s *OrchestratorRepositoryTestSuite) TestNewActiveAbilityTakesGeneratedID() {
	generator := idgenmock.NewMockGenerator(s.ctrl)
	svc, err := roster.NewOrchestrator(&roster.Config{
		Repository:        s.mockRepo,
		ActiveIDGenerator: generator,
	})
	s.Require().NoError(err)

	s.expectLoad(testutils.CreateTestCharacter())
	_, err = svc.Load(s.ctx, &roster.LoadInput{})
	s.Require().NoError(err)

	generator.EXPECT().
		Generate("Rayo", gomock.Any()).
		DoAndReturn(func(_ string, existing []string) string {
			s.Contains(existing, "fireball-active")
			return "rayo-custom"
		})
	s.mockRepo.EXPECT().
		SaveRoster(s.ctx, gomock.Any()).
		Return(&rosterrepo.SaveRosterOutput{PrimaryWritten: true}, nil)

	out, err := svc.SaveActiveAbility(s.ctx, &roster.SaveActiveAbilityInput{
		CharacterID: testutils.TestCharacterID,
		Title:       "Rayo",
		Cooldown:    2,
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("rayo-custom", out.Ability.ID)
	s.Equal("rayo-custom", svc.GetCharacterByID(testutils.TestCharacterID).ActiveAbilities[2].ID)
}
