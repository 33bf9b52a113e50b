package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
	rostermock "github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster/mock"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/statroll"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils"
	"github.com/KirkDiggler/rpg-charsheet/internal/transfer"
)

type CommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *rostermock.MockService
	out     *bytes.Buffer
	closed  bool
	current *entities.Character
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = rostermock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}
	s.closed = false
	s.current = testutils.CreateTestCharacter()

	characterID = ""
	requestTimeoutS = 30
	deleteYes = false
	healthDamage = 0
	healthHeal = 0
	notesFile = ""
	rollApplyModifiers = false
	exportOut = "."

	serviceFactory = func(_ context.Context, _ *cobra.Command) (roster.Service, closeFunc, error) {
		return s.mockSvc, func(context.Context) error {
			s.closed = true
			return nil
		}, nil
	}
}

func (s *CommandsTestSuite) TearDownTest() {
	serviceFactory = openService
	s.ctrl.Finish()
}

func (s *CommandsTestSuite) run(args ...string) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(&bytes.Buffer{})
	return rootCmd.ExecuteContext(context.Background())
}

func (s *CommandsTestSuite) expectLoad() {
	s.mockSvc.EXPECT().
		Load(gomock.Any(), &roster.LoadInput{}).
		Return(&roster.LoadOutput{Count: 1, SelectedID: s.current.ID}, nil)
}

func (s *CommandsTestSuite) expectSelected() {
	s.mockSvc.EXPECT().GetSelectedCharacter().Return(s.current)
}

func (s *CommandsTestSuite) TestListMarksSelected() {
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().Characters().Return([]*entities.Character{s.current})

	s.Require().NoError(s.run("list"))
	s.Contains(s.out.String(), "*")
	s.Contains(s.out.String(), testutils.TestCharacterID)
	s.Contains(s.out.String(), "30/30")
	s.True(s.closed)
}

func (s *CommandsTestSuite) TestListEmpty() {
	s.expectLoad()
	s.mockSvc.EXPECT().GetSelectedCharacter().Return(nil)
	s.mockSvc.EXPECT().Characters().Return(nil)

	s.Require().NoError(s.run("list"))
	s.Contains(s.out.String(), "No characters yet")
}

func (s *CommandsTestSuite) TestNothingSelected() {
	s.expectLoad()
	s.mockSvc.EXPECT().GetSelectedCharacter().Return(nil)

	err := s.run("pass")
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(2, errors.GetCode(err).ExitCode())
}

func (s *CommandsTestSuite) TestUnknownCharacterFlag() {
	s.expectLoad()
	s.mockSvc.EXPECT().GetCharacterByID("ghost").Return(nil)

	err := s.run("pass", "--character", "ghost")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CommandsTestSuite) TestSelect() {
	s.expectLoad()
	s.mockSvc.EXPECT().
		SelectCharacter(gomock.Any(), &roster.SelectCharacterInput{CharacterID: testutils.TestCharacterID}).
		Return(&roster.SelectCharacterOutput{Character: s.current}, nil)

	s.Require().NoError(s.run("select", testutils.TestCharacterID))
	s.Contains(s.out.String(), "Selected "+testutils.TestCharacterName)
}

func (s *CommandsTestSuite) TestDeleteRequiresConfirmation() {
	err := s.run("delete", testutils.TestCharacterID)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.False(s.closed)
}

func (s *CommandsTestSuite) TestDelete() {
	s.expectLoad()
	s.mockSvc.EXPECT().
		DeleteCharacter(gomock.Any(), &roster.DeleteCharacterInput{CharacterID: testutils.TestCharacterID}).
		Return(&roster.DeleteCharacterOutput{Deleted: s.current}, nil)

	s.Require().NoError(s.run("delete", testutils.TestCharacterID, "--yes"))
	s.Contains(s.out.String(), "Deleted "+testutils.TestCharacterName)
	s.Contains(s.out.String(), "No character selected")
}

func (s *CommandsTestSuite) TestHealthDamage() {
	s.expectLoad()
	s.expectSelected()

	damaged := testutils.CreateTestCharacter()
	damaged.CurrentHealth = 25
	s.mockSvc.EXPECT().
		SetCurrentHealth(gomock.Any(), &roster.SetCurrentHealthInput{
			CharacterID: testutils.TestCharacterID,
			Delta:       -5,
		}).
		Return(&roster.SetCurrentHealthOutput{Character: damaged}, nil)

	s.Require().NoError(s.run("health", "--damage", "5"))
	s.Contains(s.out.String(), "25/30")
}

func (s *CommandsTestSuite) TestHealthRejectsText() {
	err := s.run("health", "lots")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestNotes() {
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().
		SaveNotes(gomock.Any(), &roster.SaveNotesInput{
			CharacterID: testutils.TestCharacterID,
			Notes:       "owes the innkeeper",
		}).
		Return(&roster.SaveNotesOutput{Character: s.current}, nil)

	s.Require().NoError(s.run("notes", "owes the innkeeper"))
	s.Contains(s.out.String(), "Saved notes")
}

func (s *CommandsTestSuite) TestUseAbility() {
	s.expectLoad()
	s.expectSelected()

	used := testutils.CreateTestCharacter()
	used.ActiveAbilities[1].CooldownProgress = 0
	s.mockSvc.EXPECT().
		ExecuteAbility(gomock.Any(), &roster.ExecuteAbilityInput{
			CharacterID: testutils.TestCharacterID,
			AbilityID:   "fireball-active",
		}).
		Return(&roster.ExecuteAbilityOutput{Character: used, Ability: &used.ActiveAbilities[1]}, nil)

	s.Require().NoError(s.run("use", "fireball-active"))
	s.Contains(s.out.String(), "used Fireball")
	s.Contains(s.out.String(), "3 turn(s) left (0/3)")
}

func (s *CommandsTestSuite) TestUseAbilityOnCooldown() {
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().
		ExecuteAbility(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("ability is on cooldown"))

	err := s.run("use", "fireball-active")
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.True(s.closed)
}

func (s *CommandsTestSuite) TestRollWithModifiers() {
	s.expectLoad()
	s.expectSelected()

	expr, err := statroll.Parse("1d6")
	s.Require().NoError(err)
	s.mockSvc.EXPECT().
		RollStat(gomock.Any(), &roster.RollStatInput{
			CharacterID:    testutils.TestCharacterID,
			Stat:           entities.StatDamage,
			ApplyModifiers: true,
		}).
		Return(&roster.RollStatOutput{
			Result:   &statroll.Result{Expression: expr, Dice: []int{4}, Total: 4},
			Modifier: 2,
			Total:    6,
		}, nil)

	s.Require().NoError(s.run("roll", "damage", "--modifiers"))
	s.Contains(s.out.String(), "[4] = 4")
	s.Contains(s.out.String(), "(+2): 6")
}

func (s *CommandsTestSuite) TestModifiers() {
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().
		PassiveModifiers(gomock.Any(), &roster.PassiveModifiersInput{CharacterID: testutils.TestCharacterID}).
		Return(&roster.PassiveModifiersOutput{
			Totals: map[entities.StatKey]int{entities.StatDefense: 2},
			Details: map[entities.StatKey][]roster.ModifierSource{
				entities.StatDefense: {{AbilityID: "tough-skin-passive", AbilityTitle: "Tough skin", Value: 2}},
			},
		}, nil)

	s.Require().NoError(s.run("modifiers"))
	s.Contains(s.out.String(), "+2 Tough skin")
}

func (s *CommandsTestSuite) TestExportToStdout() {
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().
		Export(gomock.Any(), &roster.ExportInput{CharacterID: testutils.TestCharacterID}).
		Return(&roster.ExportOutput{
			Envelope: &transfer.Envelope{Version: 1, Character: s.current},
			Filename: "boomer.charsheet.json",
			Data:     []byte(`{"version":1}`),
		}, nil)

	s.Require().NoError(s.run("export", "--out", "-"))
	s.Equal("{\"version\":1}\n", s.out.String())
}

func (s *CommandsTestSuite) TestExportToDirectory() {
	dir := s.T().TempDir()
	s.expectLoad()
	s.expectSelected()
	s.mockSvc.EXPECT().
		Export(gomock.Any(), gomock.Any()).
		Return(&roster.ExportOutput{
			Envelope: &transfer.Envelope{Version: 1, Character: s.current},
			Filename: "boomer.charsheet.json",
			Data:     []byte(`{"version":1}`),
		}, nil)

	s.Require().NoError(s.run("export", "--out", dir))

	data, err := os.ReadFile(filepath.Join(dir, "boomer.charsheet.json"))
	s.Require().NoError(err)
	s.JSONEq(`{"version":1}`, string(data))
}

func (s *CommandsTestSuite) TestImport() {
	path := filepath.Join(s.T().TempDir(), "nyx.charsheet.json")
	payload := []byte(`{"version":1,"character":{"id":"nyx","name":"Nyx"}}`)
	s.Require().NoError(os.WriteFile(path, payload, 0o600))

	s.expectLoad()
	s.mockSvc.EXPECT().
		Import(gomock.Any(), &roster.ImportInput{Data: payload}).
		Return(&roster.ImportOutput{Character: &entities.Character{ID: "nyx-2", Name: "Nyx"}}, nil)

	s.Require().NoError(s.run("import", path))
	s.Contains(s.out.String(), "Imported Nyx (nyx-2)")
}

func (s *CommandsTestSuite) TestImportMissingFile() {
	err := s.run("import", filepath.Join(s.T().TempDir(), "missing.json"))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.False(s.closed)
}
