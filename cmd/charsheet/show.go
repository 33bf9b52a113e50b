package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a character sheet",
	Long:  `Show the full sheet of the selected character, or of the one given with --character.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		modifiers, err := svc.PassiveModifiers(ctx, &roster.PassiveModifiersInput{CharacterID: c.ID})
		if err != nil {
			return err
		}

		printSheet(cmd.OutOrStdout(), c, modifiers)
		return nil
	})
}
