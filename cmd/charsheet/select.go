package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var selectCmd = &cobra.Command{
	Use:   "select <character-id>",
	Short: "Select the character other commands act on",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		out, err := svc.SelectCharacter(ctx, &roster.SelectCharacterInput{CharacterID: args[0]})
		if err != nil {
			return err
		}

		if out.Character == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No character selected")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", out.Character.Name, out.Character.ID)
		return nil
	})
}
