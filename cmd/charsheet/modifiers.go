package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "Show the stat modifiers granted by passive abilities",
	Args:  cobra.NoArgs,
	RunE:  runModifiers,
}

func runModifiers(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.PassiveModifiers(ctx, &roster.PassiveModifiersInput{CharacterID: c.ID})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		found := false
		for _, key := range entities.StatKeys() {
			details := out.Details[key]
			if len(details) == 0 {
				continue
			}
			found = true
			fmt.Fprintf(w, "%s %s\n", key.Label(), signed(out.Totals[key]))
			for _, d := range details {
				fmt.Fprintf(w, "  %s %s\n", signed(d.Value), d.AbilityTitle)
			}
		}
		if !found {
			fmt.Fprintf(w, "%s has no passive modifiers\n", c.Name)
		}
		return nil
	})
}
