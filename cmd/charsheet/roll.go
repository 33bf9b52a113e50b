package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var rollApplyModifiers bool

var rollCmd = &cobra.Command{
	Use:   "roll <stat>",
	Short: "Roll a stat",
	Long: `Roll a stat. Dice expressions such as 2d6 or 1d20+3 are rolled; flat values
are reported as they are.

  charsheet roll damage
  charsheet roll attack --modifiers`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().BoolVarP(&rollApplyModifiers, "modifiers", "m", false, "Add passive stat modifiers to the result")
}

func runRoll(cmd *cobra.Command, args []string) error {
	stat := entities.StatKey(migrate.StatKey(args[0]))

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.RollStat(ctx, &roster.RollStatInput{
			CharacterID:    c.ID,
			Stat:           stat,
			ApplyModifiers: rollApplyModifiers,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s rolls %s: %s\n", c.Name, stat.Label(), out.Result.Description())
		if out.Modifier != 0 {
			fmt.Fprintf(w, "With passive modifiers (%s): %d\n", signed(out.Modifier), out.Total)
		}
		return nil
	})
}
