package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var (
	healthDamage int
	healthHeal   int
)

var healthCmd = &cobra.Command{
	Use:   "health [value]",
	Short: "Show or change current health",
	Long: `Without arguments, print the current health. Give a value to set it, or use
--damage and --heal to move it. Health never drops below zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().IntVar(&healthDamage, "damage", 0, "Subtract damage from current health")
	healthCmd.Flags().IntVar(&healthHeal, "heal", 0, "Add healing to current health")
}

func runHealth(cmd *cobra.Command, args []string) error {
	input := &roster.SetCurrentHealthInput{Delta: healthHeal - healthDamage}
	if len(args) > 0 {
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.InvalidArgumentf("health %q is not a whole number", args[0])
		}
		input.Health = &value
	}
	change := input.Health != nil || input.Delta != 0

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		if change {
			input.CharacterID = c.ID
			out, err := svc.SetCurrentHealth(ctx, input)
			if err != nil {
				return err
			}
			c = out.Character
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Name, healthText(c))
		return nil
	})
}
