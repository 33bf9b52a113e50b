package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var useCmd = &cobra.Command{
	Use:   "use <ability-id>",
	Short: "Use a ready active ability and end the turn",
	Long: `Use an active ability. The ability restarts its cooldown and every other
active ability recharges by one turn.`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

var passCmd = &cobra.Command{
	Use:   "pass",
	Short: "End the turn without using an ability",
	Args:  cobra.NoArgs,
	RunE:  runPass,
}

var resetCmd = &cobra.Command{
	Use:   "reset <ability-id>",
	Short: "Make an ability on cooldown ready again",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func runUse(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.ExecuteAbility(ctx, &roster.ExecuteAbilityInput{CharacterID: c.ID, AbilityID: args[0]})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s used %s\n", out.Character.Name, out.Ability.Title)
		printActiveAbilities(w, out.Character.ActiveAbilities)
		return nil
	})
}

func runPass(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.PassTurn(ctx, &roster.PassTurnInput{CharacterID: c.ID})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s passed the turn\n", out.Character.Name)
		printActiveAbilities(w, out.Character.ActiveAbilities)
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.ResetCooldown(ctx, &roster.ResetCooldownInput{CharacterID: c.ID, AbilityID: args[0]})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is ready\n", out.Ability.Title)
		return nil
	})
}
