package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the characters in the roster",
	Long:  `List every character. The selected character is marked with an asterisk.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(_ context.Context, svc roster.Service) error {
		selectedID := ""
		if selected := svc.GetSelectedCharacter(); selected != nil {
			selectedID = selected.ID
		}
		printRoster(cmd.OutOrStdout(), svc.Characters(), selectedID)
		return nil
	})
}
