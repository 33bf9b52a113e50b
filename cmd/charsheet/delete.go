package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Delete a character",
	Long: `Delete a character from the roster. Deleting the selected character selects
the first remaining one. Pass --yes to confirm.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Confirm the deletion")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !deleteYes {
		return errors.FailedPreconditionf("refusing to delete %s without --yes", args[0])
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		out, err := svc.DeleteCharacter(ctx, &roster.DeleteCharacterInput{CharacterID: args[0]})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Deleted %s\n", out.Deleted.Name)
		if out.SelectedID == "" {
			fmt.Fprintln(w, "No character selected")
		} else {
			fmt.Fprintf(w, "Selected %s\n", out.SelectedID)
		}
		return nil
	})
}
