package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var notesFile string

var notesCmd = &cobra.Command{
	Use:   "notes [text]",
	Short: "Show or replace a character's notes",
	Long: `Without arguments, print the notes. With text, or with --file, replace them.
Use --file - to read the notes from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().StringVarP(&notesFile, "file", "f", "", "Read the notes from a file, or - for stdin")
}

func runNotes(cmd *cobra.Command, args []string) error {
	var (
		notes   string
		replace bool
	)
	switch {
	case notesFile != "" && len(args) > 0:
		return errors.InvalidArgument("pass either text or --file, not both")
	case notesFile != "":
		data, err := readNotes(cmd, notesFile)
		if err != nil {
			return err
		}
		notes, replace = string(data), true
	case len(args) > 0:
		notes, replace = args[0], true
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		if !replace {
			fmt.Fprint(cmd.OutOrStdout(), c.Notes)
			if c.Notes != "" {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		}

		if _, err := svc.SaveNotes(ctx, &roster.SaveNotesInput{CharacterID: c.ID, Notes: notes}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved notes for %s\n", c.Name)
		return nil
	})
}

func readNotes(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "failed to read notes from stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read notes file")
	}
	return data, nil
}
