package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var exportOut string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a character from an export file",
	Long: `Import a character from a .charsheet.json export file, or from a bare
character object. Use - to read from standard input. The character is added
with a free ID and selected.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a character with its images embedded",
	Long: `Export the selected character, or the one given with --character, to
<name>.charsheet.json. Use --out to choose a directory or file, or - for stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory, file, or - for stdout")
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "failed to read import file")
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		out, err := svc.Import(ctx, &roster.ImportInput{Data: data})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s)\n", out.Character.Name, out.Character.ID)
		return nil
	})
}

func runExport(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.Export(ctx, &roster.ExportInput{CharacterID: c.ID})
		if err != nil {
			return err
		}

		if exportOut == "-" {
			_, err := cmd.OutOrStdout().Write(append(out.Data, '\n'))
			return err
		}

		path := exportOut
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, out.Filename)
		}
		if err := os.WriteFile(path, out.Data, 0o600); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write export file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", c.Name, path)
		for _, ref := range out.Envelope.Unresolved {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: image %s could not be embedded\n", ref)
		}
		return nil
	})
}
