package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the stored roster in both stores",
	Long: `Report what the primary and durable stores hold: whether the roster decodes,
how many entries it has, and how many a load would drop.

With --fix, the roster a normal load would recover is rewritten to both stores
in canonical form. Nothing is written when neither store holds a usable roster.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Rewrite both stores from the recovered roster")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(requestTimeoutS)*time.Second)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg.Log, cmd.ErrOrStderr())

	var closers []func() error
	defer func() { closeAll(closers) }()

	primary, err := openPrimary(ctx, cfg.Primary, &closers)
	if err != nil {
		return err
	}
	durable, err := openDurable(ctx, cfg.Durable)
	if err != nil {
		return err
	}
	closers = append(closers, durable.Close)

	reports := []*rosterrepo.TierReport{
		rosterrepo.InspectStore(ctx, primary, "primary"),
		rosterrepo.InspectStore(ctx, durable, "durable"),
	}
	w := cmd.OutOrStdout()
	printTierReports(w, reports)

	if err := unrecoverable(reports); err != nil {
		return err
	}
	if !doctorFix {
		return nil
	}
	if !reports[0].Status.Usable() && !reports[1].Status.Usable() {
		fmt.Fprintln(w, "Nothing to repair: neither store holds a usable roster")
		return nil
	}
	return repairRoster(ctx, w, primary, durable)
}

// unrecoverable returns a DataLoss error when no tier is usable and at least one
// holds a damaged roster
func unrecoverable(reports []*rosterrepo.TierReport) error {
	var damaged []string
	for _, r := range reports {
		if r.Status.Usable() {
			return nil
		}
		if errors.IsDataLoss(r.Err) {
			damaged = append(damaged, r.Tier)
		}
	}
	if len(damaged) == 0 {
		return nil
	}
	return errors.DataLossf("no store holds a usable roster; damaged: %s", strings.Join(damaged, ", "))
}

// repairRoster loads the roster the usual way and writes it back to both tiers
func repairRoster(ctx context.Context, w io.Writer, primary, durable rosterrepo.Store) error {
	repo, err := rosterrepo.NewTiered(&rosterrepo.TieredConfig{
		Primary: primary,
		Durable: durable,
		Seed:    func() []*entities.Character { return nil },
	})
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	loaded, err := repo.LoadRoster(ctx, &rosterrepo.LoadRosterInput{})
	if err != nil {
		return err
	}
	saved, err := repo.SaveRoster(ctx, &rosterrepo.SaveRosterInput{Characters: loaded.Characters})
	if err != nil {
		return err
	}
	if err := repo.Flush(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "durable store did not finish the repair")
	}

	fmt.Fprintf(w, "Rewrote %d character(s) from the %s store\n", len(loaded.Characters), loaded.Source)
	if !saved.PrimaryWritten {
		fmt.Fprintln(w, "warning: the primary store rejected the roster; only the durable store was repaired")
	}
	return nil
}

func printTierReports(w io.Writer, reports []*rosterrepo.TierReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STORE\tSTATUS\tBYTES\tENTRIES\tCHARACTERS\tDROPPED\tSELECTED\tSEEDED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%t\n",
			r.Tier, r.Status, r.Bytes, r.Records, r.Characters, r.Dropped(), dash(r.SelectedID), r.Seeded)
	}
	_ = tw.Flush()

	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", r.Tier, r.Err)
		}
	}
}
