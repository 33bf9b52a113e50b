package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

// characterFlags holds the character editor fields shared by create and edit
type characterFlags struct {
	name     string
	portrait string
	ancestry string
	clazz    string
	level    int
	group    string
	campaign string
	stats    map[string]string
	health   int
}

var (
	createFlags characterFlags
	editFlags   characterFlags
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character",
	Long: `Create a character and select it. Stats are given as key=value pairs:

  charsheet create --name "Boomer" --class Pyromancer --stat life=30 --stat damage=1d6`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var editCmd = &cobra.Command{
	Use:   "edit <character-id>",
	Short: "Edit a character's profile and stats",
	Long:  `Edit a character. Only the flags given are changed; abilities, inventory and notes are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	bindCharacterFlags(createCmd.Flags(), &createFlags)
	_ = createCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	bindCharacterFlags(editCmd.Flags(), &editFlags)
}

func bindCharacterFlags(flags *pflag.FlagSet, f *characterFlags) {
	flags.StringVar(&f.name, "name", "", "Character name")
	flags.StringVar(&f.portrait, "portrait", "", "Portrait image: data URL, http(s) URL or file path")
	flags.StringVar(&f.ancestry, "ancestry", "", "Ancestry")
	flags.StringVar(&f.clazz, "class", "", "Class")
	flags.IntVar(&f.level, "level", 0, "Level (default 1)")
	flags.StringVar(&f.group, "group", "", "Group or party")
	flags.StringVar(&f.campaign, "campaign", "", "Campaign")
	flags.StringToStringVar(&f.stats, "stat", nil, "Stat as key=value; repeatable (life, attack, defense, damage, movement, range)")
	flags.IntVar(&f.health, "health", 0, "Current health (default is the life stat)")
}

// statsFromFlags maps stat names, including legacy names, onto stat keys
func statsFromFlags(values map[string]string) entities.Stats {
	if len(values) == 0 {
		return nil
	}
	stats := make(entities.Stats, len(values))
	for name, value := range values {
		stats[entities.StatKey(migrate.StatKey(name))] = value
	}
	return stats
}

func runCreate(cmd *cobra.Command, _ []string) error {
	f := createFlags
	input := &roster.SaveCharacterInput{
		Name:     f.name,
		Portrait: f.portrait,
		Ancestry: f.ancestry,
		Clazz:    f.clazz,
		Level:    f.level,
		Group:    f.group,
		Campaign: f.campaign,
		Stats:    statsFromFlags(f.stats),
	}
	if cmd.Flags().Changed("health") {
		input.CurrentHealth = &f.health
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		out, err := svc.SaveCharacter(ctx, input)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", out.Character.Name, out.Character.ID)
		return nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	f := editFlags
	changed := cmd.Flags().Changed

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		current := svc.GetCharacterByID(args[0])
		input := &roster.SaveCharacterInput{CharacterID: args[0]}
		if current != nil {
			input.Name = current.Name
			input.Ancestry = current.Ancestry
			input.Clazz = current.Clazz
			input.Group = current.Group
			input.Campaign = current.Campaign
		}

		if changed("name") {
			input.Name = f.name
		}
		if changed("portrait") {
			input.Portrait = f.portrait
		}
		if changed("ancestry") {
			input.Ancestry = f.ancestry
		}
		if changed("class") {
			input.Clazz = f.clazz
		}
		if changed("level") {
			input.Level = f.level
		}
		if changed("group") {
			input.Group = f.group
		}
		if changed("campaign") {
			input.Campaign = f.campaign
		}
		if changed("stat") {
			input.Stats = statsFromFlags(f.stats)
		}
		if changed("health") {
			input.CurrentHealth = &f.health
		}

		out, err := svc.SaveCharacter(ctx, input)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", out.Character.Name, out.Character.ID)
		return nil
	})
}
