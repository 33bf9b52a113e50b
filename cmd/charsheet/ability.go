package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/migrate"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

const (
	abilityActive  = "active"
	abilityPassive = "passive"
)

// abilityFlags holds the ability editor fields shared by add and edit
type abilityFlags struct {
	kind        string
	title       string
	description string
	features    []string
	image       string
	cooldown    int
	duration    int
	modifiers   map[string]string
}

var (
	abilityAddFlags  abilityFlags
	abilityEditFlags abilityFlags
)

var abilityCmd = &cobra.Command{
	Use:   "ability",
	Short: "Manage active and passive abilities",
}

var abilityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List abilities with their cooldown state",
	Args:  cobra.NoArgs,
	RunE:  runAbilityList,
}

var abilityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an ability",
	Long: `Add an active or passive ability. New active abilities start ready.

  charsheet ability add --title Fireball --cooldown 3 --feature "Burns the area"
  charsheet ability add --type passive --title "Tough skin" --modifier defense=2`,
	Args: cobra.NoArgs,
	RunE: runAbilityAdd,
}

var abilityEditCmd = &cobra.Command{
	Use:   "edit <ability-id>",
	Short: "Edit an ability",
	Long:  `Edit an ability. Only the flags given are changed; the cooldown progress is kept within the cooldown.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAbilityEdit,
}

var abilityDeleteCmd = &cobra.Command{
	Use:   "delete <ability-id>",
	Short: "Delete an ability; the basic attack cannot be deleted",
	Args:  cobra.ExactArgs(1),
	RunE:  runAbilityDelete,
}

func init() {
	bindAbilityFlags(abilityAddCmd.Flags(), &abilityAddFlags)
	abilityAddCmd.Flags().StringVar(&abilityAddFlags.kind, "type", abilityActive, "Ability type: active or passive")
	_ = abilityAddCmd.MarkFlagRequired("title") // nolint:errcheck // safe to ignore in init

	bindAbilityFlags(abilityEditCmd.Flags(), &abilityEditFlags)

	abilityCmd.AddCommand(abilityListCmd)
	abilityCmd.AddCommand(abilityAddCmd)
	abilityCmd.AddCommand(abilityEditCmd)
	abilityCmd.AddCommand(abilityDeleteCmd)
}

func bindAbilityFlags(flags *pflag.FlagSet, f *abilityFlags) {
	flags.StringVar(&f.title, "title", "", "Ability title")
	flags.StringVar(&f.description, "description", "", "Description")
	flags.StringArrayVar(&f.features, "feature", nil, "Feature line; repeatable")
	flags.StringVar(&f.image, "image", "", "Image: data URL, http(s) URL or file path (active only)")
	flags.IntVar(&f.cooldown, "cooldown", 0, "Cooldown in turns")
	flags.IntVar(&f.duration, "duration", 0, "Effect duration in turns")
	flags.StringToStringVar(&f.modifiers, "modifier", nil, "Stat modifier as stat=value; repeatable (passive only)")
}

// modifiersFromFlags turns stat=value pairs into modifiers in stat order
func modifiersFromFlags(values map[string]string) ([]entities.Modifier, error) {
	byStat := make(map[entities.StatKey]int, len(values))
	for name, raw := range values {
		key := entities.StatKey(migrate.StatKey(name))
		if !entities.IsStatKey(string(key)) {
			return nil, errors.InvalidArgumentf("unknown stat %q", name)
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.InvalidArgumentf("modifier %s=%s is not a whole number", name, raw)
		}
		byStat[key] += value
	}

	modifiers := make([]entities.Modifier, 0, len(byStat))
	for _, key := range entities.StatKeys() {
		if value, ok := byStat[key]; ok {
			modifiers = append(modifiers, entities.Modifier{Stat: key, Value: value})
		}
	}
	return modifiers, nil
}

func runAbilityList(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(_ context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Active abilities:")
		printActiveAbilities(w, c.ActiveAbilities)
		fmt.Fprintln(w, "Passive abilities:")
		for _, p := range c.PassiveAbilities {
			fmt.Fprintf(w, "  %s (%s)%s\n", p.Title, p.ID, modifierList(p.Modifiers))
		}
		return nil
	})
}

func runAbilityAdd(cmd *cobra.Command, _ []string) error {
	f := abilityAddFlags
	if f.kind != abilityActive && f.kind != abilityPassive {
		return errors.InvalidArgumentf("unknown ability type %q, expected active or passive", f.kind)
	}
	modifiers, err := modifiersFromFlags(f.modifiers)
	if err != nil {
		return err
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		if f.kind == abilityPassive {
			out, err := svc.SavePassiveAbility(ctx, &roster.SavePassiveAbilityInput{
				CharacterID:    c.ID,
				Title:          f.title,
				Description:    f.description,
				Features:       f.features,
				Modifiers:      modifiers,
				Cooldown:       f.cooldown,
				EffectDuration: f.duration,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added passive ability %s (%s)\n", out.Ability.Title, out.Ability.ID)
			return nil
		}

		out, err := svc.SaveActiveAbility(ctx, &roster.SaveActiveAbilityInput{
			CharacterID:    c.ID,
			Title:          f.title,
			Description:    f.description,
			Features:       f.features,
			Image:          f.image,
			Cooldown:       f.cooldown,
			EffectDuration: f.duration,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added active ability %s (%s)\n", out.Ability.Title, out.Ability.ID)
		return nil
	})
}

func runAbilityEdit(cmd *cobra.Command, args []string) error {
	f := abilityEditFlags
	changed := cmd.Flags().Changed
	abilityID := args[0]

	var modifiers []entities.Modifier
	if changed("modifier") {
		var err error
		if modifiers, err = modifiersFromFlags(f.modifiers); err != nil {
			return err
		}
	}

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		if i := c.FindActiveAbility(abilityID); i >= 0 {
			a := c.ActiveAbilities[i]
			input := &roster.SaveActiveAbilityInput{
				CharacterID:    c.ID,
				AbilityID:      a.ID,
				Title:          pick(changed("title"), f.title, a.Title),
				Description:    pick(changed("description"), f.description, a.Description),
				Features:       pick(changed("feature"), f.features, a.Features),
				Image:          pick(changed("image"), f.image, a.Image),
				Cooldown:       pick(changed("cooldown"), f.cooldown, a.Cooldown),
				EffectDuration: pick(changed("duration"), f.duration, a.EffectDuration),
			}
			out, err := svc.SaveActiveAbility(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", out.Ability.Title, cooldownText(*out.Ability))
			return nil
		}

		if i := c.FindPassiveAbility(abilityID); i >= 0 {
			p := c.PassiveAbilities[i]
			input := &roster.SavePassiveAbilityInput{
				CharacterID:    c.ID,
				AbilityID:      p.ID,
				Title:          pick(changed("title"), f.title, p.Title),
				Description:    pick(changed("description"), f.description, p.Description),
				Features:       pick(changed("feature"), f.features, p.Features),
				Modifiers:      pick(changed("modifier"), modifiers, p.Modifiers),
				Cooldown:       pick(changed("cooldown"), f.cooldown, p.Cooldown),
				EffectDuration: pick(changed("duration"), f.duration, p.EffectDuration),
			}
			out, err := svc.SavePassiveAbility(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s%s\n", out.Ability.Title, modifierList(out.Ability.Modifiers))
			return nil
		}

		return errors.NotFoundf("ability %q not found on %s", abilityID, c.Name)
	})
}

func runAbilityDelete(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		input := &roster.DeleteEntryInput{CharacterID: c.ID, EntryID: args[0]}
		if c.FindPassiveAbility(args[0]) >= 0 {
			_, err = svc.DeletePassiveAbility(ctx, input)
		} else {
			_, err = svc.DeleteActiveAbility(ctx, input)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted ability %s\n", args[0])
		return nil
	})
}

// pick returns value when the flag was given, otherwise current
func pick[T any](given bool, value, current T) T {
	if given {
		return value
	}
	return current
}
