package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-charsheet/internal/cooldown"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

// targetCharacter returns the character named by --character, or the selected one
func targetCharacter(svc roster.Service) (*entities.Character, error) {
	if characterID != "" {
		c := svc.GetCharacterByID(characterID)
		if c == nil {
			return nil, errors.NotFoundf("character %q not found", characterID)
		}
		return c, nil
	}

	c := svc.GetSelectedCharacter()
	if c == nil {
		return nil, errors.FailedPrecondition("no character selected, run 'charsheet select <id>' or pass --character")
	}
	return c, nil
}

func printRoster(w io.Writer, characters []*entities.Character, selectedID string) {
	if len(characters) == 0 {
		fmt.Fprintln(w, "No characters yet. Create one with 'charsheet create --name <name>'.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tLEVEL\tCLASS\tHEALTH")
	for _, c := range characters {
		marker := ""
		if c.ID == selectedID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			marker, c.ID, c.Name, c.Level, dash(c.Clazz), healthText(c))
	}
	_ = tw.Flush()
}

func printSheet(w io.Writer, c *entities.Character, modifiers *roster.PassiveModifiersOutput) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(w, "Level %d %s %s\n", c.Level, dash(c.Ancestry), dash(c.Clazz))
	if c.Group != "" || c.Campaign != "" {
		fmt.Fprintf(w, "Group: %s  Campaign: %s\n", dash(c.Group), dash(c.Campaign))
	}
	fmt.Fprintf(w, "Health: %s\n\n", healthText(c))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAT\tVALUE\tMODIFIER")
	for _, key := range entities.StatKeys() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", key.Label(), dash(c.Stats[key]), modifierText(modifiers, key))
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nActive abilities:")
	printActiveAbilities(w, c.ActiveAbilities)

	fmt.Fprintln(w, "\nPassive abilities:")
	if len(c.PassiveAbilities) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, p := range c.PassiveAbilities {
		fmt.Fprintf(w, "  %s (%s)%s\n", p.Title, p.ID, modifierList(p.Modifiers))
	}

	fmt.Fprintln(w, "\nInventory:")
	if len(c.Inventory) == 0 {
		fmt.Fprintln(w, "  empty")
	}
	for _, item := range c.Inventory {
		fmt.Fprintf(w, "  %s (%s)\n", item.Title, item.ID)
	}

	if c.Notes != "" {
		fmt.Fprintf(w, "\nNotes:\n%s\n", c.Notes)
	}
}

func printActiveAbilities(w io.Writer, abilities []entities.ActiveAbility) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, a := range abilities {
		basic := ""
		if a.IsBasic {
			basic = " [basic]"
		}
		fmt.Fprintf(tw, "  %s%s\t%s\t%s\n", a.Title, basic, a.ID, cooldownText(a))
	}
	_ = tw.Flush()
}

func cooldownText(a entities.ActiveAbility) string {
	if a.Cooldown == 0 {
		return "ready"
	}
	if cooldown.StateOf(a) == cooldown.StateReady {
		return fmt.Sprintf("ready (%d/%d)", a.CooldownProgress, a.Cooldown)
	}
	return fmt.Sprintf("%d turn(s) left (%d/%d)", cooldown.Remaining(a), a.CooldownProgress, a.Cooldown)
}

func healthText(c *entities.Character) string {
	if life := c.Stats[entities.StatLife]; life != "" {
		return fmt.Sprintf("%d/%s", c.CurrentHealth, life)
	}
	return fmt.Sprintf("%d", c.CurrentHealth)
}

func modifierText(modifiers *roster.PassiveModifiersOutput, key entities.StatKey) string {
	if modifiers == nil || modifiers.Totals[key] == 0 {
		return ""
	}
	return signed(modifiers.Totals[key])
}

func modifierList(modifiers []entities.Modifier) string {
	if len(modifiers) == 0 {
		return ""
	}
	parts := make([]string, len(modifiers))
	for i, m := range modifiers {
		parts[i] = fmt.Sprintf("%s %s", m.Stat.Label(), signed(m.Value))
	}
	return ": " + strings.Join(parts, ", ")
}

func signed(v int) string {
	return fmt.Sprintf("%+d", v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// reportError prints err for the user and returns the exit status for it.
// Codes caused by the user show only their message; the rest show the whole chain.
func reportError(w io.Writer, err error) int {
	code := errors.GetCode(err)
	if code.UserFacing() {
		fmt.Fprintf(w, "Error: %s\n", errors.GetMessage(err))
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return code.ExitCode()
}
