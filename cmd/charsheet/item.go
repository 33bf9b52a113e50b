package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
)

var (
	itemTitle       string
	itemDescription string
	itemImage       string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the inventory",
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory items",
	Args:  cobra.NoArgs,
	RunE:  runItemList,
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an inventory item",
	Args:  cobra.NoArgs,
	RunE:  runItemAdd,
}

var itemEditCmd = &cobra.Command{
	Use:   "edit <item-id>",
	Short: "Edit an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemEdit,
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{itemAddCmd, itemEditCmd} {
		cmd.Flags().StringVar(&itemTitle, "title", "", "Item title")
		cmd.Flags().StringVar(&itemDescription, "description", "", "Description")
		cmd.Flags().StringVar(&itemImage, "image", "", "Image: data URL, http(s) URL or file path")
	}
	_ = itemAddCmd.MarkFlagRequired("title") // nolint:errcheck // safe to ignore in init

	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemEditCmd)
	itemCmd.AddCommand(itemDeleteCmd)
}

func runItemList(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(_ context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(c.Inventory) == 0 {
			fmt.Fprintf(w, "%s carries nothing\n", c.Name)
			return nil
		}
		for _, item := range c.Inventory {
			fmt.Fprintf(w, "%s (%s)\n", item.Title, item.ID)
			if item.Description != "" {
				fmt.Fprintf(w, "  %s\n", item.Description)
			}
		}
		return nil
	})
}

func runItemAdd(cmd *cobra.Command, _ []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		out, err := svc.SaveInventoryItem(ctx, &roster.SaveInventoryItemInput{
			CharacterID: c.ID,
			Title:       itemTitle,
			Description: itemDescription,
			Image:       itemImage,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", out.Item.Title, out.Item.ID)
		return nil
	})
}

func runItemEdit(cmd *cobra.Command, args []string) error {
	changed := cmd.Flags().Changed

	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}
		i := c.FindInventoryItem(args[0])
		if i < 0 {
			return errors.NotFoundf("item %q not found on %s", args[0], c.Name)
		}
		item := c.Inventory[i]

		out, err := svc.SaveInventoryItem(ctx, &roster.SaveInventoryItemInput{
			CharacterID: c.ID,
			ItemID:      item.ID,
			Title:       pick(changed("title"), itemTitle, item.Title),
			Description: pick(changed("description"), itemDescription, item.Description),
			Image:       pick(changed("image"), itemImage, item.Image),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", out.Item.Title, out.Item.ID)
		return nil
	})
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, func(ctx context.Context, svc roster.Service) error {
		c, err := targetCharacter(svc)
		if err != nil {
			return err
		}

		if _, err := svc.DeleteInventoryItem(ctx, &roster.DeleteEntryInput{CharacterID: c.ID, EntryID: args[0]}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", args[0])
		return nil
	})
}
