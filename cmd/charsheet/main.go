// Package main is the entry point for the charsheet CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath      string
	characterID     string
	primaryBackend  string
	redisAddr       string
	sqlitePath      string
	logLevel        string
	requestTimeoutS int
)

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "Offline character sheet manager",
	Long: `charsheet keeps a roster of tabletop characters: stats, active abilities with
turn-based cooldowns, passive stat modifiers, inventory and notes.

Every change is written to a fast primary store and mirrored to a durable
SQLite database, so the roster survives when the primary store is wiped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	flags.StringVarP(&characterID, "character", "c", "", "Character ID (default is the selected character)")
	flags.StringVar(&primaryBackend, "primary", "", "Primary store backend: memory or redis")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for the redis backend")
	flags.StringVar(&sqlitePath, "db", "", "Durable SQLite database path")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.IntVar(&requestTimeoutS, "timeout", 30, "Timeout in seconds for a single command")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(abilityCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(passCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(modifiersCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(doctorCmd)
}
