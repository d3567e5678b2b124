package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	notestore "github.com/franciscovln/note-storage-app"
)

var (
	verbose  bool
	storeDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "A local-only personal note store with cross-process sync",
	Long: `notes keeps a small collection of text notes in a single JSON file.
Every mutation rewrites the file atomically, and concurrently running
processes sharing the file converge through filesystem notifications.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		// Optional .env next to the working directory; absence is fine.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&storeDir, "dir", "d", "", "Store directory (defaults to $NOTES_HOME, then ~/.notes)")
}

// resolveDir picks the store directory: --dir flag, then NOTES_HOME, then
// ~/.notes as a stable per-user default.
func resolveDir() (string, error) {
	if storeDir != "" {
		return storeDir, nil
	}
	if env := os.Getenv("NOTES_HOME"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".notes"), nil
}

// openStore wires a store for a single command invocation.
func openStore(ctx context.Context) (*notestore.Store, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}
	return notestore.New(ctx, dir, notestore.WithLogger(slog.Default()))
}

// lastNotification drains the most recent pending user-facing message, if any.
func lastNotification(store *notestore.Store) (notestore.Notification, bool) {
	var (
		n  notestore.Notification
		ok bool
	)
	for {
		select {
		case msg := <-store.Notifications():
			n, ok = msg, true
		default:
			return n, ok
		}
	}
}
