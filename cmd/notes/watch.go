package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	notestore "github.com/franciscovln/note-storage-app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the store and report changes made by other processes",
	Long: `Watch keeps a store open and prints the collection every time another
process rewrites the store file, along with the repaired selection. It is
the easiest way to observe cross-process reconciliation: run 'notes watch'
in one terminal and mutate notes from another.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		if err := store.StartReconciler(ctx); err != nil {
			fatal("Failed to start reconciler", err)
		}

		fmt.Printf("Watching %d notes (selected: %s). Ctrl-C to stop.\n", store.Len(), orNone(store.SelectedID()))

		// The reconciler replaces state in the background; re-render
		// whenever the rendered snapshot changes.
		last := render(store)
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nStopped.")
				return
			case msg := <-store.Notifications():
				fmt.Printf("[%s] %s\n", msg.Level, msg.Message)
			case <-ticker.C:
				if current := render(store); current != last {
					last = current
					fmt.Print(current)
				}
			}
		}
	},
}

func render(store *notestore.Store) string {
	var b strings.Builder
	notes := store.Notes()
	fmt.Fprintf(&b, "-- %d notes (selected: %s)\n", len(notes), orNone(store.SelectedID()))
	for _, note := range notes {
		fmt.Fprintf(&b, "   %s  %s\n", note.ID, note.Title)
	}
	return b.String()
}

func orNone(id string) string {
	if id == "" {
		return "none"
	}
	return id
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
