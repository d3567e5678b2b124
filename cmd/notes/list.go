package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	notestore "github.com/franciscovln/note-storage-app"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		notes := store.Notes()
		if notes == nil {
			notes = []notestore.Note{}
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println("No notes yet. Create your first note with 'notes new'.")
			return
		}

		selected := store.SelectedID()
		for _, note := range notes {
			marker := " "
			if note.ID == selected {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  (updated %s)\n", marker, note.ID, note.Title, note.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
