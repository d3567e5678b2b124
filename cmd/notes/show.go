package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/franciscovln/note-storage-app/pkg/export"
)

var showMetaOnly bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note's content and metadata",
	Long: `Show prints a note's metadata (created, updated, word and character
counts) followed by its content. Without an id, the selected note is shown.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		id := store.SelectedID()
		if len(args) == 1 {
			id = args[0]
		}

		note, ok := store.Note(id)
		if !ok {
			fatal("Note not found", fmt.Errorf("id %q", id))
		}

		fmt.Printf("Title:      %s\n", note.Title)
		fmt.Printf("ID:         %s\n", note.ID)
		fmt.Printf("Created:    %s\n", note.CreatedAt.Format(time.RFC1123))
		fmt.Printf("Updated:    %s\n", note.UpdatedAt.Format(time.RFC1123))
		fmt.Printf("Words:      %d\n", export.WordCount(note.Content))
		fmt.Printf("Characters: %d\n", export.CharacterCount(note.Content))

		if showMetaOnly {
			return
		}

		fmt.Println()
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMetaOnly, "meta", false, "Print metadata only")
}
