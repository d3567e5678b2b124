package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	notestore "github.com/franciscovln/note-storage-app"
)

var (
	editTitle   string
	editContent string
)

// editInput enforces the input-boundary limits the editing surface owns:
// the title cap lives here, while the content cap is re-validated by the
// store itself.
type editInput struct {
	Title   string `validate:"max=100"`
	Content string `validate:"max=5000"`
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title and/or content",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
			fmt.Println("Error: --title or --content is required")
			cmd.Usage()
			os.Exit(1)
		}

		input := editInput{Title: editTitle, Content: editContent}
		if err := validator.New().Struct(input); err != nil {
			fatal("Invalid input", err)
		}

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		id := store.SelectedID()
		if len(args) == 1 {
			id = args[0]
		}

		var fields notestore.UpdateFields
		if cmd.Flags().Changed("title") {
			fields.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			fields.Content = &editContent
		}

		if err := store.Update(ctx, id, fields); err != nil {
			fatal("Failed to update note", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title (max 100 characters)")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content (max 5000 characters)")
}
