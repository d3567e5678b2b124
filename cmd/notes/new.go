package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new note",
	Long:  `Create a new note titled "New Note" and make it the selected note.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		id, err := store.Create(ctx)
		if err != nil {
			if msg, ok := lastNotification(store); ok {
				fmt.Fprintln(os.Stderr, msg.Message)
				os.Exit(1)
			}
			fatal("Failed to create note", err)
		}

		fmt.Printf("Created note %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
