package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note permanently",
	Long:  `Delete permanently removes a note. There is no trash: once confirmed, the note is gone.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		id := args[0]

		if !deleteYes && !confirm("Are you sure you want to delete this note?") {
			fmt.Println("Aborted.")
			return
		}

		store, err := openStore(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}

		if err := store.Delete(ctx, id); err != nil {
			fatal("Failed to delete note", err)
		}

		if msg, ok := lastNotification(store); ok {
			fmt.Println(msg.Message)
		}
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
