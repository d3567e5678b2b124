package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/franciscovln/note-storage-app/pkg/export"
)

var (
	exportFormat string
	exportOut    string
	exportYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a note to a file",
	Long: `Export writes a read-only copy of a note to disk, either as plain text
(title, blank line, content) or as Markdown with YAML frontmatter. The file
name is derived from the note title. Without an id, the selected note is
exported.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		format := export.Format(exportFormat)
		if format != export.FormatText && format != export.FormatMarkdown {
			fatal("Unsupported format", fmt.Errorf("%q (want txt or md)", exportFormat))
		}

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

		if !exportYes && !confirm("Do you want to download this note?") {
			fmt.Println("Aborted.")
			return
		}

		data, err := export.Encode(note, format)
		if err != nil {
			fatal("Failed to encode note", err)
		}

		target := filepath.Join(exportOut, export.Filename(note.Title, format))
		if err := os.WriteFile(target, data, 0644); err != nil {
			fatal("Failed to write export file", err)
		}

		fmt.Printf("Exported note to %s\n", target)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "txt", "Export format: txt or md")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	exportCmd.Flags().BoolVarP(&exportYes, "yes", "y", false, "Skip the confirmation prompt")
}
