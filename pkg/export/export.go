// Package export renders notes into downloadable files. It is a read-only
// consumer of the store: it never mutates notes.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/franciscovln/note-storage-app/pkg/core"
)

// Format identifies an export encoding.
type Format string

const (
	// FormatText is the classic download payload: title, blank line, content.
	FormatText Format = "txt"
	// FormatMarkdown renders the note with a YAML frontmatter block
	// carrying its metadata.
	FormatMarkdown Format = "md"
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename derives a download file name from a note title: non-alphanumeric
// runs become underscores and the result is lowercased.
func Filename(title string, format Format) string {
	name := strings.ToLower(filenameSanitizer.ReplaceAllString(title, "_"))
	return name + "." + string(format)
}

// Encode renders the note in the given format.
func Encode(n core.Note, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return Text(n), nil
	case FormatMarkdown:
		return Markdown(n)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// Text renders the plain-text payload: title, blank line, content.
func Text(n core.Note) []byte {
	return []byte(n.Title + "\n\n" + n.Content)
}

// Markdown renders the note as Markdown with YAML frontmatter.
func Markdown(n core.Note) ([]byte, error) {
	meta := map[string]any{
		"id":        n.ID,
		"title":     n.Title,
		"createdAt": n.CreatedAt.Format(time.RFC3339),
		"updatedAt": n.UpdatedAt.Format(time.RFC3339),
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(meta); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(n.Content)

	return buf.Bytes(), nil
}

// WordCount counts whitespace-separated words in a text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts runes, matching the store's content limit semantics.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}
