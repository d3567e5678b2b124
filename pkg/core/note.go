package core

import "time"

// Business limits enforced by the store. Title length is an input-boundary
// concern (the editing surface caps it); content length is re-validated here
// because the store cannot trust its callers.
const (
	// MaxNotes caps the collection size. Creation beyond the cap is
	// rejected, never silently dropped or evicted.
	MaxNotes = 10

	// MaxContentLength is the hard cap on note content, measured in runes.
	MaxContentLength = 5000

	// MaxTitleLength is the title cap applied by editing surfaces.
	MaxTitleLength = 100

	// CreateCooldown is the minimum interval between successful creations.
	CreateCooldown = 2000 * time.Millisecond

	// DefaultTitle is the title assigned to freshly created notes.
	DefaultTitle = "New Note"
)

// Note is the central entity of the domain: a single user-authored text
// record. The JSON field names are the persisted wire layout; timestamps
// round-trip as RFC 3339 strings.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
