package domain

import "time"

// Note represents a free-form markdown note. Tags preserve insertion order
// for display. Color is an optional swatch and may be empty.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"is_pinned"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a note with the field defaults used by the create form.
func NewNote(title string) Note {
	return Note{
		Title:    title,
		Category: "general",
	}
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag unless it is already present, keeping insertion order.
func (n Note) AddTag(tag string) Note {
	if tag == "" || n.HasTag(tag) {
		return n
	}
	n.Tags = append(append([]string{}, n.Tags...), tag)
	return n
}
