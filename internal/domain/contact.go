package domain

import "time"

// ContactCategory groups contacts for tab filtering.
type ContactCategory string

const (
	ContactClient    ContactCategory = "client"
	ContactColleague ContactCategory = "colleague"
	ContactVendor    ContactCategory = "vendor"
	ContactPartner   ContactCategory = "partner"
	ContactPersonal  ContactCategory = "personal"
	ContactOther     ContactCategory = "other"
)

// ContactCategories lists all categories in form display order.
var ContactCategories = []ContactCategory{
	ContactClient,
	ContactColleague,
	ContactVendor,
	ContactPartner,
	ContactPersonal,
	ContactOther,
}

// IsValid reports whether c is a known contact category.
func (c ContactCategory) IsValid() bool {
	switch c {
	case ContactClient, ContactColleague, ContactVendor, ContactPartner, ContactPersonal, ContactOther:
		return true
	}
	return false
}

// Contact represents a person or business relationship.
type Contact struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Company        string          `json:"company"`
	Position       string          `json:"position"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	SecondaryPhone string          `json:"secondary_phone"`
	Address        string          `json:"address"`
	Category       ContactCategory `json:"category"`
	Notes          string          `json:"notes"`
	IsFavorite     bool            `json:"is_favorite"`
	AvatarURL      string          `json:"avatar_url"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewContact creates a contact with the field defaults used by the create form.
func NewContact(name string) Contact {
	return Contact{
		Name:     name,
		Category: ContactOther,
	}
}

// String returns the contact name for display purposes.
func (c Contact) String() string {
	return c.Name
}
