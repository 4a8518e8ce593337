package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/adaeze/cv-studio/internal/types"
)

// CVRecord is one stored CV document with its server-side metadata.
type CVRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Document  types.CV  `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CVSummary is the listing row for a CV: enough to render an index without
// loading documents.
type CVSummary struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	TemplateID types.TemplateID `json:"template_id"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Version is one named snapshot of a CV document.
type Version struct {
	ID        uuid.UUID `json:"id"`
	CVID      uuid.UUID `json:"cv_id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
