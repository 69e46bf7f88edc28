package model

import (
	"time"
)

// Service is one service listing shown on the expertise section of the site.
type Service struct {
	ID              string    `db:"id" json:"id"`
	Icon            string    `db:"icon" json:"icon"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	LongDescription string    `db:"long_description" json:"long_description"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	// Computed for public responses (not in database)
	LongDescriptionHTML string `db:"-" json:"long_description_html,omitempty"`
}
