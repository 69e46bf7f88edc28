package model

import (
	"time"
)

type Project struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description"`
	Technologies StringList `db:"technologies" json:"technologies"`
	ImageURLs    StringList `db:"image_urls" json:"image_urls"`
	DemoURL      string     `db:"demo_url" json:"demo_url,omitempty"`
	Category     string     `db:"category" json:"category"`
	Pinned       bool       `db:"pinned" json:"pinned"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`

	// Computed for public responses (not in database)
	DescriptionHTML string `db:"-" json:"description_html,omitempty"`
}
