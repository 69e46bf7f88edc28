package model

import (
	"time"
)

type Download struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	FileSize    string    `db:"file_size" json:"file_size"`
	FileType    string    `db:"file_type" json:"file_type"`
	FileURL     string    `db:"file_url" json:"file_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
