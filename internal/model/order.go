package model

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
// Status order (pending → in-progress → completed) is not enforced here;
// the dashboard disables backward transitions but the write path accepts them.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone,omitempty"`
	ProjectTitle string     `db:"project_title" json:"project_title"`
	Description  string     `db:"description" json:"description"`
	Budget       string     `db:"budget" json:"budget,omitempty"`
	Timeline     string     `db:"timeline" json:"timeline,omitempty"`
	Status       string     `db:"status" json:"status"`
	FileURLs     StringList `db:"file_urls" json:"file_urls"`
	SubmittedAt  time.Time  `db:"submitted_at" json:"submitted_at"`
}
