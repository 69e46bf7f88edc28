package model

import (
	"time"
)

// AdminSession is the decoded admin session for one request. Its presence in
// the request context is what authorizes access to the dashboard API.
type AdminSession struct {
	Email    string
	IssuedAt time.Time
}
