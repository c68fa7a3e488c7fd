package domain

import "time"

// Message is a direct message between two users. From and To hold the
// usernames as they were at send time.
type Message struct {
	ID        string
	From      string
	To        string
	Text      string
	CreatedAt time.Time
}
