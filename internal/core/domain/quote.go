package domain

import "time"

// QuoteBoardLimit caps how many quotes the public board returns.
const QuoteBoardLimit = 50

// Quote is a public post on the quote board. OwnerUsername is copied from the
// author when the quote is created.
type Quote struct {
	ID            string
	OwnerID       string
	OwnerUsername string
	Text          string
	CreatedAt     time.Time
}
