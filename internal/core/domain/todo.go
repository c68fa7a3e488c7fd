package domain

// Todo is an item on a user's personal list.
type Todo struct {
	ID      string
	OwnerID string
	Text    string
	Done    bool
}
