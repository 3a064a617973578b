package domain

import "time"

// Email is one generated email persisted for a user's history.
type Email struct {
	ID        string
	UserID    string
	Type      string
	Tone      string
	Prompt    string
	Content   string
	CreatedAt time.Time
}

// ListFilter narrows a history listing. Zero values mean "no filter";
// Limit <= 0 means unbounded.
type ListFilter struct {
	Type  string
	Tone  string
	Limit int
}
