package dto

// UserOutput is the public representation of a user. The password hash is
// never serialized.
type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionOutput struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId"`
}
