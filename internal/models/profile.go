package models

// UserProfile describes the actor behind a session role. The prototype runs
// with one fixed profile per role; nothing is persisted per user.
type UserProfile struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   Role    `json:"role"`
	Rating float64 `json:"rating"`
}
