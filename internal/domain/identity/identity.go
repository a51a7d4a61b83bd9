package identity

import "strings"

// Actor is the authenticated caller of a core operation. Authentication
// happens upstream; the core only compares this against stored party ids
// and emails, so identity is always passed in explicitly and never read
// from ambient state.
type Actor struct {
	ID    string
	Email string
}

// New normalizes the email so comparisons against borrower_email are
// case-insensitive.
func New(id, email string) Actor {
	return Actor{ID: id, Email: strings.ToLower(strings.TrimSpace(email))}
}

func (a Actor) Anonymous() bool { return a.ID == "" }
