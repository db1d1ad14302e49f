package domain

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	// Login verifies credentials and opens a session. The returned session
	// ID goes into the auth cookie.
	Login(ctx context.Context, username, password string) (*User, *Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a session ID to its user. Expired sessions are
	// deleted on sight and reported as ErrUnauthenticated.
	Authenticate(ctx context.Context, sessionID string) (*User, error)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}
