// File: services/admin/interface.go
package admin

import "context"

// AdminService handles back-office account auth.
type AdminService interface {
	// Signup registers a new admin account and returns a session token.
	Signup(ctx context.Context, email, password string) (string, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout revokes the session backing the given token.
	Logout(ctx context.Context, token string) error
}
