// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid form, not found, conflict).
	UserError = 1

	// AuthError indicates a sign-in or session error.
	AuthError = 2

	// BackendError indicates a store/network error.
	BackendError = 3
)
