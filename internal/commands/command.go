// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"gtodo/internal/config"
	"gtodo/internal/service"
	"gtodo/internal/session"
)

// Env is what a command runs against.
type Env struct {
	// Config is always provided (config dir, backend settings).
	Config *config.Config

	// Service is nil unless NeedsStore returns true.
	Service service.Service

	// Session holds the signed-in user. Always provided.
	Session *session.Session

	// Logger is never nil.
	Logger *zap.Logger

	// Stdin answers confirmation prompts. Nil reads as no answer.
	Stdin io.Reader
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command talks to the document store.
	NeedsStore() bool

	// NeedsAuth returns true if the command requires a signed-in user.
	// Commands like help, version, register, login, logout return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
