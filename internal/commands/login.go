package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"gtodo/internal/exitcode"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in" }
func (c *LoginCmd) Usage() string     { return "gtodo login [common flags] --email <email> --password <pw>" }
func (c *LoginCmd) NeedsStore() bool  { return true }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	// Check if already logged in
	if _, ok := env.Session.User(); ok {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	form := validation.LoginForm{Email: c.email, Password: c.password}
	if err := validation.Validate(form); err != nil {
		return report(errOut, err)
	}

	user, err := env.Service.Login(ctx, form.Email, form.Password)
	if err != nil {
		// Unknown email and wrong password are both sign-in failures
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrConflict) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.AuthError
		}
		return report(errOut, err)
	}

	if err := env.Session.SetUser(user); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	env.Logger.Debug("signed in", zap.String("user_id", user.ID))

	return printOK(env, out)
}
