package commands

import (
	"errors"
	"fmt"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/output"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

// report prints err and returns the matching exit code.
func report(errOut io.Writer, err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		output.FormatFieldErrors(errOut, verrs)
		return exitcode.UserError
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrConflict):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// currentUser returns the signed-in user. The dispatcher only runs commands
// that need auth when a user is present.
func currentUser(env *Env, errOut io.Writer) (service.User, bool) {
	u, ok := env.Session.User()
	if !ok {
		fmt.Fprintln(errOut, "error: not logged in (run: gtodo login)")
	}
	return u, ok
}

func printOK(env *Env, out io.Writer) int {
	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
