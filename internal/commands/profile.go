package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/output"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

func init() {
	Register(&ProfileCmd{})
}

// ProfileCmd implements the profile command.
// Without flags it prints the signed-in user; with flags it updates them.
type ProfileCmd struct {
	firstName optionalString
	lastName  optionalString
	email     optionalString
	password  optionalString
}

func (c *ProfileCmd) Name() string      { return "profile" }
func (c *ProfileCmd) Aliases() []string { return nil }
func (c *ProfileCmd) Synopsis() string  { return "Show or change your profile" }
func (c *ProfileCmd) Usage() string {
	return "gtodo profile [--first <name>] [--last <name>] [--email <email>] [--password <pw>]"
}
func (c *ProfileCmd) NeedsStore() bool { return true }
func (c *ProfileCmd) NeedsAuth() bool  { return true }

func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = ProfileCmd{}
	fs.Var(&c.firstName, "first", "")
	fs.Var(&c.lastName, "last", "")
	fs.Var(&c.email, "email", "")
	fs.Var(&c.password, "password", "")
}

func (c *ProfileCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	user, ok := currentUser(env, errOut)
	if !ok {
		return exitcode.AuthError
	}

	if !c.firstName.set && !c.lastName.set && !c.email.set && !c.password.set {
		output.FormatUser(out, user)
		return exitcode.Success
	}

	patch := service.UserPatch{
		FirstName: c.firstName.ptr(),
		LastName:  c.lastName.ptr(),
		Email:     c.email.ptr(),
		Password:  c.password.ptr(),
	}

	// Validate the whole form as it would be submitted. The session copy has
	// no password, so only a supplied one is checked.
	merged := user.Merge(patch)
	form := validation.ChangeProfileForm{
		FirstName: merged.FirstName,
		LastName:  merged.LastName,
		Email:     merged.Email,
		Password:  merged.Password,
	}
	if err := validation.Validate(form); err != nil {
		return report(errOut, err)
	}

	updated, err := env.Service.UpdateUserProfile(ctx, user.ID, patch)
	if err != nil {
		return report(errOut, err)
	}

	if err := env.Session.SetUser(updated); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Config.Quiet {
		output.FormatUser(out, updated)
	}
	return exitcode.Success
}
