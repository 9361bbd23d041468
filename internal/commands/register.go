package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	firstName   string
	lastName    string
	email       string
	password    string
	confirm     string
	acceptTerms bool
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "gtodo register --first <name> [--last <name>] --email <email> --password <pw> --confirm <pw> --accept-terms"
}
func (c *RegisterCmd) NeedsStore() bool { return true }
func (c *RegisterCmd) NeedsAuth() bool  { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.firstName, "first", "", "")
	fs.StringVar(&c.lastName, "last", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.confirm, "confirm", "", "")
	fs.BoolVar(&c.acceptTerms, "accept-terms", false, "")
}

func (c *RegisterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	form := validation.CreateAccountForm{
		FirstName:       c.firstName,
		LastName:        c.lastName,
		Email:           c.email,
		Password:        c.password,
		ConfirmPassword: c.confirm,
	}
	if err := validation.Validate(form); err != nil {
		return report(errOut, err)
	}

	if !c.acceptTerms {
		fmt.Fprintln(errOut, "error: you must accept the terms and conditions (--accept-terms)")
		return exitcode.UserError
	}

	err := env.Service.CreateUser(ctx, service.NewUser{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		return report(errOut, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
		fmt.Fprintln(out, "run: gtodo login")
	}
	return exitcode.Success
}
