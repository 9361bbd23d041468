package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"gtodo/internal/exitcode"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// taskFlags are the task form flags shared by add and create.
type taskFlags struct {
	title       string
	description string
	priority    string
	due         string
}

func (f *taskFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "")
	fs.StringVar(&f.description, "description", "", "")
	fs.StringVar(&f.description, "d", "", "")
	fs.StringVar(&f.priority, "priority", string(service.PriorityLow), "")
	fs.StringVar(&f.priority, "p", string(service.PriorityLow), "")
	fs.StringVar(&f.due, "due", "", "")
}

// AddCmd implements the add command.
type AddCmd struct {
	flags taskFlags
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "gtodo add [--description <text>] [--priority high|medium|low] --due <date> <title...>"
}
func (c *AddCmd) NeedsStore() bool { return true }
func (c *AddCmd) NeedsAuth() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) { c.flags.register(fs) }

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, env, c.flags, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct {
	flags taskFlags
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create a task (alias for add)" }
func (c *CreateCmd) Usage() string {
	return "gtodo create [--description <text>] [--priority high|medium|low] --due <date> <title...>"
}
func (c *CreateCmd) NeedsStore() bool { return true }
func (c *CreateCmd) NeedsAuth() bool  { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) { c.flags.register(fs) }

func (c *CreateCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, env, c.flags, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
// The title comes from --title or, failing that, the joined arguments.
func runAdd(ctx context.Context, env *Env, f taskFlags, args []string, out, errOut io.Writer) int {
	user, ok := currentUser(env, errOut)
	if !ok {
		return exitcode.AuthError
	}

	title := f.title
	if title == "" {
		title = strings.TrimSpace(strings.Join(args, " "))
	}

	form := validation.TaskForm{
		Title:       title,
		Description: f.description,
		Priority:    f.priority,
		DueDate:     f.due,
	}
	if err := validation.Validate(form); err != nil {
		return report(errOut, err)
	}

	err := env.Service.AddTask(ctx, service.NewTask{
		UserID:      user.ID,
		Title:       form.Title,
		Description: form.Description,
		Priority:    service.Priority(form.Priority),
		DueDate:     form.DueDate,
	})
	if err != nil {
		return report(errOut, err)
	}

	return printOK(env, out)
}
