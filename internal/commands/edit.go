package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/filter"
	"gtodo/internal/service"
	"gtodo/internal/validation"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
// The task form is validated with the flags laid over the current values;
// only the supplied flags are written.
type EditCmd struct {
	title       optionalString
	description optionalString
	priority    optionalString
	due         optionalString
	status      optionalString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "gtodo edit [--title <t>] [--description <d>] [--priority <p>] [--due <date>] [--status done|notDone] <id>"
}
func (c *EditCmd) NeedsStore() bool { return true }
func (c *EditCmd) NeedsAuth() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.status, "status", "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, code := taskIDArg(args, errOut)
	if code != exitcode.Success {
		return code
	}

	patch := service.TaskPatch{
		Title:       c.title.ptr(),
		Description: c.description.ptr(),
		DueDate:     c.due.ptr(),
	}
	if p := c.priority.ptr(); p != nil {
		priority := service.Priority(*p)
		patch.Priority = &priority
	}
	if s := c.status.ptr(); s != nil {
		switch *s {
		case filter.StatusDone, filter.StatusNotDone:
			done := *s == filter.StatusDone
			patch.Status = &done
		default:
			fmt.Fprintf(errOut, "error: invalid status: %s (want %s or %s)\n", *s, filter.StatusDone, filter.StatusNotDone)
			return exitcode.UserError
		}
	}

	if patch.Empty() {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	current, err := env.Service.FetchTask(ctx, id)
	if err != nil {
		return report(errOut, err)
	}

	edited := current.Merge(patch)
	form := validation.TaskForm{
		Title:       edited.Title,
		Description: edited.Description,
		Priority:    c.priority.or(string(edited.EffectivePriority())),
		DueDate:     edited.DueDate,
	}
	if err := validation.Validate(form); err != nil {
		return report(errOut, err)
	}

	if err := env.Service.EditTask(ctx, id, patch); err != nil {
		return report(errOut, err)
	}

	return printOK(env, out)
}
