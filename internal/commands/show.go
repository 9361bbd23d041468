package commands

import (
	"context"
	"flag"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Show a task" }
func (c *ShowCmd) Usage() string     { return "gtodo show <id>" }
func (c *ShowCmd) NeedsStore() bool  { return true }
func (c *ShowCmd) NeedsAuth() bool   { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, code := taskIDArg(args, errOut)
	if code != exitcode.Success {
		return code
	}

	task, err := env.Service.FetchTask(ctx, id)
	if err != nil {
		return report(errOut, err)
	}

	output.FormatTaskDetail(out, task)
	return exitcode.Success
}
