package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/exitcode"
	"gtodo/internal/filter"
	"gtodo/internal/output"
	"gtodo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `gtodo` (no args) and `gtodo list [--query <q>] [filters]`.
// The filter flags update the state parsed from --query, and the resulting
// query is printed so it can be passed back in.
type ListCmd struct {
	query    string
	sort     optionalString
	status   optionalString
	priority optionalString
	due      optionalString
	search   optionalString
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "gtodo list [--query <q>] [--sort asc|desc] [--status done|notDone] [--priority <p>] [--due <date>] [--search <text>]"
}
func (c *ListCmd) NeedsStore() bool { return true }
func (c *ListCmd) NeedsAuth() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = ListCmd{}
	fs.StringVar(&c.query, "query", "", "")
	fs.StringVar(&c.query, "q", "", "")
	fs.Var(&c.sort, "sort", "")
	fs.Var(&c.status, "status", "")
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.search, "search", "")
}

// State returns the filter state selected by the flags.
func (c *ListCmd) State() filter.State {
	return filter.Parse(c.query).Update(filter.Update{
		SortOrder:      c.sort.ptr(),
		StatusFilter:   c.status.ptr(),
		PriorityFilter: c.priority.ptr(),
		DueDateFilter:  c.due.ptr(),
		SearchTerm:     c.search.ptr(),
	})
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	user, ok := currentUser(env, errOut)
	if !ok {
		return exitcode.AuthError
	}

	if p := c.priority.value; c.priority.set && p != "" && !service.Priority(p).Valid() {
		fmt.Fprintf(errOut, "error: invalid priority: %s (want high, medium or low)\n", p)
		return exitcode.UserError
	}

	state := c.State()

	tasks, err := env.Service.FetchTasks(ctx, user.ID)
	if err != nil {
		return report(errOut, err)
	}
	shown := filter.Apply(tasks, state)

	if q := state.Encode(); q != "" {
		output.FormatQuery(out, q)
	}

	if len(shown) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, task := range shown {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
