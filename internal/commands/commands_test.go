package commands_test

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"gtodo/internal/commands"
	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/service"
	"gtodo/internal/session"
	"gtodo/internal/testutil"
)

var ada = service.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com"}

// newEnv builds a command environment over a FakeStore. If user is non-nil
// the session starts signed in as user.
func newEnv(t *testing.T, user *service.User, quiet bool) (*commands.Env, *testutil.FakeStore) {
	t.Helper()

	dir := t.TempDir()
	sess, err := session.Open(session.NewFileStorage(dir), nil)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	if user != nil {
		if err := sess.SetUser(*user); err != nil {
			t.Fatalf("failed to set user: %v", err)
		}
	}

	store := testutil.NewFakeStore()
	return &commands.Env{
		Config:  &config.Config{Dir: dir, Quiet: quiet},
		Service: service.New(store, nil),
		Session: sess,
		Logger:  zap.NewNop(),
	}, store
}

// runCommand parses args with the command's flags and runs it.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, args []string) (stdout, stderr string, code int) {
	t.Helper()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags %q: %v", args, err)
	}

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), env, fs.Args(), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func expect(t *testing.T, stdout, stderr string, code int, wantOut, wantErr string, wantCode int) {
	t.Helper()
	if code != wantCode {
		t.Errorf("expected exit code %d, got %d", wantCode, code)
	}
	if stdout != wantOut {
		t.Errorf("expected stdout %q, got %q", wantOut, stdout)
	}
	if stderr != wantErr {
		t.Errorf("expected stderr %q, got %q", wantErr, stderr)
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	env, _ := newEnv(t, nil, false)
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, env, nil)
	expect(t, stdout, stderr, code, "gtodo 0.1.0\n", "", exitcode.Success)
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	env, _ := newEnv(t, nil, false)
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

// Tests for register command
func TestRegisterCommand_Success(t *testing.T) {
	env, store := newEnv(t, nil, false)
	args := []string{"--first", "Ada", "--last", "Lovelace", "--email", "a@x.com",
		"--password", "abc", "--confirm", "abc", "--accept-terms"}

	stdout, stderr, code := runCommand(t, &commands.RegisterCmd{}, env, args)
	expect(t, stdout, stderr, code, "ok\nrun: gtodo login\n", "", exitcode.Success)

	if n := store.Count(service.UsersCollection); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
	if _, ok := env.Session.User(); ok {
		t.Error("register should not sign in")
	}
}

func TestRegisterCommand_Validation(t *testing.T) {
	env, store := newEnv(t, nil, false)
	args := []string{"--first", "Al", "--email", "nope", "--password", "abc", "--confirm", "abd", "--accept-terms"}

	stdout, stderr, code := runCommand(t, &commands.RegisterCmd{}, env, args)
	expect(t, stdout, stderr, code, "",
		"error: firstName: firstName must be at least 3 characters\n"+
			"error: email: Valid email is required\n"+
			"error: confirmPassword: Passwords must match\n",
		exitcode.UserError)

	if store.Calls() != 0 {
		t.Errorf("expected no store calls, got %d", store.Calls())
	}
}

func TestRegisterCommand_SingleRuleSkipsStore(t *testing.T) {
	valid := map[string]string{"first": "Ada", "email": "a@x.com", "password": "abc", "confirm": "abc"}

	tests := []struct {
		name    string
		flag    string
		value   string
		wantErr string
	}{
		{"first name missing", "first", "", "error: firstName: This field is required\n"},
		{"first name too short", "first", "Al", "error: firstName: firstName must be at least 3 characters\n"},
		{"email missing", "email", "", "error: email: This field is required\n"},
		{"email invalid", "email", "nope", "error: email: Valid email is required\n"},
		{"password missing", "password", "", "error: password: This field is required\n"},
		{"password too short", "password", "ab", "error: password: password must be at least 3 characters\n"},
		{"confirm missing", "confirm", "", "error: confirmPassword: You must confirm your password\n"},
		{"confirm mismatched", "confirm", "abd", "error: confirmPassword: Passwords must match\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, store := newEnv(t, nil, false)

			var args []string
			for _, name := range []string{"first", "email", "password", "confirm"} {
				v := valid[name]
				if name == tt.flag {
					v = tt.value
				}
				// Keep the confirmation equal so only the rule under test fails.
				if name == "confirm" && tt.flag == "password" {
					v = tt.value
				}
				args = append(args, "--"+name, v)
			}
			args = append(args, "--accept-terms")

			_, stderr, code := runCommand(t, &commands.RegisterCmd{}, env, args)
			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("expected stderr to contain %q, got %q", tt.wantErr, stderr)
			}
			if store.Calls() != 0 {
				t.Errorf("expected no store calls, got %d", store.Calls())
			}
		})
	}
}

func TestRegisterCommand_TermsRequired(t *testing.T) {
	env, store := newEnv(t, nil, false)
	args := []string{"--first", "Ada", "--email", "a@x.com", "--password", "abc", "--confirm", "abc"}

	stdout, stderr, code := runCommand(t, &commands.RegisterCmd{}, env, args)
	expect(t, stdout, stderr, code, "",
		"error: you must accept the terms and conditions (--accept-terms)\n", exitcode.UserError)

	if store.InsertCalls != 0 {
		t.Errorf("expected no insert, got %d", store.InsertCalls)
	}
}

func TestRegisterCommand_BackendError(t *testing.T) {
	env, store := newEnv(t, nil, false)
	store.InsertErr = errors.New("unavailable")
	args := []string{"--first", "Ada", "--email", "a@x.com", "--password", "abc", "--confirm", "abc", "--accept-terms"}

	stdout, stderr, code := runCommand(t, &commands.RegisterCmd{}, env, args)
	expect(t, stdout, stderr, code, "",
		"error: backend error: Failed to create user due to network or server issues.\n", exitcode.BackendError)
}

// Tests for profile command
func TestProfileCommand_Show(t *testing.T) {
	env, store := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ProfileCmd{}, env, nil)
	expect(t, stdout, stderr, code, "name:  Ada Lovelace\nemail: a@x.com\nid:    u1\n", "", exitcode.Success)

	if store.Calls() != 0 {
		t.Errorf("expected no store calls, got %d", store.Calls())
	}
}

func TestProfileCommand_Update(t *testing.T) {
	env, store := newEnv(t, &ada, true)
	store.AddUser("u1", "Ada", "Lovelace", "a@x.com", "secret")

	stdout, stderr, code := runCommand(t, &commands.ProfileCmd{}, env, []string{"--first", "Augusta"})
	expect(t, stdout, stderr, code, "", "", exitcode.Success)

	u, ok := env.Session.User()
	if !ok || u.FirstName != "Augusta" || u.LastName != "Lovelace" {
		t.Errorf("session not updated: %+v", u)
	}
	doc, _ := store.Doc(service.UsersCollection, "u1")
	if doc["password"] != "secret" {
		t.Errorf("password should be unchanged, got %v", doc["password"])
	}
}

func TestProfileCommand_FlagsResetBetweenRuns(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.AddUser("u1", "Ada", "Lovelace", "a@x.com", "secret")
	cmd := &commands.ProfileCmd{}

	_, stderr, code := runCommand(t, cmd, env, []string{"--first", "Augusta"})
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (%s)", code, stderr)
	}

	stdout, stderr, code := runCommand(t, cmd, env, nil)
	expect(t, stdout, stderr, code, "name:  Augusta Lovelace\nemail: a@x.com\nid:    u1\n", "", exitcode.Success)
	if store.UpdateCalls != 1 {
		t.Errorf("expected 1 update, got %d", store.UpdateCalls)
	}
}

func TestProfileCommand_ValidatesMergedForm(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.AddUser("u1", "Ada", "Lovelace", "a@x.com", "secret")

	stdout, stderr, code := runCommand(t, &commands.ProfileCmd{}, env, []string{"--password", "n3w", "--first", "Al"})
	expect(t, stdout, stderr, code, "", "error: firstName: firstName must be at least 3 characters\n", exitcode.UserError)

	if store.UpdateCalls != 0 {
		t.Errorf("expected no update, got %d", store.UpdateCalls)
	}
}

func TestProfileCommand_Invalid(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.AddUser("u1", "Ada", "Lovelace", "a@x.com", "secret")

	stdout, stderr, code := runCommand(t, &commands.ProfileCmd{}, env, []string{"--email", "bad"})
	expect(t, stdout, stderr, code, "", "error: email: Valid email is required\n", exitcode.UserError)

	if store.UpdateCalls != 0 {
		t.Errorf("expected no update, got %d", store.UpdateCalls)
	}
}

func TestProfileCommand_NotLoggedIn(t *testing.T) {
	env, _ := newEnv(t, nil, false)

	stdout, stderr, code := runCommand(t, &commands.ProfileCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "error: not logged in (run: gtodo login)\n", exitcode.AuthError)
}

// Tests for list command
func seedTasks(store *testutil.FakeStore) {
	store.AddTask("t1", "u1", "Wash car", false, "low", "2024-01-05")
	store.AddTask("t2", "u1", "Car wash plan", true, "high", "2024-01-01")
	store.AddTask("t3", "u2", "Someone else's car", false, "", "2024-01-02")
}

func TestListCommand_Default(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)
	expect(t, stdout, stderr, code,
		"[x] high    2024-01-01  Car wash plan  (t2)\n"+
			"[ ] low     2024-01-05  Wash car  (t1)\n",
		"", exitcode.Success)
}

func TestListCommand_Filters(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, []string{"--status", "notDone", "--search", "car"})
	expect(t, stdout, stderr, code,
		"?searchTerm=car&statusFilter=notDone\n"+
			"------------\n"+
			"[ ] low     2024-01-05  Wash car  (t1)\n",
		"", exitcode.Success)
}

func TestListCommand_ResetFilterFromQuery(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	args := []string{"--query", "statusFilter=done&sortOrder=desc", "--status", ""}
	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, args)
	expect(t, stdout, stderr, code,
		"?sortOrder=desc\n"+
			"------------\n"+
			"[ ] low     2024-01-05  Wash car  (t1)\n"+
			"[x] high    2024-01-01  Car wash plan  (t2)\n",
		"", exitcode.Success)
}

func TestListCommand_InvalidPriority(t *testing.T) {
	env, store := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, []string{"--priority", "urgent"})
	expect(t, stdout, stderr, code, "", "error: invalid priority: urgent (want high, medium or low)\n", exitcode.UserError)

	if store.Calls() != 0 {
		t.Errorf("expected no store calls, got %d", store.Calls())
	}
}

func TestListCommand_FlagsResetBetweenRuns(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)
	cmd := &commands.ListCmd{}

	stdout, stderr, code := runCommand(t, cmd, env, []string{"--status", "done"})
	expect(t, stdout, stderr, code,
		"?statusFilter=done\n"+
			"------------\n"+
			"[x] high    2024-01-01  Car wash plan  (t2)\n",
		"", exitcode.Success)

	stdout, stderr, code = runCommand(t, cmd, env, nil)
	expect(t, stdout, stderr, code,
		"[x] high    2024-01-01  Car wash plan  (t2)\n"+
			"[ ] low     2024-01-05  Wash car  (t1)\n",
		"", exitcode.Success)
}

func TestListCommand_Empty(t *testing.T) {
	env, _ := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)
	expect(t, stdout, stderr, code, "no tasks found\n", "", exitcode.Success)
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	env, _ := newEnv(t, &ada, true)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "", exitcode.Success)
}

func TestListCommand_BackendError(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.FindErr = errors.New("boom")

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "error: backend error: Unable to fetch tasks: boom\n", exitcode.BackendError)
}

func TestListCommand_NotLoggedIn(t *testing.T) {
	env, store := newEnv(t, nil, false)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "error: not logged in (run: gtodo login)\n", exitcode.AuthError)

	if store.Calls() != 0 {
		t.Errorf("expected no store calls, got %d", store.Calls())
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	env, store := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{"--due", "2024-02-01", "Buy", "groceries"})
	expect(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	tasks, err := env.Service.FetchTasks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Buy groceries" || got.Status || got.Priority != service.PriorityLow || got.DueDate != "2024-02-01" {
		t.Errorf("unexpected task: %+v", got)
	}
	if store.InsertCalls != 1 {
		t.Errorf("expected 1 insert, got %d", store.InsertCalls)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	env, _ := newEnv(t, &ada, true)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{"--title", "Buy milk", "--due", "2024-02-01"})
	expect(t, stdout, stderr, code, "", "", exitcode.Success)
}

func TestAddCommand_Validation(t *testing.T) {
	env, store := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{"--priority", "urgent", "ab"})
	expect(t, stdout, stderr, code, "",
		"error: title: Minimum text length is 3 characters\n"+
			"error: priority: Invalid priority selected\n"+
			"error: dueDate: This field is required\n",
		exitcode.UserError)

	if store.Calls() != 0 {
		t.Errorf("expected no store calls, got %d", store.Calls())
	}
}

func TestAddCommand_DuplicateTitle(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.AddTask("t1", "u2", "Buy milk", false, "", "")

	stdout, stderr, code := runCommand(t, &commands.CreateCmd{}, env, []string{"--due", "2024-02-01", "Buy milk"})
	expect(t, stdout, stderr, code, "", "error: A task with the same title already exists.\n", exitcode.UserError)

	if store.InsertCalls != 0 {
		t.Errorf("expected no insert, got %d", store.InsertCalls)
	}
}

// Tests for show command
func TestShowCommand(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.ShowCmd{}, env, []string{"t1"})
	expect(t, stdout, stderr, code,
		"id:          t1\n"+
			"title:       Wash car\n"+
			"status:      notDone\n"+
			"priority:    low\n"+
			"due:         2024-01-05\n",
		"", exitcode.Success)
}

func TestShowCommand_NotFound(t *testing.T) {
	env, _ := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ShowCmd{}, env, []string{"nope"})
	expect(t, stdout, stderr, code, "", "error: Task not found\n", exitcode.UserError)
}

func TestShowCommand_NoID(t *testing.T) {
	env, _ := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ShowCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "error: task id required\n", exitcode.UserError)
}

// Tests for edit command
func TestEditCommand_OnlySuppliedFields(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"--priority", "high", "--status", "done", "t1"})
	expect(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	doc, _ := store.Doc(service.TodosCollection, "t1")
	if doc["priority"] != "high" || doc["status"] != true || doc["title"] != "Wash car" || doc["dueDate"] != "2024-01-05" {
		t.Errorf("unexpected document: %v", doc)
	}
}

func TestEditCommand_FlagsResetBetweenRuns(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)
	cmd := &commands.EditCmd{}

	stdout, stderr, code := runCommand(t, cmd, env, []string{"--status", "done", "t1"})
	expect(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	stdout, stderr, code = runCommand(t, cmd, env, []string{"t2"})
	expect(t, stdout, stderr, code, "", "error: nothing to change\n", exitcode.UserError)
}

func TestEditCommand_Validation(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"--title", "ab", "t1"})
	expect(t, stdout, stderr, code, "", "error: title: Minimum text length is 3 characters\n", exitcode.UserError)

	if store.UpdateCalls != 0 {
		t.Errorf("expected no update, got %d", store.UpdateCalls)
	}
}

func TestEditCommand_NothingToChange(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"t1"})
	expect(t, stdout, stderr, code, "", "error: nothing to change\n", exitcode.UserError)
}

func TestEditCommand_InvalidStatus(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"--status", "maybe", "t1"})
	expect(t, stdout, stderr, code, "", "error: invalid status: maybe (want done or notDone)\n", exitcode.UserError)
}

func TestEditCommand_NotFound(t *testing.T) {
	env, _ := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"--title", "Read a book", "ghost"})
	expect(t, stdout, stderr, code, "", "error: Task not found\n", exitcode.UserError)
}

// Tests for toggle command
func TestToggleCommand(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.ToggleCmd{}, env, []string{"t1"})
	expect(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	task, err := env.Service.FetchTask(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !task.Status {
		t.Error("expected task to be done")
	}
}

func TestToggleCommand_NotFound(t *testing.T) {
	env, store := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.ToggleCmd{}, env, []string{"ghost"})
	expect(t, stdout, stderr, code, "", "error: Task not found for status toggle\n", exitcode.UserError)

	if store.UpdateCalls != 0 {
		t.Errorf("expected no update, got %d", store.UpdateCalls)
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, []string{"--yes", "t1"})
	expect(t, stdout, stderr, code, "ok\n", "", exitcode.Success)

	if _, ok := store.Doc(service.TodosCollection, "t1"); ok {
		t.Error("expected task to be deleted")
	}
}

func TestRmCommand_BackendError(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	store.DeleteErr = errors.New("unavailable")

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, []string{"--yes", "t1"})
	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: backend error: ") {
		t.Errorf("expected backend error, got %q", stderr)
	}
}

func TestRmCommand_NoID(t *testing.T) {
	env, _ := newEnv(t, &ada, false)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, nil)
	expect(t, stdout, stderr, code, "", "error: task id required\n", exitcode.UserError)
}

func TestRmCommand_ConfirmYes(t *testing.T) {
	env, store := newEnv(t, &ada, false)
	seedTasks(store)
	env.Stdin = strings.NewReader("y\n")

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, []string{"t1"})
	expect(t, stdout, stderr, code, "Are you sure you want to delete this task? [y/N] ok\n", "", exitcode.Success)

	if _, ok := store.Doc(service.TodosCollection, "t1"); ok {
		t.Error("expected task to be deleted")
	}
}

func TestRmCommand_ConfirmDeclined(t *testing.T) {
	tests := []struct {
		name  string
		stdin io.Reader
		want  string
	}{
		{"answered no", strings.NewReader("n\n"), "Are you sure you want to delete this task? [y/N] cancelled\n"},
		{"empty answer", strings.NewReader("\n"), "Are you sure you want to delete this task? [y/N] cancelled\n"},
		{"end of input", strings.NewReader(""), "Are you sure you want to delete this task? [y/N] \ncancelled\n"},
		{"no stdin", nil, "Are you sure you want to delete this task? [y/N] \ncancelled\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, store := newEnv(t, &ada, false)
			seedTasks(store)
			env.Stdin = tt.stdin

			stdout, stderr, code := runCommand(t, &commands.RmCmd{}, env, []string{"t1"})
			expect(t, stdout, stderr, code, tt.want, "", exitcode.Success)

			if store.DeleteCalls != 0 {
				t.Errorf("expected no delete, got %d", store.DeleteCalls)
			}
		})
	}
}
