// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"gtodo/internal/service"
	"gtodo/internal/validation"
)

const (
	// ListSeparator is the separator line between the query and the tasks.
	ListSeparator = "------------"

	// noDate stands in for a missing due date.
	noDate = "-"
)

// FormatTask formats a task line for the list command.
// Format: "[x] {PRIORITY:<6}  {DUE:<10}  {TITLE}  ({ID})\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%s %-6s  %-10s  %s  (%s)\n",
		statusMark(task.Status),
		task.EffectivePriority(),
		dueDate(task.DueDate),
		normalizeTitle(task.Title),
		task.ID,
	)
}

// FormatTaskDetail formats a single task for the show command.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:          %s\n", task.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeTitle(task.Title))
	if task.Description != "" {
		fmt.Fprintf(w, "description: %s\n", task.Description)
	}
	fmt.Fprintf(w, "status:      %s\n", statusName(task.Status))
	fmt.Fprintf(w, "priority:    %s\n", task.EffectivePriority())
	fmt.Fprintf(w, "due:         %s\n", dueDate(task.DueDate))
}

// FormatUser formats the signed-in user's profile.
func FormatUser(w io.Writer, u service.User) {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	fmt.Fprintf(w, "name:  %s\n", name)
	fmt.Fprintf(w, "email: %s\n", u.Email)
	fmt.Fprintf(w, "id:    %s\n", u.ID)
}

// FormatQuery formats the canonical list query followed by a separator.
func FormatQuery(w io.Writer, query string) {
	fmt.Fprintf(w, "?%s\n", query)
	fmt.Fprintln(w, ListSeparator)
}

// FormatFieldErrors writes one error line per invalid field, in form order.
func FormatFieldErrors(w io.Writer, errs validation.Errors) {
	for _, fe := range errs {
		fmt.Fprintf(w, "error: %s: %s\n", fe.Field, fe.Message)
	}
}

func statusMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func statusName(done bool) string {
	if done {
		return "done"
	}
	return "notDone"
}

func dueDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return noDate
	}
	return s
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
