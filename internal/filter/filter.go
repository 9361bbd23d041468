// Package filter derives the displayed task list from the list query state.
package filter

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"gtodo/internal/service"
)

// Query parameter names.
const (
	KeySortOrder      = "sortOrder"
	KeyStatusFilter   = "statusFilter"
	KeyPriorityFilter = "priorityFilter"
	KeyDueDateFilter  = "dueDateFilter"
	KeySearchTerm     = "searchTerm"
)

// Sort orders and status filter values.
const (
	SortAsc  = "asc"
	SortDesc = "desc"

	StatusDone    = "done"
	StatusNotDone = "notDone"
)

// State is the list view's filter and sort state.
type State struct {
	SortOrder      string
	StatusFilter   string
	PriorityFilter string
	DueDateFilter  string
	SearchTerm     string
}

// Default returns the state with every field at its default.
func Default() State {
	return State{SortOrder: SortAsc}
}

// Parse reads a state from a raw query string. Missing or empty parameters
// take their defaults; a malformed query yields what could be parsed.
func Parse(rawQuery string) State {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	s := Default()
	if v := values.Get(KeySortOrder); v != "" {
		s.SortOrder = v
	}
	s.StatusFilter = values.Get(KeyStatusFilter)
	s.PriorityFilter = values.Get(KeyPriorityFilter)
	s.DueDateFilter = values.Get(KeyDueDateFilter)
	s.SearchTerm = values.Get(KeySearchTerm)
	return s
}

// Encode returns the query string for s. Fields at their default are left
// out and keys are sorted, so equal states encode identically.
func (s State) Encode() string {
	values := url.Values{}
	if s.SortOrder != "" && s.SortOrder != SortAsc {
		values.Set(KeySortOrder, s.SortOrder)
	}
	set := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}
	set(KeyStatusFilter, s.StatusFilter)
	set(KeyPriorityFilter, s.PriorityFilter)
	set(KeyDueDateFilter, s.DueDateFilter)
	set(KeySearchTerm, s.SearchTerm)
	return values.Encode()
}

// Update is a partial state change. Nil fields keep the current value; an
// empty value resets the field to its default.
type Update struct {
	SortOrder      *string
	StatusFilter   *string
	PriorityFilter *string
	DueDateFilter  *string
	SearchTerm     *string
}

// Update returns s with u applied.
func (s State) Update(u Update) State {
	if u.SortOrder != nil {
		s.SortOrder = *u.SortOrder
		if s.SortOrder == "" {
			s.SortOrder = SortAsc
		}
	}
	if u.StatusFilter != nil {
		s.StatusFilter = *u.StatusFilter
	}
	if u.PriorityFilter != nil {
		s.PriorityFilter = *u.PriorityFilter
	}
	if u.DueDateFilter != nil {
		s.DueDateFilter = *u.DueDateFilter
	}
	if u.SearchTerm != nil {
		s.SearchTerm = *u.SearchTerm
	}
	return s
}

// Matches reports whether t passes every filter in s.
func (s State) Matches(t service.Task) bool {
	if s.StatusFilter != "" && t.Status != (s.StatusFilter == StatusDone) {
		return false
	}
	if s.PriorityFilter != "" && string(t.EffectivePriority()) != s.PriorityFilter {
		return false
	}
	if s.DueDateFilter != "" && t.DueDate != s.DueDateFilter {
		return false
	}
	if s.SearchTerm != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(s.SearchTerm)) {
		return false
	}
	return true
}

// Apply returns the tasks matching s, stably sorted by due date.
// The input is not modified.
func Apply(tasks []service.Task, s State) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.Matches(t) {
			out = append(out, t)
		}
	}

	asc := s.SortOrder == SortAsc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := dueTime(out[i].DueDate), dueTime(out[j].DueDate)
		if asc {
			return a.Before(b)
		}
		return a.After(b)
	})
	return out
}

var dueLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
}

// dueTime parses a due date. Missing or unparseable dates sort as the epoch.
func dueTime(s string) time.Time {
	for _, layout := range dueLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}
