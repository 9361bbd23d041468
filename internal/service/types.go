// Package service defines the data-access layer for users and tasks.
package service

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// User represents a registered user.
// Password is only populated on records read straight from the store and is
// stripped before a User leaves this package.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// Merge returns a copy of u with the supplied patch fields applied.
func (u User) Merge(p UserPatch) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil && *p.Password != "" {
		u.Password = *p.Password
	}
	return u
}

// NewUser holds the fields of a user being registered.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// Fields returns the store update for the patch.
// An empty password is omitted so a profile edit never clears it.
func (p UserPatch) Fields() Fields {
	f := Fields{}
	if p.FirstName != nil {
		f[fieldFirstName] = *p.FirstName
	}
	if p.LastName != nil {
		f[fieldLastName] = *p.LastName
	}
	if p.Email != nil {
		f[fieldEmail] = *p.Email
	}
	if p.Password != nil && *p.Password != "" {
		f[fieldPassword] = *p.Password
	}
	return f
}

// Task represents a single to-do item.
type Task struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      bool     `json:"status"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// EffectivePriority returns the task priority, treating an absent one as low.
func (t Task) EffectivePriority() Priority {
	if t.Priority == "" {
		return PriorityLow
	}
	return t.Priority
}

// Merge returns a copy of t with the supplied patch fields applied.
func (t Task) Merge(p TaskPatch) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	return t
}

// NewTask holds the fields of a task being created.
type NewTask struct {
	UserID      string
	Title       string
	Description string
	Status      bool
	Priority    Priority
	DueDate     string
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *bool
	Priority    *Priority
	DueDate     *string
}

// Empty reports whether the patch supplies no fields.
func (p TaskPatch) Empty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the store update for the patch.
func (p TaskPatch) Fields() Fields {
	f := Fields{}
	if p.Title != nil {
		f[fieldTitle] = *p.Title
	}
	if p.Description != nil {
		f[fieldDescription] = *p.Description
	}
	if p.Status != nil {
		f[fieldStatus] = *p.Status
	}
	if p.Priority != nil {
		f[fieldPriority] = string(*p.Priority)
	}
	if p.DueDate != nil {
		f[fieldDueDate] = *p.DueDate
	}
	return f
}

// Document field names.
const (
	fieldFirstName   = "firstName"
	fieldLastName    = "lastName"
	fieldEmail       = "email"
	fieldPassword    = "password"
	fieldUserID      = "userId"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldPriority    = "priority"
	fieldDueDate     = "dueDate"
)

// Collection names.
const (
	UsersCollection = "users"
	TodosCollection = "todos"
)

func userFromDocument(doc Document) User {
	return User{
		ID:        doc.ID,
		FirstName: doc.Fields.String(fieldFirstName),
		LastName:  doc.Fields.String(fieldLastName),
		Email:     doc.Fields.String(fieldEmail),
		Password:  doc.Fields.String(fieldPassword),
	}
}

func taskFromDocument(doc Document) Task {
	return Task{
		ID:          doc.ID,
		UserID:      doc.Fields.String(fieldUserID),
		Title:       doc.Fields.String(fieldTitle),
		Description: doc.Fields.String(fieldDescription),
		Status:      doc.Fields.Bool(fieldStatus),
		Priority:    Priority(doc.Fields.String(fieldPriority)),
		DueDate:     doc.Fields.String(fieldDueDate),
	}
}

// stripPassword returns u without its password.
func stripPassword(u User) User {
	u.Password = ""
	return u
}
