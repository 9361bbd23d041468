// Package validation holds the form schemas checked before any data access.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired      = "This field is required"
	msgEmail         = "Valid email is required"
	msgConfirm       = "You must confirm your password"
	msgPasswordMatch = "Passwords must match"
	msgTitleMin      = "Minimum text length is 3 characters"
	msgPriority      = "Invalid priority selected"
)

// validate is shared by all forms. Fields are reported by their JSON names.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateAccountForm is the registration form.
type CreateAccountForm struct {
	FirstName       string `json:"firstName" validate:"required,min=3"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=3"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ChangeProfileForm is the profile form. An empty password leaves the stored
// one unchanged.
type ChangeProfileForm struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
}

// TaskForm is used for both creating and editing a task.
type TaskForm struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required,oneof=high medium low"`
	DueDate     string `json:"dueDate" validate:"required"`
}

// FieldError is the first rule a field violated.
type FieldError struct {
	Field   string
	Message string
}

// Errors lists failing fields in form order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Get returns the message for field, if it failed.
func (e Errors) Get(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Map returns the errors keyed by field name.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// Validate checks form against its schema. It returns nil or Errors.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	out := make(Errors, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "confirmPassword" {
			return msgConfirm
		}
		return msgRequired
	case "email":
		return msgEmail
	case "eqfield":
		return msgPasswordMatch
	case "oneof":
		return msgPriority
	case "min":
		if fe.Field() == "title" {
			return msgTitleMin
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
