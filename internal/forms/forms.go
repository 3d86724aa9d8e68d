// Package forms parses and validates the HTML form bodies accepted by the
// application. Each form type mirrors one POST endpoint; validation collects
// per-field messages so the whole form can be re-rendered with feedback
// instead of failing on the first bad field.
package forms

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Column bounds of the backing schema. Inputs longer than these would be
// rejected by the database anyway; checking here produces a friendlier
// message.
const (
	MaxUsernameLength  = 20
	MaxEmailLength     = 50
	MaxFirstNameLength = 30
	MaxLastNameLength  = 30
	MaxNoteTitleLength = 100
)

// Errors accumulates validation messages keyed by form field name.
type Errors map[string]string

// Add records a message for field unless one is already present; the first
// failed check per field wins.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = message
}

// Get returns the message recorded for field, or the empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

// RegisterForm carries the fields of the account registration form.
type RegisterForm struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string

	Errors Errors
}

// ParseRegister extracts a RegisterForm from the request body. The password
// is taken verbatim; all other fields are trimmed of surrounding whitespace.
func ParseRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Password:  r.PostFormValue("password"),
		Errors:    Errors{},
	}
}

// Validate checks required fields and length bounds, recording a message per
// failed field. It reports whether the form is acceptable.
func (f *RegisterForm) Validate() bool {
	requireField(f.Errors, "username", f.Username)
	maxLength(f.Errors, "username", f.Username, MaxUsernameLength)

	requireField(f.Errors, "email", f.Email)
	maxLength(f.Errors, "email", f.Email, MaxEmailLength)
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		f.Errors.Add("email", "this field must be a valid email address")
	}

	requireField(f.Errors, "first_name", f.FirstName)
	maxLength(f.Errors, "first_name", f.FirstName, MaxFirstNameLength)

	requireField(f.Errors, "last_name", f.LastName)
	maxLength(f.Errors, "last_name", f.LastName, MaxLastNameLength)

	requireField(f.Errors, "password", f.Password)

	return len(f.Errors) == 0
}

// LoginForm carries the fields of the login form.
type LoginForm struct {
	Username string
	Password string

	Errors Errors
}

// ParseLogin extracts a LoginForm from the request body.
func ParseLogin(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		Errors:   Errors{},
	}
}

// Validate checks that both credentials are present. Whether they are
// correct is the identity layer's concern, not the form's.
func (f *LoginForm) Validate() bool {
	requireField(f.Errors, "username", f.Username)
	requireField(f.Errors, "password", f.Password)

	return len(f.Errors) == 0
}

// NoteForm carries the fields of the note creation and edit forms.
type NoteForm struct {
	Title   string
	Content string

	Errors Errors
}

// ParseNote extracts a NoteForm from the request body. Content keeps its
// internal whitespace untouched; notes are free-form text.
func ParseNote(r *http.Request) NoteForm {
	return NoteForm{
		Title:   strings.TrimSpace(r.PostFormValue("title")),
		Content: r.PostFormValue("content"),
		Errors:  Errors{},
	}
}

// Validate checks that the title is present and within bounds. Content may
// be empty.
func (f *NoteForm) Validate() bool {
	requireField(f.Errors, "title", f.Title)
	maxLength(f.Errors, "title", f.Title, MaxNoteTitleLength)

	return len(f.Errors) == 0
}

func requireField(errs Errors, field, value string) {
	if value == "" {
		errs.Add(field, "this field is required")
	}
}

func maxLength(errs Errors, field, value string, limit int) {
	// counted in characters, not bytes: VARCHAR(n) bounds are character bounds
	if utf8.RuneCountInString(value) > limit {
		errs.Add(field, fmt.Sprintf("this field cannot exceed %d characters", limit))
	}
}
