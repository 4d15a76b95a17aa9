// Package comment validates the artwork comment form. Nothing here is sent
// anywhere: a valid submission only clears the form.
package comment

import (
	"regexp"
	"strings"
)

// Field names a form field
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldComment Field = "comment"
)

// Fields returns the form fields in display order
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldComment}
}

// Validation messages
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Email is invalid"
	MsgCommentRequired = "Comment is required"
)

// emailPattern is deliberately loose: something@something.something
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Draft is the form's current input
type Draft struct {
	Name    string
	Email   string
	Comment string
}

// Get returns the value of a field
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldComment:
		return d.Comment
	}
	return ""
}

// Errors maps a failed field to its message. Only failed fields appear.
type Errors map[Field]string

// Has reports whether f has an error
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Validate checks every field independently
func Validate(d Draft) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(d.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(d.Comment) == "" {
		errs[FieldComment] = MsgCommentRequired
	}

	return errs
}
