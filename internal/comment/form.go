package comment

// Form holds a draft and its field errors between keystrokes
type Form struct {
	draft  Draft
	errors Errors
}

// NewForm returns an empty form
func NewForm() *Form {
	return &Form{errors: Errors{}}
}

// Draft returns the current input
func (f *Form) Draft() Draft {
	return f.draft
}

// Errors returns a copy of the current field errors
func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Error returns the message for a field, or ""
func (f *Form) Error(field Field) string {
	return f.errors[field]
}

// Set updates a field. A changed value clears that field's error only;
// the new value is not re-validated until the next submit.
func (f *Form) Set(field Field, value string) {
	if f.draft.Get(field) == value {
		return
	}

	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldEmail:
		f.draft.Email = value
	case FieldComment:
		f.draft.Comment = value
	default:
		return
	}

	delete(f.errors, field)
}

// Submit validates the draft. On success the form is cleared and true is
// returned; on failure the errors are kept for display.
func (f *Form) Submit() bool {
	errs := Validate(f.draft)
	if len(errs) > 0 {
		f.errors = errs
		return false
	}

	f.draft = Draft{}
	f.errors = Errors{}
	return true
}
