package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllEmpty(t *testing.T) {
	errs := Validate(Draft{})

	assert.Equal(t, Errors{
		FieldName:    MsgNameRequired,
		FieldEmail:   MsgEmailRequired,
		FieldComment: MsgCommentRequired,
	}, errs)
}

func TestValidate_WhitespaceOnlyIsEmpty(t *testing.T) {
	errs := Validate(Draft{Name: "  \t", Email: " ", Comment: "\n"})

	assert.Equal(t, MsgNameRequired, errs[FieldName])
	assert.Equal(t, MsgEmailRequired, errs[FieldEmail])
	assert.Equal(t, MsgCommentRequired, errs[FieldComment])
}

func TestValidate_Valid(t *testing.T) {
	errs := Validate(Draft{Name: "Ada", Email: "ada@example.com", Comment: "Lovely brushwork"})
	assert.Empty(t, errs)
}

func TestValidate_FieldsAreIndependent(t *testing.T) {
	errs := Validate(Draft{Name: "", Email: "ada@example.com", Comment: "hi"})
	assert.Equal(t, Errors{FieldName: MsgNameRequired}, errs)

	errs = Validate(Draft{Name: "Ada", Email: "nope", Comment: ""})
	assert.Equal(t, Errors{FieldEmail: MsgEmailInvalid, FieldComment: MsgCommentRequired}, errs)
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", MsgEmailRequired},
		{"   ", MsgEmailRequired},
		{"ada@example.com", ""},
		{"a@b.c", ""},
		{"first.last@sub.example.org", ""},
		{" ada@example.com ", ""},
		{"ada", MsgEmailInvalid},
		{"ada@example", MsgEmailInvalid},
		{"@example.com", MsgEmailInvalid},
		{"ada@.com", MsgEmailInvalid},
		{"ada @example.com", MsgEmailInvalid},
		{"say ada@example.com please", ""}, // the pattern is unanchored
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			errs := Validate(Draft{Name: "n", Email: tt.email, Comment: "c"})
			if tt.want == "" {
				assert.False(t, errs.Has(FieldEmail), "unexpected error %q", errs[FieldEmail])
			} else {
				assert.Equal(t, tt.want, errs[FieldEmail])
			}
		})
	}
}
