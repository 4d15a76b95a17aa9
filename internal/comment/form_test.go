package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_SubmitValidClearsFields(t *testing.T) {
	f := NewForm()
	f.Set(FieldName, "Ada")
	f.Set(FieldEmail, "ada@example.com")
	f.Set(FieldComment, "Nice")

	require.True(t, f.Submit())
	assert.Equal(t, Draft{}, f.Draft())
	assert.Empty(t, f.Errors())
}

func TestForm_SubmitInvalidKeepsDraftAndShowsErrors(t *testing.T) {
	f := NewForm()
	f.Set(FieldEmail, "bad")

	require.False(t, f.Submit())
	assert.Equal(t, "bad", f.Draft().Email)
	assert.Equal(t, MsgNameRequired, f.Error(FieldName))
	assert.Equal(t, MsgEmailInvalid, f.Error(FieldEmail))
	assert.Equal(t, MsgCommentRequired, f.Error(FieldComment))
}

func TestForm_EditClearsOnlyThatField(t *testing.T) {
	f := NewForm()
	require.False(t, f.Submit())
	require.Len(t, f.Errors(), 3)

	// Still invalid after the edit, but the error goes away until next submit
	f.Set(FieldEmail, "x")

	assert.False(t, f.Errors().Has(FieldEmail))
	assert.Equal(t, MsgNameRequired, f.Error(FieldName))
	assert.Equal(t, MsgCommentRequired, f.Error(FieldComment))
}

func TestForm_UnchangedValueKeepsError(t *testing.T) {
	f := NewForm()
	require.False(t, f.Submit())

	f.Set(FieldName, "")

	assert.Equal(t, MsgNameRequired, f.Error(FieldName))
}

func TestForm_ErrorsIsACopy(t *testing.T) {
	f := NewForm()
	f.Submit()

	errs := f.Errors()
	delete(errs, FieldName)

	assert.Equal(t, MsgNameRequired, f.Error(FieldName))
}

func TestForm_ResubmitAfterFix(t *testing.T) {
	f := NewForm()
	f.Set(FieldName, "Ada")
	f.Set(FieldEmail, "ada@example.com")
	require.False(t, f.Submit())
	assert.Equal(t, Errors{FieldComment: MsgCommentRequired}, f.Errors())

	f.Set(FieldComment, "Great")
	assert.Empty(t, f.Errors())
	require.True(t, f.Submit())
}
