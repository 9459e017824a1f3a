package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsHealthy(t *testing.T) {
	o := New()
	assert.True(t, o.Success)
	assert.Empty(t, o.ErrorMessages)
	assert.Nil(t, o.CustomExceptions)
}

func TestOutcome_SuccessRecomputedAfterEveryMutation(t *testing.T) {
	o := New()

	o.AddErrorMessage("first failure", false)
	assert.False(t, o.Success)
	assert.Equal(t, []string{"first failure"}, o.ErrorMessages)

	o.AddErrorMessage("second failure", false)
	assert.False(t, o.Success)
	assert.Len(t, o.ErrorMessages, 2)

	o.AddCustomException(CustomException{Kind: KindConflict, Message: "dup"}, false)
	assert.False(t, o.Success)
	assert.Len(t, o.CustomExceptions, 1)
}

func TestOutcome_ClearReplacesInsteadOfAccumulating(t *testing.T) {
	o := New()
	o.AddErrorMessages([]string{"a", "b", "c"}, false)
	require.Len(t, o.ErrorMessages, 3)

	o.AddErrorMessage("only", true)
	assert.Equal(t, []string{"only"}, o.ErrorMessages)
	assert.False(t, o.Success)

	o.AddCustomExceptions([]CustomException{
		{Kind: KindConflict, Message: "x"},
		{Kind: KindRateLimit, Message: "y"},
	}, false)
	o.AddCustomException(CustomException{Kind: KindNotFound, Message: "z"}, true)
	require.Len(t, o.CustomExceptions, 1)
	assert.Equal(t, KindNotFound, o.CustomExceptions[0].Kind)
}

func TestOutcome_SelfHealingNormalization(t *testing.T) {
	o := New()
	o.AddCustomException(CustomException{Kind: KindConflict, Message: "dup"}, false)
	require.False(t, o.Success)

	// Clearing both collections brings the outcome back to healthy and the
	// exception list back to absent, not merely empty.
	o.AddErrorMessages(nil, true)
	o.AddCustomExceptions(nil, true)
	assert.True(t, o.Success)
	assert.Nil(t, o.CustomExceptions)
	assert.Nil(t, o.ErrorMessages)
}

func TestOutcome_ApplyValidationFailures(t *testing.T) {
	o := New()
	o.ApplyValidationFailures([]ValidationFailure{
		{Field: "IdentificationNumber", Message: "must not be empty", AttemptedValue: ""},
		{Field: "Channel", Message: "unknown channel", AttemptedValue: "Fax"},
	})

	require.Len(t, o.ErrorMessages, 2)
	assert.Equal(t, "must not be empty on property 'IdentificationNumber' with value ()", o.ErrorMessages[0])
	assert.Equal(t, "unknown channel on property 'Channel' with value (Fax)", o.ErrorMessages[1])
	assert.False(t, o.Success)
}

func TestFromValidationFailures_ComputesAtConstruction(t *testing.T) {
	o := FromValidationFailures([]ValidationFailure{
		{Field: "CaseId", Message: "required", AttemptedValue: ""},
	})
	assert.False(t, o.Success)
	assert.Len(t, o.ErrorMessages, 1)

	empty := FromValidationFailures(nil)
	assert.True(t, empty.Success)
}

func TestOutcome_HasExceptionKind(t *testing.T) {
	o := New()
	o.AddCustomException(CustomException{Kind: KindConflict, Message: "dup"}, false)

	assert.True(t, o.HasExceptionKind(KindConflict))
	assert.False(t, o.HasExceptionKind(KindRateLimit))
}

func TestOutcome_Merge(t *testing.T) {
	a := New()
	b := New()
	b.AddErrorMessage("bad", false)
	b.AddCustomException(CustomException{Kind: KindConflict, Message: "dup"}, false)

	a.Merge(b)
	assert.False(t, a.Success)
	assert.Equal(t, []string{"bad"}, a.ErrorMessages)
	require.Len(t, a.CustomExceptions, 1)

	// Merging a healthy outcome changes nothing.
	c := New()
	c.Merge(New())
	assert.True(t, c.Success)
}
