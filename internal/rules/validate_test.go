package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/word-rush/internal/dictionary"
)

func fixtureDict() dictionary.Dictionary {
	return dictionary.NewSet("apple", "cat", "tea", "teapot", "pot", "stop", "elephant", "odd")
}

func TestValidateOrder(t *testing.T) {
	v := NewValidator(fixtureDict())
	rack := ParseRack("teapotsnrd")

	tests := []struct {
		name      string
		candidate string
		found     []string
		want      Result
	}{
		{"empty", "", nil, Invalid(ReasonTooShort)},
		{"two letters", "to", nil, Invalid(ReasonTooShort)},
		{"two letters already found", "to", []string{"to"}, Invalid(ReasonTooShort)},
		{"duplicate beats formability", "xyz", []string{"XYZ"}, Invalid(ReasonAlreadyFound)},
		{"duplicate any case", "TeaPot", []string{"teapot"}, Invalid(ReasonAlreadyFound)},
		{"not formable", "apple", nil, Invalid(ReasonCannotForm)},
		{"formable but unknown", "tpae", nil, Invalid(ReasonNotAWord)},
		{"valid", "teapot", nil, Valid},
		{"valid upper case", "STOP", nil, Valid},
		{"valid three letters", "pot", nil, Valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.candidate, rack, NewFoundWords(tt.found...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateMultisetFormability(t *testing.T) {
	v := NewValidator(dictionary.Func(func(string) bool { return true }))
	rack := ParseRack("apple")

	got, err := v.Validate("apple", rack, nil)
	require.NoError(t, err)
	assert.True(t, got.Valid, "apple should be formable from [a,p,p,l,e]")

	got, err = v.Validate("applee", rack, nil)
	require.NoError(t, err)
	assert.Equal(t, Invalid(ReasonCannotForm), got, "second e is not on the rack")

	got, err = v.Validate("ppp", rack, nil)
	require.NoError(t, err)
	assert.Equal(t, Invalid(ReasonCannotForm), got)
}

func TestValidateLowercasesBeforeLookup(t *testing.T) {
	var queried []string
	dict := dictionary.Func(func(w string) bool {
		queried = append(queried, w)
		return w == "cat"
	})
	v := NewValidator(dict)

	got, err := v.Validate("CaT", ParseRack("tac"), nil)
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, []string{"cat"}, queried)
}

func TestValidateSkipsOracleOnEarlyFailure(t *testing.T) {
	calls := 0
	v := NewValidator(dictionary.Func(func(string) bool {
		calls++
		return true
	}))

	_, _ = v.Validate("ab", ParseRack("abc"), nil)
	_, _ = v.Validate("abc", ParseRack("abc"), NewFoundWords("abc"))
	_, _ = v.Validate("abd", ParseRack("abc"), nil)
	assert.Zero(t, calls)
}

func TestValidateIdempotent(t *testing.T) {
	v := NewValidator(fixtureDict())
	rack := ParseRack("teapotsnrd")
	found := NewFoundWords("pot")

	for _, word := range []string{"teapot", "pot", "zzz", "to", "tpae"} {
		first, err1 := v.Validate(word, rack, found)
		second, err2 := v.Validate(word, rack, found)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second, word)
	}
	assert.Equal(t, "teapotsnrd", rack.String(), "rack must not be mutated")
	assert.Equal(t, 1, found.Len(), "found words must not be mutated")
}

func TestValidateOracleFailure(t *testing.T) {
	v := NewValidator(dictionary.Func(func(string) bool { panic("word list missing") }))

	_, err := v.Validate("cat", ParseRack("cat"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrLookup))

	// Early checks still answer without touching the oracle
	got, err := v.Validate("ca", ParseRack("cat"), nil)
	require.NoError(t, err)
	assert.Equal(t, Invalid(ReasonTooShort), got)
}

func TestValidateMinLength(t *testing.T) {
	v := NewValidator(fixtureDict()).WithMinLength(4)
	assert.Equal(t, 4, v.MinLength())

	got, err := v.Validate("pot", ParseRack("pot"), nil)
	require.NoError(t, err)
	assert.Equal(t, Invalid(ReasonTooShort), got)
	assert.Equal(t, "Words must be at least 4 letters long", v.Message(ReasonTooShort))

	// The original validator is unchanged
	assert.Equal(t, DefaultMinLength, NewValidator(fixtureDict()).MinLength())
	assert.Equal(t, 1, v.WithMinLength(0).MinLength())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Valid", Valid.String())
	assert.Equal(t, "Invalid(CannotForm)", Invalid(ReasonCannotForm).String())
	assert.Equal(t, "Not a valid English word", ReasonNotAWord.Message())
	assert.Equal(t, "Unknown", Reason(99).String())
}
