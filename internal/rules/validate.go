package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/word-rush/internal/dictionary"
)

// DefaultMinLength is the shortest word the validator accepts.
const DefaultMinLength = 3

// Reason explains why a candidate was rejected.
type Reason int

const (
	ReasonNone         Reason = iota
	ReasonTooShort            // shorter than the minimum length
	ReasonAlreadyFound        // already accepted this session
	ReasonCannotForm          // needs letters the rack does not have
	ReasonNotAWord            // not in the dictionary
)

// String returns the reason's identifier.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonTooShort:
		return "TooShort"
	case ReasonAlreadyFound:
		return "AlreadyFound"
	case ReasonCannotForm:
		return "CannotForm"
	case ReasonNotAWord:
		return "NotAWord"
	default:
		return "Unknown"
	}
}

// Message returns the player-facing text for the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonNone:
		return "Valid word!"
	case ReasonTooShort:
		return "Words must be at least 3 letters long"
	case ReasonAlreadyFound:
		return "You already found this word"
	case ReasonCannotForm:
		return "Can't form this word with the available letters"
	case ReasonNotAWord:
		return "Not a valid English word"
	default:
		return "Unknown reason"
	}
}

// Result is the outcome of validating a candidate.
type Result struct {
	Valid  bool
	Reason Reason // ReasonNone when Valid
}

// Valid is the accepting result.
var Valid = Result{Valid: true}

// Invalid builds a rejecting result.
func Invalid(reason Reason) Result {
	return Result{Reason: reason}
}

// String renders the result as "Valid" or "Invalid(Reason)".
func (r Result) String() string {
	if r.Valid {
		return "Valid"
	}
	return "Invalid(" + r.Reason.String() + ")"
}

// Validator decides whether a candidate word is acceptable.
// It holds only read-only configuration and is safe to share.
type Validator struct {
	dict      dictionary.Dictionary
	minLength int
}

// NewValidator creates a validator backed by dict with the default minimum length.
func NewValidator(dict dictionary.Dictionary) *Validator {
	return &Validator{dict: dict, minLength: DefaultMinLength}
}

// WithMinLength returns a copy of the validator using n as the minimum word length.
// Values below 1 are treated as 1.
func (v *Validator) WithMinLength(n int) *Validator {
	if n < 1 {
		n = 1
	}
	out := *v
	out.minLength = n
	return &out
}

// MinLength returns the configured minimum word length.
func (v *Validator) MinLength() int {
	return v.minLength
}

// Message returns the player-facing text for r, reflecting the configured
// minimum length.
func (v *Validator) Message(r Reason) string {
	if r == ReasonTooShort && v.minLength != DefaultMinLength {
		return fmt.Sprintf("Words must be at least %d letters long", v.minLength)
	}
	return r.Message()
}

// Validate checks candidate against the rack, the words already found and the
// dictionary, in that order; the first failing check decides the result.
//
// The error is non-nil only when the dictionary itself fails to answer, in
// which case the result carries no verdict and must be ignored.
func (v *Validator) Validate(candidate string, rack Rack, found *FoundWords) (Result, error) {
	if utf8.RuneCountInString(candidate) < v.minLength {
		return Invalid(ReasonTooShort), nil
	}

	word := strings.ToLower(candidate)
	if found.Contains(word) {
		return Invalid(ReasonAlreadyFound), nil
	}

	if !rack.CanForm(word) {
		return Invalid(ReasonCannotForm), nil
	}

	ok, err := dictionary.Lookup(v.dict, word)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Invalid(ReasonNotAWord), nil
	}

	return Valid, nil
}
