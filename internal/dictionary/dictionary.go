// Package dictionary provides word-membership oracles for the validator.
//
// A Dictionary answers one question: is this lower-case word a real word?
// Storage is up to the implementation (hash set, sorted slice, union of
// lists, or any function), so the validator never depends on how words
// are kept.
package dictionary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrLookup is returned when an oracle fails to answer a membership query.
	ErrLookup = errors.New("dictionary: lookup failed")

	// ErrEmpty is returned when a word list yields no usable words.
	ErrEmpty = errors.New("dictionary: word list is empty")
)

// Dictionary is a word-membership oracle.
// Callers pass lower-case words; implementations must not mutate state on lookup.
type Dictionary interface {
	Contains(word string) bool
}

// Checker is implemented by oracles whose lookups can fail,
// for example lists loaded lazily from disk.
type Checker interface {
	Check(word string) (bool, error)
}

// Lookup queries d for word. It prefers Checker when d implements it and
// converts a panic inside the oracle into ErrLookup.
func Lookup(d Dictionary, word string) (found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			found = false
			err = fmt.Errorf("%w: %v", ErrLookup, r)
		}
	}()

	if c, ok := d.(Checker); ok {
		found, err = c.Check(word)
		if err != nil && !errors.Is(err, ErrLookup) {
			err = fmt.Errorf("%w: %w", ErrLookup, err)
		}
		return found, err
	}
	return d.Contains(word), nil
}

// Set is a hash-set dictionary.
type Set map[string]struct{}

// NewSet builds a set from words, lower-casing each one.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted is a dictionary backed by a sorted slice, searched with binary search.
// It uses less memory than Set for large lists.
type Sorted []string

// NewSorted lower-cases, sorts and de-duplicates words.
func NewSorted(words []string) Sorted {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.ToLower(w))
	}
	sort.Strings(out)

	// Compact duplicates in place
	n := 0
	for i, w := range out {
		if i > 0 && w == out[n-1] {
			continue
		}
		out[n] = w
		n++
	}
	return Sorted(out[:n])
}

// Contains reports whether word is in the list.
func (s Sorted) Contains(word string) bool {
	i := sort.SearchStrings(s, word)
	return i < len(s) && s[i] == word
}

// Len returns the number of words in the list.
func (s Sorted) Len() int {
	return len(s)
}

// Union reports a word as present if any member dictionary contains it.
type Union []Dictionary

// Contains checks each member in order.
func (u Union) Contains(word string) bool {
	for _, d := range u {
		if d != nil && d.Contains(word) {
			return true
		}
	}
	return false
}

// Check is the fallible form of Contains: member Checkers are consulted and
// their errors propagated.
func (u Union) Check(word string) (bool, error) {
	for _, d := range u {
		if d == nil {
			continue
		}
		ok, err := Lookup(d, word)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Func adapts an ordinary function to the Dictionary interface.
type Func func(word string) bool

// Contains calls f(word).
func (f Func) Contains(word string) bool {
	return f(word)
}

// Ensure implementations satisfy Dictionary
var (
	_ Dictionary = Set(nil)
	_ Dictionary = Sorted(nil)
	_ Dictionary = Union(nil)
	_ Dictionary = Func(nil)
	_ Checker    = Union(nil)
)
