package rules

import "strings"

// FoundWords is the case-insensitive set of words accepted in a session.
// It only grows until Reset; insertion order is kept for display.
// The zero value is ready to use.
type FoundWords struct {
	index map[string]struct{}
	order []string
}

// NewFoundWords creates a set pre-populated with words. Duplicates collapse.
func NewFoundWords(words ...string) *FoundWords {
	f := &FoundWords{}
	for _, w := range words {
		f.Add(w)
	}
	return f
}

// Add records word in lower case. Returns false if it was already present.
func (f *FoundWords) Add(word string) bool {
	w := strings.ToLower(word)
	if f.index == nil {
		f.index = make(map[string]struct{})
	}
	if _, ok := f.index[w]; ok {
		return false
	}
	f.index[w] = struct{}{}
	f.order = append(f.order, w)
	return true
}

// Contains reports whether word (any case) was already found.
// A nil set contains nothing.
func (f *FoundWords) Contains(word string) bool {
	if f == nil {
		return false
	}
	_, ok := f.index[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words found.
func (f *FoundWords) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Words returns a copy of the found words in the order they were accepted.
func (f *FoundWords) Words() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Reset empties the set for a new round.
func (f *FoundWords) Reset() {
	f.index = nil
	f.order = nil
}
