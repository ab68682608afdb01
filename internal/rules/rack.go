// Package rules implements the word-validation and scoring engine for Word Rush.
// Everything here is pure: no I/O, no clocks, no package-level mutable state.
// The session controller owns the mutable game state and calls into this package.
package rules

import (
	"math/rand"
	"strings"
	"unicode"
)

// Rack is the ordered set of letter tiles available to the player.
// Order only matters for display; validation treats a rack as a multiset.
type Rack []rune

// ParseRack builds a rack from a string of letters, ignoring anything that is
// not a letter. Letters are lower-cased.
func ParseRack(s string) Rack {
	r := make(Rack, 0, len(s))
	for _, ch := range s {
		if unicode.IsLetter(ch) {
			r = append(r, unicode.ToLower(ch))
		}
	}
	return r
}

// String returns the rack letters concatenated in display order.
func (r Rack) String() string {
	return string(r)
}

// Counts returns the letter multiset of the rack.
func (r Rack) Counts() map[rune]int {
	counts := make(map[rune]int, len(r))
	for _, ch := range r {
		counts[unicode.ToLower(ch)]++
	}
	return counts
}

// Clone returns an independent copy of the rack.
func (r Rack) Clone() Rack {
	out := make(Rack, len(r))
	copy(out, r)
	return out
}

// CanForm reports whether word can be spelled from the rack's letters,
// using each tile at most once.
func (r Rack) CanForm(word string) bool {
	counts := r.Counts()
	for _, ch := range strings.ToLower(word) {
		if counts[ch] <= 0 {
			return false
		}
		counts[ch]--
	}
	return true
}

// LetterWeight is a letter and its relative sampling weight.
type LetterWeight struct {
	Letter rune
	Weight int
}

// EnglishFrequencies is the default letter distribution, biased towards
// common English letters.
var EnglishFrequencies = []LetterWeight{
	{'e', 12}, {'t', 9}, {'a', 8}, {'o', 8}, {'i', 7}, {'n', 7}, {'s', 7},
	{'h', 6}, {'r', 6}, {'d', 4}, {'l', 4}, {'c', 3}, {'u', 3}, {'m', 3},
	{'w', 3}, {'f', 2}, {'g', 2}, {'y', 2}, {'p', 2}, {'b', 2}, {'v', 1},
	{'k', 1}, {'j', 1}, {'x', 1}, {'q', 1}, {'z', 1},
}

// GenerateRack draws n letters from the weighted distribution.
// An empty or all-zero distribution falls back to EnglishFrequencies.
func GenerateRack(rng *rand.Rand, n int, weights []LetterWeight) Rack {
	pool := letterPool(weights)
	if len(pool) == 0 {
		pool = letterPool(EnglishFrequencies)
	}

	rack := make(Rack, n)
	for i := range rack {
		rack[i] = pool[rng.Intn(len(pool))]
	}
	return rack
}

// letterPool expands weights into a flat slice where each letter appears
// weight times.
func letterPool(weights []LetterWeight) []rune {
	var pool []rune
	for _, w := range weights {
		for i := 0; i < w.Weight; i++ {
			pool = append(pool, unicode.ToLower(w.Letter))
		}
	}
	return pool
}

// Shuffle returns a Fisher-Yates shuffled copy of the rack.
func (r Rack) Shuffle(rng *rand.Rand) Rack {
	out := r.Clone()
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
