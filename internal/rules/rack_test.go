package rules

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRack(t *testing.T) {
	r := ParseRack("T,e A-p o t")
	assert.Equal(t, "teapot", r.String())
	assert.Equal(t, map[rune]int{'t': 2, 'e': 1, 'a': 1, 'p': 1, 'o': 1}, r.Counts())
}

func TestRackCanForm(t *testing.T) {
	r := ParseRack("apple")
	assert.True(t, r.CanForm("apple"))
	assert.True(t, r.CanForm("PALE"))
	assert.True(t, r.CanForm(""))
	assert.False(t, r.CanForm("applee"))
	assert.False(t, r.CanForm("apply"))
}

func TestGenerateRackDeterministic(t *testing.T) {
	a := GenerateRack(rand.New(rand.NewSource(42)), 10, nil)
	b := GenerateRack(rand.New(rand.NewSource(42)), 10, nil)
	require.Len(t, a, 10)
	assert.Equal(t, a, b)

	for _, ch := range a {
		assert.True(t, ch >= 'a' && ch <= 'z', "unexpected letter %q", ch)
	}
}

func TestGenerateRackWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := GenerateRack(rng, 50, []LetterWeight{{'x', 1}, {'y', 0}})
	for _, ch := range r {
		assert.Equal(t, 'x', ch)
	}

	// All-zero weights fall back to the English table
	r = GenerateRack(rng, 5, []LetterWeight{{'q', 0}})
	assert.Len(t, r, 5)
}

func TestShufflePreservesLetters(t *testing.T) {
	r := ParseRack("teapotsnrd")
	s := r.Shuffle(rand.New(rand.NewSource(7)))

	assert.Equal(t, "teapotsnrd", r.String(), "shuffle must not modify the original")
	assert.Equal(t, sortedLetters(r), sortedLetters(s))
}

func sortedLetters(r Rack) string {
	c := r.Clone()
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c.String()
}

func TestFoundWords(t *testing.T) {
	var f FoundWords
	assert.False(t, f.Contains("cat"))

	assert.True(t, f.Add("Cat"))
	assert.False(t, f.Add("CAT"), "duplicates are rejected case-insensitively")
	assert.True(t, f.Add("dog"))

	assert.True(t, f.Contains("cAt"))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"cat", "dog"}, f.Words())

	f.Reset()
	assert.Zero(t, f.Len())
	assert.False(t, f.Contains("cat"))

	var nilSet *FoundWords
	assert.False(t, nilSet.Contains("cat"))
	assert.Zero(t, nilSet.Len())
}
