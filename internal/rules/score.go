package rules

import "unicode/utf8"

// Breakdown itemises the points awarded for one accepted word.
type Breakdown struct {
	Base   int // length-tier score
	Bonus  int // length-tier bonus
	Streak int // flat streak bonus, filled in by the session
}

// Total returns the sum of all components.
func (b Breakdown) Total() int {
	return b.Base + b.Bonus + b.Streak
}

// ScoreWord returns the base and length bonus for an accepted word.
// Streak is left at zero; see Streak.Record.
func ScoreWord(word string) Breakdown {
	n := utf8.RuneCountInString(word)
	return Breakdown{
		Base:  BaseScore(n),
		Bonus: LengthBonus(n),
	}
}

// BaseScore returns the base points for a word of n letters.
func BaseScore(n int) int {
	switch {
	case n <= 2:
		return 0
	case n == 3:
		return 1
	case n == 4:
		return 2
	case n == 5:
		return 3
	case n == 6:
		return 5
	case n == 7:
		return 8
	default:
		return 10 + 2*(n-7)
	}
}

// LengthBonus returns the extra points for a word of n letters.
func LengthBonus(n int) int {
	switch {
	case n <= 3:
		return 0
	case n == 4:
		return 1
	case n == 5:
		return 3
	case n == 6:
		return 5
	default:
		return 10
	}
}
