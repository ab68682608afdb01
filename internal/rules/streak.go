package rules

const (
	DefaultStreakEvery = 3
	DefaultStreakBonus = 5
)

// Streak counts consecutive valid submissions and pays a flat bonus every
// Every-th one. The counter keeps growing after a payout; only an invalid
// submission resets it.
type Streak struct {
	Every int // payout interval, DefaultStreakEvery if <= 0
	Bonus int // points per payout

	count int
	best  int
}

// NewStreak creates a streak with the default interval and bonus.
func NewStreak() *Streak {
	return &Streak{Every: DefaultStreakEvery, Bonus: DefaultStreakBonus}
}

// Record registers a submission and returns the streak bonus it earned.
func (s *Streak) Record(valid bool) int {
	if !valid {
		s.count = 0
		return 0
	}

	s.count++
	if s.count > s.best {
		s.best = s.count
	}

	every := s.Every
	if every <= 0 {
		every = DefaultStreakEvery
	}
	if s.count%every == 0 {
		return s.Bonus
	}
	return 0
}

// Count returns the current run of consecutive valid submissions.
func (s *Streak) Count() int {
	return s.count
}

// Best returns the longest run seen since the last Reset.
func (s *Streak) Best() int {
	return s.best
}

// Reset clears the counter and the best run.
func (s *Streak) Reset() {
	s.count = 0
	s.best = 0
}
