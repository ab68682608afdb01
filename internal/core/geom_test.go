package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionSubmit) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionSubmit)
	f.Type('c')
	f.Type('a')
	f.Dt = 50
	if !f.Has(ActionSubmit) || f.Has(ActionShuffle) {
		t.Error("Has should report only set actions")
	}
	if string(f.Text) != "ca" {
		t.Errorf("Text = %q, expected \"ca\"", string(f.Text))
	}

	f.Clear()
	if !f.Empty() || f.Dt != 0 {
		t.Error("Clear should reset actions, text and dt")
	}
}

func TestActionString(t *testing.T) {
	if ActionShuffle.String() != "Shuffle" {
		t.Errorf("ActionShuffle.String() = %q", ActionShuffle.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should print as Unknown")
	}
}

func TestTickMillis(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 20}).TickMillis(); got != 50 {
		t.Errorf("TickMillis() = %d, expected 50", got)
	}
	if got := (RuntimeConfig{}).TickMillis(); got != 50 {
		t.Errorf("TickMillis() with zero rate = %d, expected default 50", got)
	}
}
