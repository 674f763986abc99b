package core

import "testing"

func TestBoxTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "shared vertical edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "gap on x axis",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "gap on y axis",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 11, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Touches(tc.a); got != tc.expected {
				t.Errorf("Touches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsTolerance(t *testing.T) {
	const tol = 2.0

	tests := []struct {
		name     string
		gap      float64
		expected bool
	}{
		{"touching", 0, true},
		{"gap below tolerance", 1.5, true},
		{"gap equal to tolerance", 2, true},
		{"gap just under twice tolerance", 3.9, true},
		{"gap equal to twice tolerance", 4, true},
		{"gap above twice tolerance", 4.1, false},
		{"far apart", 50, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewBox(0, 0, 10, 10)
			right := NewBox(10+tc.gap, 0, 10, 10)
			below := NewBox(0, 10+tc.gap, 10, 10)

			if got := Overlaps(a, right, tol); got != tc.expected {
				t.Errorf("Overlaps(horizontal gap %.1f) = %v, expected %v", tc.gap, got, tc.expected)
			}
			if got := Overlaps(a, below, tol); got != tc.expected {
				t.Errorf("Overlaps(vertical gap %.1f) = %v, expected %v", tc.gap, got, tc.expected)
			}
		})
	}
}

func TestBoxExpandAndCenter(t *testing.T) {
	b := NewBox(10, 20, 40, 30).Expand(2)

	if b.X != 8 || b.Y != 18 {
		t.Errorf("Expand() origin = (%.1f, %.1f), expected (8, 18)", b.X, b.Y)
	}
	if b.W != 44 || b.H != 34 {
		t.Errorf("Expand() size = %.1fx%.1f, expected 44x34", b.W, b.H)
	}

	cx, cy := NewBox(0, 0, 40, 20).Center()
	if cx != 20 || cy != 10 {
		t.Errorf("Center() = (%.1f, %.1f), expected (20, 10)", cx, cy)
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
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
