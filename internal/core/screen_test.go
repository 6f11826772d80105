package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(42, 22)

	if s.Width() != 42 {
		t.Errorf("Width() = %d, expected 42", s.Width())
	}
	if s.Height() != 22 {
		t.Errorf("Height() = %d, expected 22", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	s.Clear()
	if s.Get(2, 2) != ' ' {
		t.Error("After Clear, expected space")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(0, 0, 10, 6))

	corners := []struct {
		x, y     int
		expected rune
	}{
		{0, 0, '┌'},
		{9, 0, '┐'},
		{0, 5, '└'},
		{9, 5, '┘'},
	}
	for _, c := range corners {
		if s.Get(c.x, c.y) != c.expected {
			t.Errorf("Corner at (%d, %d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.expected)
		}
	}

	for x := 1; x < 9; x++ {
		if s.Get(x, 0) != '─' || s.Get(x, 5) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
	for y := 1; y < 5; y++ {
		if s.Get(0, y) != '│' || s.Get(9, y) != '│' {
			t.Errorf("Vertical edge missing at y=%d", y)
		}
	}

	// Interior untouched
	if s.Get(5, 3) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	rows := strings.Split(str, "\n")
	if len(rows) != 2 {
		t.Fatalf("String() should have 2 rows, got %d", len(rows))
	}
	if rows[0] != "a  " {
		t.Errorf("Row 0 = %q, expected %q", rows[0], "a  ")
	}
	if rows[1] != "  b" {
		t.Errorf("Row 1 = %q, expected %q", rows[1], "  b")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, 'x')

	if s.Row(1) != " x  " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), " x  ")
	}
	if s.Row(-1) != "    " {
		t.Error("Out of bounds Row should return spaces")
	}
	if s.Row(5) != "    " {
		t.Error("Out of bounds Row should return spaces")
	}
}
