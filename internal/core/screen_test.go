package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.BG != ColorNone {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	s.Set(0, 0, Cell{Rune: 'X'}) // Should not panic
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, Cell{Rune: 'X', FG: ColorRed})

	if c := s.Get(5, 5); c.Rune != 'X' || c.FG != ColorRed {
		t.Errorf("Get(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, Cell{Rune: 'A'})
	s.Set(100, 0, Cell{Rune: 'A'})
	s.Set(0, -1, Cell{Rune: 'A'})
	s.Set(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetRuneKeepsBackground(t *testing.T) {
	s := NewScreen(4, 1)
	s.Set(1, 0, Cell{Rune: ' ', BG: "#112233"})
	s.SetRune(1, 0, 'A', ColorWhite)

	c := s.Get(1, 0)
	if c.Rune != 'A' || c.FG != ColorWhite || c.BG != "#112233" {
		t.Errorf("SetRune should keep background, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 4, Cell{Rune: 'x', FG: ColorWhite, BG: ColorRed})
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != blank {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(10, 2, "Hi", ColorWhite)

	if s.Get(9, 2).Rune != 'H' || s.Get(10, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorNone)
	s.DrawText(0, 1, "BBBBB", ColorNone)
	s.DrawText(0, 2, "CCCCC", ColorNone)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorNone)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorNone)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
