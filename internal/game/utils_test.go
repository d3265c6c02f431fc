package game

import "testing"

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{0, 0, 1, 255, 255, 255},
		{0, 0, 0, 0, 0, 0},
		{360, 1, 1, 255, 0, 0}, // wraps around
	}

	for _, test := range tests {
		r, g, b := hsvToRgb(test.h, test.s, test.v)
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("hsvToRgb(%v, %v, %v) = (%d, %d, %d), expected (%d, %d, %d)",
				test.h, test.s, test.v, r, g, b, test.r, test.g, test.b)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, test := range tests {
		if got := clamp01(test.in); got != test.expected {
			t.Errorf("clamp01(%v) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(16.8); got != "16.800000%" {
		t.Errorf("formatPercent(16.8) = %q", got)
	}
	if got := formatPercent(0); got != "0.000000%" {
		t.Errorf("formatPercent(0) = %q", got)
	}
}

func TestFormatExp(t *testing.T) {
	if got := formatExp(0.05); got != "5.00e-02" {
		t.Errorf("formatExp(0.05) = %q", got)
	}
	if got := formatExp(12345.6); got != "1.23e+04" {
		t.Errorf("formatExp(12345.6) = %q", got)
	}
}

func TestWrapInts(t *testing.T) {
	rows := wrapInts([]int{2, 3, 5, 7}, 10, 5)
	if len(rows) != 1 || rows[0] != "2 3 5 7" {
		t.Errorf("wrapInts short list = %v", rows)
	}

	rows = wrapInts([]int{2, 3, 5, 7}, 5, 5)
	if len(rows) != 2 || rows[0] != "2 3 5" || rows[1] != "7" {
		t.Errorf("wrapInts wrapped = %v", rows)
	}
}

func TestWrapInts_Elision(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i + 1
	}
	rows := wrapInts(values, 8, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %v", rows)
	}
	if rows[0] != "1 2 3 4" {
		t.Errorf("first row = %q", rows[0])
	}
	if rows[1] != "5 6 7 8 ..." {
		t.Errorf("second row = %q", rows[1])
	}
}

func TestWrapInts_Degenerate(t *testing.T) {
	if rows := wrapInts([]int{1, 2, 3}, 4, 0); rows != nil {
		t.Errorf("expected nil rows, got %v", rows)
	}
	if rows := wrapInts([]int{1, 2, 3}, 2, 5); rows != nil {
		t.Errorf("expected nil rows for tiny width, got %v", rows)
	}
}
