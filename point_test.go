package gui

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Point
		expect Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 7).Sub(Pt(2, 3)), Pt(3, 4)},
		{"mul", Pt(1, -2).Mul(3), Pt(3, -6)},
		{"mul zero", Pt(9, 9).Mul(0), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestPoint_Length(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("zero Length() = %v, want 0", got)
	}
}

func TestPoint_Distance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); math.Abs(float64(got-5)) > 1e-6 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}
