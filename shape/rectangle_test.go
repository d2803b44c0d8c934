package shape

import "testing"

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		area          float64
	}{
		{"regular", 10, 20, 200},
		{"square", 7, 7, 49},
		{"fractional", 0.5, 3, 1.5},
		{"zero", 0, 5, 0},
		{"negative kept as is", -2, 3, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRectangle(tt.width, tt.height)
			if r.Width != tt.width || r.Height != tt.height {
				t.Errorf("NewRectangle() = %+v, want %vx%v", *r, tt.width, tt.height)
			}
			if got := r.Area(); got != tt.area {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
		})
	}
}
