package anim

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name                      string
		v, vmin, vmax, tmin, tmax float64
		want                      float64
	}{
		{"lower endpoint", -1, -1, 1, -50, 50, -50},
		{"upper endpoint", 1, -1, 1, -50, 50, 50},
		{"midpoint", 0, -1, 1, -50, 50, 0},
		{"quarter", -0.5, -1, 1, -50, 50, -25},
		{"clamp above", 100, -1, 1, -50, 50, 50},
		{"clamp below", -100, -1, 1, -50, 50, -50},
		{"inverted target", 0.5, 0, 1, 10, -10, 0},
		{"offset ranges", 15, 10, 20, 100, 200, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.v, tt.vmin, tt.vmax, tt.tmin, tt.tmax)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v, %v, %v, %v) = %v, want %v",
					tt.v, tt.vmin, tt.vmax, tt.tmin, tt.tmax, got, tt.want)
			}
		})
	}
}

func TestSpin(t *testing.T) {
	tests := []struct {
		name     string
		a, delta float32
		want     float64
	}{
		{"small step", 0, 0.0001, 0.0001},
		{"negative step", 0.5, -0.25, 0.25},
		{"crosses pi", math.Pi - 0.05, 0.1, -math.Pi + 0.05},
		{"full turn", 2 * math.Pi, 0.1, 0.1},
		{"many turns", 1000, 0, 1000 - 159*2*math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spin(tt.a, tt.delta)
			if math.Abs(float64(got)-tt.want) > 1e-4 {
				t.Errorf("Spin(%v, %v) = %v, want %v", tt.a, tt.delta, got, tt.want)
			}
			if got < -math.Pi || got > math.Pi {
				t.Errorf("Spin(%v, %v) = %v, outside [-pi, pi]", tt.a, tt.delta, got)
			}
		})
	}
}
