package sim

import (
	"testing"

	"github.com/san-kum/orrery/internal/solar"
)

func TestSceneBound(t *testing.T) {
	tests := []struct {
		name      string
		positions []solar.Vec3
		want      float64
	}{
		{"empty", nil, 2.0},
		{"single", []solar.Vec3{{X: 3, Y: -4, Z: 0}}, 5},
		{"z dominates", []solar.Vec3{{X: 1}, {Z: -7.5}}, 8.5},
		{"origin only", []solar.Vec3{{}}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SceneBound(tt.positions); got != tt.want {
				t.Errorf("SceneBound() = %v, want %v", got, tt.want)
			}
		})
	}
}
