package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	assert.Equal(t, 12.0, Displacement(3, 4, 0))
	assert.Equal(t, -6.0, Displacement(-1.5, 4, 0))
	assert.Equal(t, 20.0, Displacement(0, 2, 10))
}

func TestTimeToReach(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		velocity float64
		want     float64
		wantOK   bool
	}{
		{name: "approaching", distance: 4, velocity: 1, want: 4, wantOK: true},
		{name: "approaching from the right", distance: -350, velocity: -2, want: 175, wantOK: true},
		{name: "already there", distance: 0, velocity: 3, want: 0, wantOK: true},
		{name: "already passed", distance: 10, velocity: -1, want: -10, wantOK: true},
		{name: "stationary", distance: 10, velocity: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TimeToReach(tt.distance, tt.velocity)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
