package kinematic

// This package includes the constant-acceleration equations used to move
// and predict objects on the court. Time is measured in ticks.

import (
	"math"
)

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// TimeToReach returns the time an object moving at a constant velocity needs to
// cover distance. A negative time means the target was passed that long ago.
// The second return value is false when velocity is zero and no finite time exists.
func TimeToReach(distance float64, velocity float64) (float64, bool) {
	if velocity == 0 {
		return 0, false
	}
	t := distance / velocity
	if math.IsInf(t, 0) || math.IsNaN(t) {
		return 0, false
	}
	return t, true
}
