package drawer

import "math"

// intentEpsilon absorbs float error from atan2 so that a drag exactly on a
// cone edge is counted as inside.
const intentEpsilon = 1e-9

// AngleOfDrag returns the direction of travel from (startX, startY) to (x, y)
// in degrees, normalized to [0, 360). 0 is rightward and 180 is leftward.
// Screen y grows downward, so downward travel yields angles in (0, 180).
func AngleOfDrag(startX, startY, x, y float64) float64 {
	theta := math.Atan2(-(startY - y), x-startX)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	deg := math.Mod(theta*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// offAxis returns how far deg lies from the horizontal axis, in [0, 90].
func offAxis(deg float64) float64 {
	right := math.Min(deg, 360-deg) // distance to 0°/360°
	left := math.Abs(deg - 180)     // distance to 180°
	return math.Min(right, left)
}

// HasIntent reports whether the motion from the start point to (x, y) falls
// within slideIntent degrees of the horizontal axis, in either direction.
// Cone edges are inclusive.
func HasIntent(startX, startY, x, y, slideIntent float64) bool {
	return offAxis(AngleOfDrag(startX, startY, x, y)) <= slideIntent+intentEpsilon
}
