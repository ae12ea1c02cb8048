// Package geom provides the small amount of 3D math the simulation needs:
// world-space vectors and axis-aligned box intersection tests.
package geom

// Vector3 represents a point or displacement in world space.
// X is lateral (positive right), Y is up, Z is forward along the track
// (entities travel toward positive Z as the player runs).
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Box is an axis-aligned bounding box defined by its two extreme corners.
// Min must be component-wise less than or equal to Max.
type Box struct {
	Min, Max Vector3
}

// NewBox builds a box from a center position and half-extents below/above it
// on each axis. The offsets are given as signed deltas from the center, which
// lets callers express asymmetric hitboxes directly.
func NewBox(center Vector3, minOff, maxOff Vector3) Box {
	return Box{
		Min: center.Add(minOff),
		Max: center.Add(maxOff),
	}
}

// Intersects reports whether b and other overlap on all three axes.
// Touching faces count as an intersection.
func (b Box) Intersects(other Box) bool {
	if b.Max.X < other.Min.X || other.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < other.Min.Y || other.Max.Y < b.Min.Y {
		return false
	}
	if b.Max.Z < other.Min.Z || other.Max.Z < b.Min.Z {
		return false
	}
	return true
}
