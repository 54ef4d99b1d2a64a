package core

// RayPoint is the intersection record for one surface: where the ray met
// the surface and the direction it left with.
type RayPoint struct {
	Point     Vec3
	Direction Vec3
}

// Ray is an ordered sequence of per-surface intersection records, one per
// surface the ray reached. A ray is created fresh by every trace call and
// is never mutated afterward; surface i of the system maps to index i.
type Ray []RayPoint

// Reaches reports whether the ray has an intersection record for surface i
func (r Ray) Reaches(i int) bool {
	return i >= 0 && i < len(r)
}

// HeightAt returns the radial height of the ray at surface i.
// The caller must ensure the ray reaches surface i.
func (r Ray) HeightAt(i int) float64 {
	return r[i].Point.RadialHeight()
}
