package sim

// Collides reports whether two entities overlap: the distance between their
// positions is strictly less than the sum of their radii.
// It is symmetric and has no side effects.
func Collides(a, b Entity) bool {
	ra, rb := a.Size(), b.Size()
	d := a.Body().Pos.Sub(b.Body().Pos)
	reach := ra + rb
	return d.X*d.X+d.Y*d.Y < reach*reach
}
