package game

// Relationship accumulates the signed point deltas attached to resolved
// choices. The score is unbounded in both directions and lives for one
// playthrough; choice locks, conditional branch targets, and the outer
// ending selection all read it.
type Relationship struct {
	score int
}

// NewRelationship starts a playthrough at zero.
func NewRelationship() *Relationship {
	return &Relationship{}
}

// Add accumulates a delta. No clamping.
func (r *Relationship) Add(delta int) {
	r.score += delta
}

// Value returns the accumulated score.
func (r *Relationship) Value() int {
	return r.score
}
