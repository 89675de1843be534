package physics

import (
	"slices"

	"github.com/vovakirdan/arkanoid/internal/geom"
)

// Environment is the set of obstacles balls collide with.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// AddCollidable adds c to the environment.
func (e *Environment) AddCollidable(c Collidable) {
	e.collidables = append(e.collidables, c)
}

// RemoveCollidable removes c. It reports false when c is not a member.
func (e *Environment) RemoveCollidable(c Collidable) bool {
	i := slices.Index(e.collidables, c)
	if i < 0 {
		return false
	}
	e.collidables = slices.Delete(e.collidables, i, i+1)
	return true
}

// Len returns the number of members.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// Collidables returns a copy of the members in insertion order.
func (e *Environment) Collidables() []Collidable {
	return slices.Clone(e.collidables)
}

// ClosestCollision finds the obstacle whose nearest intersection with
// trajectory lies closest to the trajectory start. A later candidate only
// replaces the current one if it is strictly nearer.
func (e *Environment) ClosestCollision(trajectory geom.Line) (CollisionInfo, bool) {
	var (
		closest  CollisionInfo
		bestDist float64
		found    bool
	)

	for _, c := range e.Collidables() {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRectangle())
		if !ok {
			continue
		}
		d := trajectory.Start.Distance(p)
		if !found || d < bestDist {
			closest = CollisionInfo{Point: p, Object: c}
			bestDist = d
			found = true
		}
	}

	return closest, found
}
