// Package physics implements the frame-stepped motion and collision engine:
// moving balls, the obstacle environment they query, and the collidables
// (blocks and the paddle) that decide how a ball leaves after a hit.
//
// Everything here runs on a single goroutine. Collections that a hit
// response may mutate are iterated over a copy.
package physics

import "github.com/vovakirdan/arkanoid/internal/geom"

// Collidable is anything with a rectangular collision shape that responds
// to being struck.
type Collidable interface {
	// CollisionRectangle returns the shape used for intersection queries.
	CollisionRectangle() *geom.Rectangle

	// Hit is called when hitter strikes the collidable at collisionPoint
	// moving at current. It may mutate the collidable and notify listeners,
	// and returns the velocity the ball should leave with.
	Hit(hitter *Ball, collisionPoint geom.Point, current Velocity) Velocity
}

// CollisionInfo describes the nearest obstacle on a trajectory.
type CollisionInfo struct {
	Point  geom.Point
	Object Collidable
}

// CollidableRemover takes collidables out of play.
type CollidableRemover interface {
	RemoveCollidable(c Collidable) bool
}

// BallReleaser takes balls out of play.
type BallReleaser interface {
	RemoveBall(b *Ball) bool
}
