package grapple

import (
	"math"

	"github.com/milk9111/grapplerig/common"
)

// Point is a candidate anchor in world space.
type Point struct {
	ID  string
	Pos common.Vec3
}

// Score describes how a candidate fared against the acquisition filters.
type Score struct {
	Distance      float64 // planar distance to the player
	Angle         float64 // degrees between forward and the candidate
	Projection    float64 // signed length along the forward axis
	Perpendicular float64 // offset from the sightline
}

// Evaluate scores a single candidate and reports whether it survives the
// range, cone and behind-the-player filters. Height is ignored.
func Evaluate(params Params, playerPos, playerForward common.Vec3, candidate common.Vec3) (Score, bool) {
	origin := playerPos.Planar()
	forward := common.Unit2(playerForward.Planar())
	target := candidate.Planar()

	var s Score
	s.Distance = origin.Distance(target)
	if s.Distance > params.HookRange {
		return s, false
	}

	toPoint := target.Sub(origin)
	s.Angle = common.AngleDeg(forward, toPoint)
	if s.Angle > params.MaxAngle {
		return s, false
	}

	s.Projection = toPoint.Dot(forward)
	if s.Projection < 0 {
		return s, false
	}

	closest := origin.Add(forward.Mult(s.Projection))
	s.Perpendicular = target.Distance(closest)
	return s, true
}

// SelectTarget picks the surviving candidate closest to the player's
// sightline. The first candidate wins ties.
func SelectTarget(params Params, playerPos, playerForward common.Vec3, candidates []Point) (Point, bool) {
	best := -1
	bestScore := math.MaxFloat64
	for i, c := range candidates {
		s, ok := Evaluate(params, playerPos, playerForward, c.Pos)
		if !ok {
			continue
		}
		if s.Perpendicular < bestScore {
			bestScore = s.Perpendicular
			best = i
		}
	}
	if best < 0 {
		return Point{}, false
	}
	return candidates[best], true
}
