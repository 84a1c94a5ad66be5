package anim

import (
	"math"
	"time"
)

// DefaultFollowFactor is the fraction of the remaining distance covered per frame.
const DefaultFollowFactor = 0.01

// ReferenceFrame is the frame period the follow factor is tuned for.
const ReferenceFrame = time.Second / 60

// Approach moves current a fraction factor of the way toward target.
// Applied once per frame this is a first-order low-pass filter.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Follower eases a value toward a moving target.
type Follower struct {
	Factor float64

	// FrameRateNeutral rescales Factor by the real frame time so the
	// visible speed matches a ReferenceFrame-paced display at any refresh
	// rate. When false every frame applies Factor as-is.
	FrameRateNeutral bool
}

// NewFollower returns a frame-counted follower using factor.
func NewFollower(factor float64) Follower {
	return Follower{Factor: factor}
}

// Blend returns the per-frame blend factor for a frame lasting dt.
func (f Follower) Blend(dt time.Duration) float64 {
	if !f.FrameRateNeutral || dt <= 0 {
		return f.Factor
	}
	frames := float64(dt) / float64(ReferenceFrame)
	return 1 - math.Pow(1-f.Factor, frames)
}

// Step eases current toward target for a frame lasting dt.
func (f Follower) Step(current, target float64, dt time.Duration) float64 {
	return Approach(current, target, f.Blend(dt))
}
