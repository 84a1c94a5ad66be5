package anim

// Bob oscillator tuning.
const (
	BobUpperBound   = 77.5
	BobLowerBound   = 73.5
	BobDelta        = 0.015
	BobRotationGain = 0.007
)

// Direction is the vertical travel direction of the oscillator.
type Direction int

const (
	Rising Direction = iota
	Falling
)

func (d Direction) String() string {
	if d == Rising {
		return "rising"
	}
	return "falling"
}

func (d Direction) sign() float64 {
	if d == Rising {
		return 1
	}
	return -1
}

// Phase selects which way the body pitches for a given direction.
type Phase int

const (
	Ascending Phase = iota
	Descending
)

func (p Phase) String() string {
	if p == Ascending {
		return "ascending"
	}
	return "descending"
}

func (p Phase) sign() float64 {
	if p == Ascending {
		return 1
	}
	return -1
}

// Oscillator bounces an offset between two bounds by a fixed step per frame
// and derives a pitch from it.
//
// Direction flips when the offset passes the upper bound; Phase flips only
// when it passes the lower bound, so the pitch cycle runs at half the rate
// of the height cycle and leans the other way on every second swell.
type Oscillator struct {
	Upper, Lower float64
	Delta        float64
	Gain         float64

	Offset    float64
	Rotation  float64
	Direction Direction
	Phase     Phase
}

// NewOscillator returns an oscillator with the default bounds, rising from offset.
func NewOscillator(offset float64) *Oscillator {
	return &Oscillator{
		Upper:     BobUpperBound,
		Lower:     BobLowerBound,
		Delta:     BobDelta,
		Gain:      BobRotationGain,
		Offset:    offset,
		Direction: Rising,
		Phase:     Ascending,
	}
}

// Step advances the oscillator by one frame.
func (o *Oscillator) Step() {
	o.Offset += o.Direction.sign() * o.Delta
	o.Rotation = o.Direction.sign() * o.Phase.sign() * (o.Upper - o.Offset) * o.Gain

	if o.Offset > o.Upper {
		o.Direction = Falling
	}
	if o.Offset < o.Lower {
		o.Direction = Rising
		o.Phase = 1 - o.Phase
	}
}
