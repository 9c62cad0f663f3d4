// Package training holds workout sessions and the per-discipline calculators
// that derive distance, mean speed and spent calories from them.
package training

// Unit conversion constants shared by all disciplines.
const (
	mInKm  = 1000
	minInH = 60
	cmInM  = 100
)

// Per-discipline distance covered by one recorded action.
const (
	stepLengthM   = 0.65
	strokeLengthM = 1.38
)

// Kind identifies a training discipline.
type Kind int

// Supported disciplines.
const (
	KindRunning Kind = iota + 1
	KindSportsWalking
	KindSwimming
)

// String returns the discipline name used as the summary label.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Calculator derives workout statistics from one session. Every discipline
// must provide its own calorie formula; Session alone does not satisfy it.
type Calculator interface {
	Kind() Kind
	// Duration returns the session length in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the energy spent in kcal.
	SpentCalories() float64
}

// Session carries the inputs common to every discipline. It is immutable
// once built; duration must be positive.
type Session struct {
	action     int
	duration   float64
	weight     float64
	stepLength float64
}

// Action returns the number of recorded steps or strokes.
func (s Session) Action() int { return s.action }

// Duration returns the session length in hours.
func (s Session) Duration() float64 { return s.duration }

// Weight returns the athlete weight in kg.
func (s Session) Weight() float64 { return s.weight }

// Distance returns action * step length in km.
func (s Session) Distance() float64 {
	return float64(s.action) * s.stepLength / mInKm
}

// MeanSpeed returns the average speed over the whole session in km/h.
func (s Session) MeanSpeed() float64 {
	return s.Distance() / s.duration
}
