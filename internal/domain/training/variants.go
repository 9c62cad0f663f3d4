package training

// Running formula coefficients.
const (
	runSpeedMultiplier = 18
	runSpeedShift      = 1.79
)

// Sports walking formula coefficients.
const (
	walkWeightShift      = 0.035
	walkWeightMultiplier = 0.029
	// kmhInMs converts km/h to m/s, rounded to three places.
	kmhInMs = 0.278
)

// Swimming formula coefficients.
const (
	swimSpeedShift      = 1.1
	swimSpeedMultiplier = 2
)

var (
	_ Calculator = Running{}
	_ Calculator = SportsWalking{}
	_ Calculator = Swimming{}
)

// Running is a running session.
type Running struct {
	Session
}

// NewRunning builds a running session.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Session: Session{action: action, duration: duration, weight: weight, stepLength: stepLengthM}}
}

// Kind implements Calculator.
func (Running) Kind() Kind { return KindRunning }

// SpentCalories implements Calculator.
func (r Running) SpentCalories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() + runSpeedShift) *
		r.weight / mInKm *
		r.duration * minInH
}

// SportsWalking is a sports walking session; height is in cm.
type SportsWalking struct {
	Session
	height float64
}

// NewSportsWalking builds a sports walking session.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Session: Session{action: action, duration: duration, weight: weight, stepLength: stepLengthM},
		height:  height,
	}
}

// Height returns the athlete height in cm.
func (w SportsWalking) Height() float64 { return w.height }

// Kind implements Calculator.
func (SportsWalking) Kind() Kind { return KindSportsWalking }

// SpentCalories implements Calculator. A zero height yields +Inf.
func (w SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * kmhInMs
	return (walkWeightShift*w.weight +
		speedMs*speedMs/(w.height/cmInM)*walkWeightMultiplier*w.weight) *
		w.duration * minInH
}

// Swimming is a pool swimming session: poolLength in m, poolCount laps.
type Swimming struct {
	Session
	poolLength float64
	poolCount  int
}

// NewSwimming builds a swimming session.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Swimming {
	return Swimming{
		Session:    Session{action: action, duration: duration, weight: weight, stepLength: strokeLengthM},
		poolLength: poolLength,
		poolCount:  poolCount,
	}
}

// PoolLength returns the pool length in m.
func (s Swimming) PoolLength() float64 { return s.poolLength }

// PoolCount returns the number of pool lengths swum.
func (s Swimming) PoolCount() int { return s.poolCount }

// Kind implements Calculator.
func (Swimming) Kind() Kind { return KindSwimming }

// MeanSpeed is derived from pool laps rather than strokes.
func (s Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolCount) / mInKm / s.duration
}

// SpentCalories implements Calculator.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimSpeedMultiplier * s.weight * s.duration
}
