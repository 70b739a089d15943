package ftracker

import "math"

const (
	lenStep   = 0.65
	lenStroke = 1.38
	mInKm     = 1000
	minInHour = 60

	runSpeedMultiplier = 18
	runSpeedShift      = 20

	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029

	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

const (
	errNoTime   = "duration is zero"
	errNoHeight = "height is zero"
)

// Kind identifies the type of training
type Kind int

const (
	Running Kind = iota
	SportsWalking
	Swimming
)

func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case SportsWalking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Training holds the measurements of a single workout
type Training struct {
	kind       Kind
	action     int
	duration   float64
	weight     float64
	height     float64
	poolLength float64
	poolCount  int
}

func NewRunning(action int, duration, weight float64) Training {
	return Training{kind: Running, action: action, duration: duration, weight: weight}
}

func NewSportsWalking(action int, duration, weight, height float64) Training {
	return Training{kind: SportsWalking, action: action, duration: duration, weight: weight, height: height}
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Training {
	return Training{
		kind:       Swimming,
		action:     action,
		duration:   duration,
		weight:     weight,
		poolLength: poolLength,
		poolCount:  poolCount,
	}
}

func (t Training) Kind() Kind {
	return t.kind
}

func (t Training) Duration() float64 {
	return t.duration
}

func (t Training) step() float64 {
	if t.kind == Swimming {
		return lenStroke
	}
	return lenStep
}

// Distance returns the distance covered in km
func (t Training) Distance() float64 {
	return float64(t.action) * t.step() / mInKm
}

// MeanSpeed returns the average speed in km/h
//
// Swimming speed is measured by pool lengths rather than stroke count.
func (t Training) MeanSpeed() (float64, error) {
	if t.duration == 0 {
		return 0, &DomainError{Kind: t.kind, Op: "mean speed", Reason: errNoTime}
	}
	if t.kind == Swimming {
		return t.poolLength * float64(t.poolCount) / mInKm / t.duration, nil
	}
	return t.Distance() / t.duration, nil
}

// Calories returns the energy spent in kcal
func (t Training) Calories() (float64, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return 0, err
	}
	switch t.kind {
	case SportsWalking:
		if t.height == 0 {
			return 0, &DomainError{Kind: t.kind, Op: "calories", Reason: errNoHeight}
		}
		// the speed term is floored, not divided exactly
		k := math.Floor(speed * speed / t.height)
		return (walkWeightMultiplier*t.weight + k*walkSpeedMultiplier*t.weight) * t.duration * minInHour, nil
	case Swimming:
		return (speed + swimSpeedShift) * swimWeightMultiplier * t.weight, nil
	default:
		return (runSpeedMultiplier*speed - runSpeedShift) * t.weight / mInKm * t.duration * minInHour, nil
	}
}

// Info returns a snapshot of the training statistics
func (t Training) Info() (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, err
	}
	cal, err := t.Calories()
	if err != nil {
		return InfoMessage{}, err
	}
	return InfoMessage{
		TrainingType: t.kind.String(),
		Duration:     t.duration,
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     cal,
	}, nil
}
