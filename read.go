package ftracker

import "sort"

type reader struct {
	kind  Kind
	arity int
	read  func(data []float64) Training
}

var readers = map[string]reader{
	"RUN": {kind: Running, arity: 3, read: func(d []float64) Training {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {kind: SportsWalking, arity: 4, read: func(d []float64) Training {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
	"SWM": {kind: Swimming, arity: 5, read: func(d []float64) Training {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
	}},
}

// ReadPackage creates the training matching the workout code from the sensor data
func ReadPackage(code string, data []float64) (Training, error) {
	r, ok := readers[code]
	if !ok {
		return Training{}, &UnknownWorkoutCodeError{Code: code}
	}
	if len(data) != r.arity {
		return Training{}, &ConstructionError{Kind: r.kind, Want: r.arity, Got: len(data)}
	}
	return r.read(data), nil
}

// Codes returns the supported workout codes
func Codes() []string {
	codes := make([]string, 0, len(readers))
	for code := range readers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
