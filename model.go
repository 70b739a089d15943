package ftracker

// InfoMessage is a snapshot of a completed training calculation
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Package is a single raw reading from the sensors
type Package struct {
	Type string    `json:"type" mapstructure:"type"`
	Data []float64 `json:"data" mapstructure:"data"`
}

type Config struct {
	Packages []Package `json:"packages" mapstructure:"packages"`
}
