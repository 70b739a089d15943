package ftracker

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type Tracker struct {
	config *Config
}

func NewTracker(config *Config) *Tracker {
	return &Tracker{config: config}
}

func (t *Tracker) message(pkg Package) (InfoMessage, error) {
	training, err := ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return InfoMessage{}, err
	}
	return training.Info()
}

// Messages returns the report for every package in the order they were read
func (t *Tracker) Messages() ([]InfoMessage, error) {
	res := make([]InfoMessage, 0, len(t.config.Packages))
	for i, pkg := range t.config.Packages {
		msg, err := t.message(pkg)
		if err != nil {
			return nil, fmt.Errorf("package %d (%s): %w", i, pkg.Type, err)
		}
		log.Debug().
			Int("index", i).
			Str("type", msg.TrainingType).
			Float64("distance", msg.Distance).
			Float64("calories", msg.Calories).
			Msg("training")
		res = append(res, msg)
	}
	return res, nil
}
