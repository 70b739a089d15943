package ftracker_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bzimmer/ftracker"
)

func TestTrackerMessages(t *testing.T) {
	a := assert.New(t)
	cfg, err := ftracker.LoadConfig("")
	require.NoError(t, err)
	require.Len(t, cfg.Packages, 3)

	msgs, err := ftracker.NewTracker(cfg).Messages()
	a.NoError(err)
	a.Equal([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}, messages(msgs))
}

func TestTrackerErrors(t *testing.T) {
	tests := []struct {
		name   string
		pkgs   []ftracker.Package
		target interface{}
	}{
		{
			name:   "unknown code",
			pkgs:   []ftracker.Package{{Type: "RUN", Data: []float64{15000, 1, 75}}, {Type: "XYZ", Data: []float64{1, 2, 3}}},
			target: new(*ftracker.UnknownWorkoutCodeError),
		},
		{
			name:   "arity",
			pkgs:   []ftracker.Package{{Type: "RUN", Data: []float64{15000, 1, 75, 4}}},
			target: new(*ftracker.ConstructionError),
		},
		{
			name:   "zero duration",
			pkgs:   []ftracker.Package{{Type: "WLK", Data: []float64{9000, 0, 75, 180}}},
			target: new(*ftracker.DomainError),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			msgs, err := ftracker.NewTracker(&ftracker.Config{Packages: tt.pkgs}).Messages()
			a.Nil(msgs)
			a.Error(err)
			a.True(errors.As(err, tt.target))
		})
	}
}

func TestTrackerEmpty(t *testing.T) {
	a := assert.New(t)
	msgs, err := ftracker.NewTracker(&ftracker.Config{}).Messages()
	a.NoError(err)
	a.Empty(msgs)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"packages.yaml": "packages:\n  - type: RUN\n    data: [15000, 1, 75]\n  - type: SWM\n    data: [720, 1, 80, 25, 40]\n",
		"packages.json": `{"packages": [{"type": "RUN", "data": [15000, 1, 75]}, {"type": "SWM", "data": [720, 1, 80, 25, 40]}]}`,
		"packages.toml": "[[packages]]\ntype = \"RUN\"\ndata = [15000, 1, 75]\n\n[[packages]]\ntype = \"SWM\"\ndata = [720, 1, 80, 25, 40]\n",
	}
	for name, body := range files {
		name, body := name, body
		t.Run(name, func(t *testing.T) {
			a := assert.New(t)
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0600))
			cfg, err := ftracker.LoadConfig(path)
			a.NoError(err)
			a.Equal([]ftracker.Package{
				{Type: "RUN", Data: []float64{15000, 1, 75}},
				{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			}, cfg.Packages)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	a := assert.New(t)
	cfg, err := ftracker.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	a.Error(err)
	a.Nil(cfg)
}

func messages(msgs []ftracker.InfoMessage) []string {
	res := make([]string, len(msgs))
	for i := range msgs {
		res[i] = msgs[i].Message()
	}
	return res
}
