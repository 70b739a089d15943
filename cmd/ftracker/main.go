package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	if c.NArg() == 0 {
		return ftracker.LoadConfig(c.String("config"))
	}
	args := c.Args().Slice()
	data := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		data = append(data, val)
	}
	code := strings.ToUpper(args[0])
	return &ftracker.Config{Packages: []ftracker.Package{{Type: code, Data: data}}}, nil
}

func write(w io.Writer, msgs []ftracker.InfoMessage, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msgs)
	}
	for _, msg := range msgs {
		if _, err := fmt.Fprintln(w, msg.Message()); err != nil {
			return err
		}
	}
	return nil
}

func track(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	msgs, err := ftracker.NewTracker(cfg).Messages()
	if err != nil {
		return err
	}
	log.Info().Int("trainings", len(msgs)).Msg("tracked")
	return write(c.App.Writer, msgs, c.Bool("json"))
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ftracker",
		HelpName:  "ftracker",
		Usage:     "Fitness tracker statistics",
		ArgsUsage: "[CODE VALUE...]",
		Description: "Computes distance, speed and calories for sensor packages.\n" +
			"Supported codes: " + strings.Join(ftracker.Codes(), ", "),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "file with sensor packages",
				EnvVars: []string{"FTRACKER_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Value: false,
				Usage: "write the reports as json",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "log each training",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			).With().Str("run", uuid.NewString()).Logger()
			return nil
		},
		Action: track,
	}
}

func main() {
	app := newApp()
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
