// Package ftracker computes distance, speed and calories from fitness tracker readings
package ftracker

import (
	"bytes"
	"embed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

//go:embed etc/packages.yaml
var Content embed.FS

const defaultConfig = "etc/packages.yaml"

// LoadConfig reads the packages from the file at path or the embedded defaults if path is empty
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	switch path {
	case "":
		log.Info().Str("file", defaultConfig).Msg("config")
		val, err := Content.ReadFile(defaultConfig)
		if err != nil {
			return nil, err
		}
		v.SetConfigType("yaml")
		if err = v.ReadConfig(bytes.NewReader(val)); err != nil {
			return nil, err
		}
	default:
		log.Info().Str("file", path).Msg("config")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
