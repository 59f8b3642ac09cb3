package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DictionaryConfig holds lexicon source locations and resolution policy.
type DictionaryConfig struct {
	WordLocation   string `yaml:"word_location"   env:"DICT_WORD_LOCATION"   env-required:"true"`
	FillerLocation string `yaml:"filler_location" env:"DICT_FILLER_LOCATION" env-required:"true"`

	// AddendaLocationsRaw is a comma-separated list of addenda sources.
	// Accepted for configuration compatibility; the loader never reads them.
	AddendaLocationsRaw string `yaml:"addenda_locations" env:"DICT_ADDENDA_LOCATIONS"`

	// AddSilEnding duplicates every word pronunciation with a trailing
	// silence unit.
	AddSilEnding bool `yaml:"add_sil_ending" env:"DICT_ADD_SIL_ENDING" env-default:"false"`

	// Replacement is looked up instead of any missing spelling when set.
	Replacement string `yaml:"replacement" env:"DICT_REPLACEMENT"`

	AllowMissing  bool `yaml:"allow_missing"  env:"DICT_ALLOW_MISSING"  env-default:"false"`
	CreateMissing bool `yaml:"create_missing" env:"DICT_CREATE_MISSING" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AddendaLocations returns the parsed addenda list, empty entries dropped.
func (c DictionaryConfig) AddendaLocations() []string {
	if strings.TrimSpace(c.AddendaLocationsRaw) == "" {
		return nil
	}
	parts := strings.Split(c.AddendaLocationsRaw, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
