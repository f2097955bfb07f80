package main

import (
	"io"
	"os"
	"strings"

	"github.com/ayn2op/rangebar"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// envPrefix is prepended to every environment variable, e.g.
// RANGEBAR_CONFIG_FILE.
const envPrefix = "RANGEBAR"

// EnvConfig holds the process configuration read from the environment.
type EnvConfig struct {
	// ConfigFile is a YAML range bar configuration.
	// Env: RANGEBAR_CONFIG_FILE
	ConfigFile string `envconfig:"CONFIG_FILE"`

	// StateFile is restored at start and written on exit.
	// Env: RANGEBAR_STATE_FILE
	StateFile string `envconfig:"STATE_FILE"`

	// LogFile receives the log, the terminal belongs to the UI.
	// Env: RANGEBAR_LOG_FILE (default: rangebar.log)
	LogFile string `envconfig:"LOG_FILE" default:"rangebar.log"`

	// LogLevel is the log verbosity level.
	// Env: RANGEBAR_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (text or json).
	// Env: RANGEBAR_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// loadDotEnv loads environment variables from a .env file. If path is empty,
// it loads ".env" in the current directory. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// loadEnv reads EnvConfig from the environment.
func loadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return EnvConfig{}, errors.Wrap(err, "load environment")
	}
	return cfg, nil
}

// loadBarConfig reads the range bar configuration from path, or returns the
// defaults if path is empty.
func loadBarConfig(path string) (rangebar.Config, error) {
	if path == "" {
		return rangebar.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return rangebar.Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := rangebar.LoadConfig(f)
	if err != nil {
		return rangebar.Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// newLogger returns a logger writing to w with the configured level and
// format.
func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return log, nil
}

// readState reads a saved range bar state. ok is false if there is none.
func readState(path string) (state rangebar.State, ok bool, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return rangebar.State{}, false, nil
	}
	if err != nil {
		return rangebar.State{}, false, errors.Wrap(err, "open state")
	}
	defer f.Close()

	state, err = rangebar.DecodeState(f)
	if err != nil {
		return rangebar.State{}, false, errors.Wrapf(err, "read state %s", path)
	}
	return state, true, nil
}

// writeState saves a range bar state to path.
func writeState(path string, state rangebar.State) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create state")
	}
	if err := rangebar.EncodeState(f, state); err != nil {
		f.Close()
		return errors.Wrapf(err, "write state %s", path)
	}
	return errors.Wrap(f.Close(), "close state")
}
