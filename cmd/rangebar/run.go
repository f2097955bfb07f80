package main

import (
	"fmt"
	"os"

	"github.com/ayn2op/rangebar"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// The selection shown when neither a configuration file nor a saved state is
// given.
const (
	demoMinValue = 100
	demoMaxValue = 300
	demoLeft     = 150
	demoRight    = 250
)

type runOptions struct {
	envFile    string
	configFile string
	stateFile  string
	minValue   int
	maxValue   int
	left       int
	right      int
}

func runCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show a range bar",
		Long: `Show a range bar in the terminal until q is pressed.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  RANGEBAR_CONFIG_FILE   YAML range bar configuration
  RANGEBAR_STATE_FILE    State restored at start and saved on exit
  RANGEBAR_LOG_FILE      Log file (default: rangebar.log)
  RANGEBAR_LOG_LEVEL     Log level: debug, info, warn, error (default: info)
  RANGEBAR_LOG_FORMAT    Log format: text, json (default: text)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a YAML range bar configuration")
	cmd.Flags().StringVar(&opts.stateFile, "state", "", "Path to the state file")
	cmd.Flags().IntVar(&opts.minValue, "min", demoMinValue, "Lowest selectable index")
	cmd.Flags().IntVar(&opts.maxValue, "max", demoMaxValue, "Highest selectable index")
	cmd.Flags().IntVar(&opts.left, "left", demoLeft, "Initial left index")
	cmd.Flags().IntVar(&opts.right, "right", demoRight, "Initial right index")

	return cmd
}

func run(cmd *cobra.Command, opts runOptions) error {
	if err := loadDotEnv(opts.envFile); err != nil {
		return errors.Wrap(err, "load .env")
	}
	env, err := loadEnv()
	if err != nil {
		return err
	}
	if opts.configFile != "" {
		env.ConfigFile = opts.configFile
	}
	if opts.stateFile != "" {
		env.StateFile = opts.stateFile
	}

	logFile, err := os.OpenFile(env.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer logFile.Close()
	log, err := newLogger(logFile, env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}

	bar, err := newBar(cmd, opts, env, log)
	if err != nil {
		log.WithError(err).Error("cannot create range bar")
		return err
	}

	v := newView(bar)
	report := func(event string) func(left, right int) {
		return func(left, right int) {
			v.setStatus(fmt.Sprintf("%s: %d to %d", event, left, right))
			log.WithFields(logrus.Fields{"left": left, "right": right}).Info(event)
		}
	}
	bar.SetChangedFunc(report("changed"))
	bar.SetReleasedFunc(report("released"))
	left, right := bar.GetThumbIndices()
	v.setStatus(fmt.Sprintf("selected: %d to %d", left, right))

	log.Info("starting")
	if err := rangebar.NewApplication().SetRoot(v).Run(); err != nil {
		log.WithError(err).Error("application stopped")
		return errors.Wrap(err, "run application")
	}

	if env.StateFile != "" {
		if err := writeState(env.StateFile, bar.SaveState()); err != nil {
			log.WithError(err).Error("cannot save state")
			return err
		}
		log.WithField("file", env.StateFile).Info("state saved")
	}
	return nil
}

// newBar builds the range bar from the configuration file, then applies the
// saved state and finally the command line flags. Without a configuration
// file or a saved state, the bar starts with the demo selection.
func newBar(cmd *cobra.Command, opts runOptions, env EnvConfig, log logrus.FieldLogger) (*rangebar.RangeBar, error) {
	cfg, err := loadBarConfig(env.ConfigFile)
	if err != nil {
		return nil, err
	}
	if env.ConfigFile == "" {
		cfg.MinValue, cfg.MaxValue = demoMinValue, demoMaxValue
	}
	bar, err := rangebar.NewRangeBar(cfg)
	if err != nil {
		return nil, err
	}
	bar.SetLogger(log)

	restored := false
	if env.StateFile != "" {
		state, ok, err := readState(env.StateFile)
		switch {
		case err != nil:
			log.WithError(err).Warn("ignoring saved state")
		case ok:
			if err := bar.RestoreState(state); err != nil {
				log.WithError(err).Warn("ignoring saved state")
			} else {
				restored = true
			}
		}
	}
	if env.ConfigFile == "" && !restored {
		if err := bar.SetThumbIndices(demoLeft, demoRight); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("min") || flags.Changed("max") {
		minValue, maxValue := bar.GetBounds()
		if flags.Changed("min") {
			minValue = opts.minValue
		}
		if flags.Changed("max") {
			maxValue = opts.maxValue
		}
		if err := bar.SetBounds(minValue, maxValue); err != nil {
			return nil, err
		}
	}
	if flags.Changed("left") || flags.Changed("right") {
		left, right := bar.GetThumbIndices()
		if flags.Changed("left") {
			left = opts.left
		}
		if flags.Changed("right") {
			right = opts.right
		}
		if err := bar.SetThumbIndices(left, right); err != nil {
			return nil, err
		}
	}
	return bar, nil
}
