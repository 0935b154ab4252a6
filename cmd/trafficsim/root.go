package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anggasct/trafficsim"
	"github.com/anggasct/trafficsim/pkg/config"
	"github.com/anggasct/trafficsim/pkg/listeners"
	"github.com/anggasct/trafficsim/visualization"
)

// waitFunc is swapped in tests so runs do not sleep
var waitFunc trafficsim.WaitFunc = trafficsim.TimerWait

// buildRootCmd constructs the command tree; stdout carries simulation output, stderr carries logs.
func buildRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()
	var configPath string

	root := &cobra.Command{
		Use:           "trafficsim",
		Short:         "Simulate a traffic light notifying subscribed vehicles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveConfig(cmd, &cfg, configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, cfg, stdout, stderr)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	flags.String("log-level", cfg.LogLevel, "Log level: debug|info|warn|error|disabled")
	flags.String("log-format", cfg.LogFormat, "Log format: console|json")

	root.Flags().Int("rounds", cfg.Rounds, "Number of light switches")
	root.Flags().Duration("delay", time.Duration(cfg.Delay), "Pause after each switch")
	root.Flags().StringSlice("vehicles", cfg.Vehicles, "Vehicle names, comma separated")
	root.Flags().String("metrics-file", "", "Write Prometheus metrics in textfile format after the run")

	root.AddCommand(buildDotCmd(&cfg, stdout))
	return root
}

// resolveConfig layers defaults, the config file, and explicitly set flags.
func resolveConfig(cmd *cobra.Command, cfg *config.Config, path string) error {
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		*cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if f := flags.Lookup("rounds"); f != nil && f.Changed {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}
	if f := flags.Lookup("delay"); f != nil && f.Changed {
		d, _ := flags.GetDuration("delay")
		cfg.Delay = config.Duration(d)
	}
	if f := flags.Lookup("vehicles"); f != nil && f.Changed {
		cfg.Vehicles, _ = flags.GetStringSlice("vehicles")
	}
	if f := flags.Lookup("metrics-file"); f != nil && f.Changed {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}

	return cfg.Validate()
}

func runSimulation(cmd *cobra.Command, cfg config.Config, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	registry := prometheus.NewRegistry()
	metrics, err := listeners.NewMetricsListener(registry, "metrics")
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	validator := listeners.NewValidationListener()

	sim, err := trafficsim.NewSimulation(cfg.ToSimulation(),
		trafficsim.WithOutput(stdout),
		trafficsim.WithLogger(logger),
		trafficsim.WithWait(waitFunc),
		trafficsim.WithListeners(
			listeners.NewLoggingListener(logger, zerolog.DebugLevel, "audit"),
			metrics,
			validator,
		),
	)
	if err != nil {
		return err
	}

	runErr := sim.Run(cmd.Context())

	if !validator.IsValid() {
		logger.Warn().Strs("violations", validator.GetViolations()).Msg("light did not alternate")
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			logger.Error().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}

func buildDotCmd(cfg *config.Config, stdout io.Writer) *cobra.Command {
	var (
		output      string
		svg         bool
		subscribers bool
	)

	cmd := &cobra.Command{
		Use:     "dot",
		Short:   "Print the traffic light state diagram in Graphviz DOT format",
		Example: "  trafficsim dot --subscribers | dot -Tpng > light.png",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := trafficsim.NewSimulation(cfg.ToSimulation(), trafficsim.WithOutput(io.Discard))
			if err != nil {
				return err
			}

			opts := visualization.DefaultDOTOptions()
			opts.ShowSubscribers = subscribers
			generator := visualization.NewDOTGenerator(sim.Light(), opts)

			var content string
			if svg {
				content, err = generator.GenerateSVG()
			} else {
				content, err = generator.Generate()
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = io.WriteString(stdout, content)
				return err
			}
			return os.WriteFile(output, []byte(content), 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&svg, "svg", false, "Render SVG through the Graphviz dot binary")
	cmd.Flags().BoolVar(&subscribers, "subscribers", false, "Include subscribed listeners")
	return cmd
}
