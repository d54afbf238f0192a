package runcmder

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/streamcast/cmd/streamcast/configpath"
	"github.com/papercomputeco/streamcast/pkg/client"
	"github.com/papercomputeco/streamcast/pkg/config"
	"github.com/papercomputeco/streamcast/pkg/logger"
	"github.com/papercomputeco/streamcast/pkg/script"
	"github.com/papercomputeco/streamcast/pkg/stream"
	"github.com/papercomputeco/streamcast/pkg/wire"
)

const runLongDesc string = `Play a script to a stream sink.

Each fragment is POSTed to the sink's /api/agent/stream/data endpoint
as {"data": "..."} with the configured X-API-Key, then the fragment's
delay is waited before the next one. The first failed send stops the
run.

Configuration is read from streamcast.toml (or --config), then
STREAMCAST_* environment variables, then flags.

Examples:
  streamcast run --endpoint http://localhost:6070 --api-key dev
  streamcast run --speed 4
  streamcast run --script ./demo.toml --no-delay`

const runShortDesc string = "Stream a script to a sink"

type runCommander struct {
	configPath string
	endpoint   string
	apiKey     string
	speed      float64
	noDelay    bool
	lifecycle  bool
	scriptName string
	debug      bool
}

func NewRunCmd() *cobra.Command {
	cmder := &runCommander{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: runShortDesc,
		Long:  runLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&cmder.endpoint, "endpoint", "", "Sink base URL")
	cmd.Flags().StringVar(&cmder.apiKey, "api-key", "", "API key sent as X-API-Key")
	cmd.Flags().Float64Var(&cmder.speed, "speed", 1, "Pacing speed multiplier (0 disables delays)")
	cmd.Flags().BoolVar(&cmder.noDelay, "no-delay", false, "Send fragments back to back")
	cmd.Flags().BoolVar(&cmder.lifecycle, "lifecycle", false, "Start and end a broadcast room around the run")
	cmd.Flags().StringVarP(&cmder.scriptName, "script", "s", script.DefaultName, "Built-in script name or path to a TOML script")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *runCommander) run(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewLoggerTo(cmd.ErrOrStderr(), c.debug).With(zap.String("run_id", uuid.NewString()))
	defer log.Sync()

	// Measured on a fresh copy so the script that is sent stays unconsumed.
	measured, err := script.Resolve(c.scriptName)
	if err != nil {
		return err
	}
	stats := stream.Measure(measured)

	s, err := script.Resolve(c.scriptName)
	if err != nil {
		return err
	}

	sinkClient := client.New(cfg, log)
	streamer := stream.New(sinkClient,
		stream.WithPacer(stream.PacerFor(cfg.Speed)),
		stream.WithLogger(log),
	)

	log.Info("starting run",
		zap.String("script", c.scriptName),
		zap.String("endpoint", cfg.BaseURL()),
		zap.Stringer("api_key", cfg.APIKey),
		zap.Int("fragments", stats.Fragments),
		zap.Float64("speed", cfg.Speed),
	)

	out := termenv.NewOutput(cmd.OutOrStdout())
	fmt.Fprintln(out, out.String(fmt.Sprintf("Streaming %s to %s (%d fragments, %s, ~%s)...",
		c.scriptName, cfg.BaseURL(), stats.Fragments,
		humanize.Bytes(uint64(stats.Bytes)), scaled(stats.TotalDelay, cfg.Speed))).Bold())

	if cfg.Lifecycle.Enabled {
		started, err := sinkClient.StartStream(ctx, wire.StartRequest{
			Title: cfg.Lifecycle.Title,
			Cols:  cfg.Lifecycle.Cols,
			Rows:  cfg.Lifecycle.Rows,
		})
		if err != nil {
			log.Error("could not start stream", zap.Error(err))
			return fmt.Errorf("could not start stream: %w", err)
		}
		log.Info("stream started",
			zap.String("room_id", started.RoomID),
			zap.String("watch_url", started.WatchURL),
		)
	}

	summary, err := streamer.Run(ctx, stream.Once(s))
	if err != nil {
		log.Error("stream halted",
			zap.Int("sent", summary.Sent),
			zap.Duration("elapsed", summary.Elapsed),
			zap.Error(err),
		)
		return fmt.Errorf("stream halted after %d of %d fragments: %w", summary.Sent, stats.Fragments, err)
	}

	if cfg.Lifecycle.Enabled {
		if err := sinkClient.EndStream(ctx); err != nil {
			log.Error("could not end stream", zap.Error(err))
			return fmt.Errorf("could not end stream: %w", err)
		}
	}

	fmt.Fprintln(out, out.String(fmt.Sprintf("✅ Stream complete! Sent %d fragments (%s) in %s",
		summary.Sent, humanize.Bytes(uint64(summary.Bytes)), summary.Elapsed.Round(time.Millisecond))).
		Bold().Foreground(out.Color("2")))

	return nil
}

// loadConfig layers flags that were set explicitly over file and environment.
func (c *runCommander) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := configpath.ResolveConfigPath(c.configPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = c.endpoint
	}
	if flags.Changed("api-key") {
		cfg.APIKey = config.SecretString(c.apiKey)
	}
	if flags.Changed("speed") {
		cfg.Speed = c.speed
	}
	if c.noDelay {
		cfg.Speed = 0
	}
	if flags.Changed("lifecycle") {
		cfg.Lifecycle.Enabled = c.lifecycle
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func scaled(d time.Duration, speed float64) time.Duration {
	if speed == 0 {
		return 0
	}
	return time.Duration(float64(d) / speed).Round(time.Second)
}
