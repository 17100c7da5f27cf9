// Package main provides the CLI entry point for ts-container.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/TanmayQuidich/ts-container/pkg/adapters/gstboundary"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/keyframes"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/logger"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/nullboundary"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/osfilesystem"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/redisstore"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/streamdump"
	"github.com/TanmayQuidich/ts-container/pkg/adapters/systemclock"
	"github.com/TanmayQuidich/ts-container/pkg/config"
	"github.com/TanmayQuidich/ts-container/pkg/orchestrator"
	"github.com/TanmayQuidich/ts-container/pkg/ports"
	"github.com/TanmayQuidich/ts-container/pkg/stages/feed"
	"github.com/TanmayQuidich/ts-container/pkg/stages/scan"
	"github.com/TanmayQuidich/ts-container/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "ts-container",
		Usage:   l10n.T("Feed camera frames into an MPEG-TS stream in real time"),
		Version: version,
		Commands: []*cli.Command{
			runCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCommand defines the run subcommand, the feeder proper.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  l10n.T("Run the frame feed"),
		Action: runFeed,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Config file path (YAML)"),
			},
			&cli.StringFlag{
				Name:    "frame-dir",
				Aliases: []string{"d"},
				Usage:   l10n.T("Directory the capture process writes frames into"),
			},
			&cli.StringFlag{
				Name:  "camera",
				Usage: l10n.T("Camera ID embedded in frame filenames"),
			},
			&cli.StringFlag{
				Name:  "extension",
				Usage: l10n.T("Frame file extension"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Output MPEG-TS file path"),
			},
			&cli.StringFlag{
				Name:  "frame-log",
				Usage: l10n.T("Per-frame CSV log path"),
			},
			&cli.StringFlag{
				Name:  "summary-log",
				Usage: l10n.T("Event summary CSV log path (default: beside the frame log)"),
			},
			&cli.Uint64Flag{
				Name:  "start-index",
				Usage: l10n.T("First frame index (0 = auto-detect the earliest)"),
			},
			&cli.Uint64Flag{
				Name:  "start-offset",
				Usage: l10n.T("Offset added to an auto-detected start index"),
			},
			&cli.IntFlag{
				Name:  "fps",
				Usage: l10n.T("Target frame rate"),
			},
			&cli.Uint64Flag{
				Name:  "max-frames",
				Usage: l10n.T("Stop after this many frames (0 = unbounded)"),
			},
			&cli.BoolFlag{
				Name:  "all-frames",
				Usage: l10n.T("Feed every frame instead of keyframes only"),
			},
			&cli.StringFlag{
				Name:  "boundary",
				Usage: l10n.T("Pipeline boundary (gst, dump, null)"),
			},
			&cli.BoolFlag{
				Name:  "no-audio",
				Usage: l10n.T("Disable the RTP audio branch"),
			},
			&cli.StringFlag{
				Name:  "metadata-addr",
				Usage: l10n.T("Metadata store address (enables metadata lookups)"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("Output execution summary to file (Markdown format)"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
	}
}

// runFeed executes the run command.
func runFeed(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	clock := systemclock.New()
	classifier := buildClassifier(cfg)
	boundary := buildBoundary(cfg, fs, log)

	// Metadata store is opt-in; without one every record is all-sentinel
	var store ports.MetadataStore
	if cfg.Metadata.Enabled {
		redisStore, err := redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.Metadata.Addr,
			Password: cfg.Metadata.Password,
			DB:       cfg.Metadata.DB,
		})
		if err != nil {
			return err
		}
		defer redisStore.Close()
		store = redisStore
	}

	// Create stages
	scanStage := scan.New(fs, log)
	feedStage := feed.New(cfg.ToFeedConfig(), fs, clock, classifier, store, boundary, log)

	// Create orchestrator
	orch := orchestrator.New(scanStage, feedStage, boundary, log)

	// Run pipeline
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
		if err := writer.Write(path, buildSummary(cfg, result)); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}

	if cfg.OutputPath != "" {
		log.Info(l10n.F("Output saved to %s", cfg.OutputPath))
	}
	return nil
}

// buildSummary assembles the run report from the config and run result.
func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	achieved := 0.0
	if result.Elapsed > 0 {
		achieved = float64(result.FramesEmitted) / result.Elapsed.Seconds()
	}

	feedCfg := cfg.ToFeedConfig()
	return summarizer.NewBuilder().
		WithRun(result.RunID, cfg.CameraID).
		WithInput(summarizer.InputInfo{
			Directory:    cfg.FrameDir,
			Extension:    cfg.Extension,
			StartIndex:   result.StartIndex,
			FilesSeen:    result.FilesSeen,
			TargetFPS:    cfg.FPS,
			KeyframeOnly: cfg.KeyframeOnly,
		}).
		WithFeed(summarizer.FeedInfo{
			FramesEmitted: result.FramesEmitted,
			FramesSkipped: result.FramesSkipped,
			SummaryRows:   result.SummaryRows,
			BehindTicks:   result.BehindTicks,
			NextIndex:     result.NextIndex,
			ElapsedMs:     result.Elapsed.Milliseconds(),
			AchievedFPS:   achieved,
		}).
		WithOutput(summarizer.OutputInfo{
			StreamPath:   cfg.OutputPath,
			FrameLog:     feedCfg.FrameLog,
			SummaryLog:   feedCfg.SummaryLog,
			Boundary:     cfg.Boundary,
			AudioEncoder: result.AudioEncoder,
			FallbackUsed: result.FallbackUsed,
		}).
		Build()
}

// buildConfig loads the config file if given and applies flag overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override both defaults and file values
	if c.IsSet("frame-dir") {
		cfg.FrameDir = c.String("frame-dir")
	}
	if c.IsSet("camera") {
		cfg.CameraID = c.String("camera")
	}
	if c.IsSet("extension") {
		cfg.Extension = c.String("extension")
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("frame-log") {
		cfg.FrameLog = c.String("frame-log")
	}
	if c.IsSet("summary-log") {
		cfg.SummaryLog = c.String("summary-log")
	}
	if c.IsSet("start-index") {
		cfg.StartIndex = c.Uint64("start-index")
	}
	if c.IsSet("start-offset") {
		cfg.StartOffset = c.Uint64("start-offset")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("max-frames") {
		cfg.MaxFrames = c.Uint64("max-frames")
	}
	if c.Bool("all-frames") {
		cfg.KeyframeOnly = false
	}
	if c.IsSet("boundary") {
		cfg.Boundary = c.String("boundary")
	}
	if c.Bool("no-audio") {
		cfg.Audio.Enabled = false
	}
	if c.IsSet("metadata-addr") {
		cfg.Metadata.Enabled = true
		cfg.Metadata.Addr = c.String("metadata-addr")
	}

	return cfg, nil
}

// buildClassifier selects the keyframe classifier for the configured mode.
func buildClassifier(cfg config.Config) ports.KeyframeClassifier {
	if cfg.Keyframe.Mode == "bitstream" {
		return keyframes.NewHEVC()
	}
	return keyframes.NewSize(cfg.Keyframe.Threshold)
}

// buildBoundary selects the pipeline boundary for the configured mode.
func buildBoundary(cfg config.Config, fs ports.FileSystem, log ports.Logger) ports.PipelineBoundary {
	switch cfg.Boundary {
	case "dump":
		return streamdump.New(fs, cfg.OutputPath)
	case "null":
		return nullboundary.New()
	default:
		return gstboundary.New(gstboundary.Config{
			OutputPath: cfg.OutputPath,
			Audio: gstboundary.AudioConfig{
				Enabled:         cfg.Audio.Enabled,
				Port:            cfg.Audio.Port,
				MulticastGroup:  cfg.Audio.MulticastGroup,
				JitterLatencyMs: cfg.Audio.JitterLatencyMs,
				BitRate:         cfg.Audio.BitRate,
			},
			Mux: gstboundary.MuxConfig{
				PATInterval:   cfg.Mux.PATInterval,
				PCRInterval:   cfg.Mux.PCRInterval,
				ProgramNumber: cfg.Mux.ProgramNumber,
				PCRPID:        cfg.Mux.PCRPID,
				VideoPID:      cfg.Mux.VideoPID,
				AudioPID:      cfg.Mux.AudioPID,
			},
		}, log)
	}
}
