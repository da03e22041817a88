// Package main provides the CLI entry point for mjpegpack.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mjpegpack/pkg/adapters/debugsink"
	"github.com/user/mjpegpack/pkg/adapters/filesink"
	"github.com/user/mjpegpack/pkg/adapters/logger"
	"github.com/user/mjpegpack/pkg/adapters/nullsink"
	"github.com/user/mjpegpack/pkg/adapters/osfilesystem"
	"github.com/user/mjpegpack/pkg/config"
	"github.com/user/mjpegpack/pkg/jpeg"
	"github.com/user/mjpegpack/pkg/orchestrator"
	"github.com/user/mjpegpack/pkg/ports"
	"github.com/user/mjpegpack/pkg/stages/assemble"
	"github.com/user/mjpegpack/pkg/stages/scan"
	"github.com/user/mjpegpack/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "mjpegpack",
		Usage:   l10n.T("Assemble JPEG frame sequences into MJPEG streams"),
		Version: version,
		Commands: []*cli.Command{
			packCommand(),
			probeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func packCommand() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     l10n.T("Assemble a directory of JPEG frames into an MJPEG stream"),
		ArgsUsage: "<input-directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Output MJPEG file path"),
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: l10n.T("Accepted file extension, repeatable (default: .jpg, .jpeg)"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("Path to YAML configuration file"),
			},
			&cli.StringFlag{
				Name:  "summary",
				Usage: l10n.T("Output execution summary to file (Markdown format)"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Enable debug output"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Usage: l10n.T("Directory for debug output"),
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
		Action: runPack,
	}
}

func runPack(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("input directory argument is required"), 1)
	}

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	cfg.InputDir = c.Args().First()
	if cfg.OutputPath == "" {
		return cli.Exit(l10n.T("output path is required (use -o or the config file)"), 1)
	}

	// Create logger
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
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

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = debugsink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	// Create stages and orchestrator
	orch := orchestrator.New(
		scan.New(fs, log),
		assemble.New(fs, sink, log),
		func(path string) (ports.StreamSink, error) { return filesink.Create(path) },
		sink,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", cfg.OutputPath))

	if cfg.SummaryPath != "" {
		if err := writeSummary(cfg, result); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
			return err
		}
		log.Info(l10n.F("Summary saved to %s", cfg.SummaryPath))
	}

	return nil
}

// buildConfig loads the config file when given and applies CLI overrides.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("ext") {
		cfg.Extensions = c.StringSlice("ext")
	}
	if c.IsSet("summary") {
		cfg.SummaryPath = c.String("summary")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	return cfg, nil
}

func writeSummary(cfg config.Config, result orchestrator.RunResult) error {
	builder := summarizer.NewBuilder().
		WithInput(cfg.InputDir, result.Offered).
		WithOutput(summarizer.OutputInfo{
			Path:     cfg.OutputPath,
			Accepted: result.Accepted,
			Width:    result.Width,
			Height:   result.Height,
			FileSize: result.OutputBytes,
		})
	for _, r := range result.Rejects {
		builder.AddReject(filepath.Base(r.Path), r.Reason.Error())
	}

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
	return writer.Write(cfg.SummaryPath, builder.Build())
}

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Inspect a single JPEG frame and print its dimensions"),
		ArgsUsage: "<frame.jpg>",
		Action:    runProbe,
	}
}

func runProbe(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("frame file argument is required"), 1)
	}
	path := c.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read frame %s: %w", path, err)
	}

	if !jpeg.IsValid(data) {
		return cli.Exit(l10n.F("%s: not a structurally valid JPEG frame", path), 1)
	}

	dims, ok := jpeg.ExtractDimensions(data)
	if !ok {
		return cli.Exit(l10n.F("%s: no SOF0 marker found", path), 1)
	}

	fmt.Println(l10n.F("%s: %dx%d, %d bytes", path, dims.Width, dims.Height, len(data)))
	return nil
}
