// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/algoviz/config"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the resolved settings shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	envPath     string
	pacing      time.Duration
	frameRate   float64
	directed    bool
	logLevel    string
	logFormat   string
	color       bool
	metricsAddr string

	cfg    config.Config
	log    logr.Logger
	zapLog *zap.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: logr.Discard()}

	root := &cobra.Command{
		Use:           "algoviz",
		Short:         "Animate BFS, DFS and Dijkstra over a graph in the terminal",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.zapLog != nil {
				_ = a.zapLog.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.StringVar(&a.envPath, "env-file", "", ".env file overlaying the configuration")
	f.DurationVar(&a.pacing, "pacing", config.DefaultPacing, "delay between two traversal steps")
	f.Float64Var(&a.frameRate, "frame-rate", config.DefaultFrameRate, "maximum frames per second")
	f.BoolVar(&a.directed, "directed", false, "treat edges as directed")
	f.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	f.StringVar(&a.logFormat, "log-format", config.DefaultLogFormat, "console or json")
	f.BoolVar(&a.color, "color", false, "colour state names with ANSI escapes")
	f.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during a run")

	root.AddCommand(newRunCmd(a), newDemoCmd(a), newVersionCmd(a))
	return root
}

// setup resolves the configuration (flags set on the command line win over
// every other source) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.envPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("pacing") {
		cfg.Pacing = a.pacing
	}
	if f.Changed("frame-rate") {
		cfg.FrameRate = a.frameRate
	}
	if f.Changed("directed") {
		cfg.Directed = a.directed
	}
	if f.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zl, err := newZapLogger(cfg, a.errOut)
	if err != nil {
		return err
	}
	a.zapLog = zl
	a.log = zapr.NewLogger(zl)
	return nil
}

// newZapLogger builds a development (console) or production (json) zap
// logger writing to w.
func newZapLogger(cfg config.Config, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	var enc zapcore.Encoder
	opts := []zap.Option{zap.AddCaller()}
	if cfg.LogFormat == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl), opts...), nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := io.WriteString(a.out, "algoviz "+version+"\n")
			return err
		},
	}
}
