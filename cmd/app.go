package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/logging"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/enroll/pkg/config"
	"github.com/grovetools/enroll/pkg/console"
)

// app carries the resolved settings shared by all commands.
type app struct {
	cfg        config.Config
	configPath string
	opts       cli.CommandOptions
	logger     *logrus.Entry

	in     io.Reader
	out    io.Writer
	styled bool
}

func newApp(cmd *cobra.Command, flags *config.Flags) (*app, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	opts := cli.GetOptions(cmd)
	cfg, path, err := flags.Resolve(wd, opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Verbose {
		cfg.Debug = true
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug, opts.JSONOutput)
	logger.WithFields(logrus.Fields{
		"config":    path,
		"data_file": cfg.DataFile,
	}).Debug("configuration resolved")

	a := &app{
		cfg:        cfg,
		configPath: path,
		opts:       opts,
		logger:     logger,
		in:         cmd.InOrStdin(),
		out:        cmd.OutOrStdout(),
	}
	a.styled = !cfg.Plain && !opts.JSONOutput && isTerminal(a.out)
	return a, nil
}

// newLogger returns the command logger. Its level is fixed here, before the
// first entry is written: debug goes to w, everything else is discarded.
func newLogger(w io.Writer, debug, jsonFormat bool) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logging.TextFormatter{Config: logging.FormatConfig{DisableTimestamp: true}})
	}
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetOutput(w)
	}
	return logger.WithField("component", "enroll")
}

func (a *app) console() *console.Console {
	return console.New(a.in, a.out,
		console.WithWidth(a.cfg.SeparatorWidth),
		console.WithStyles(a.styled),
		console.WithLogger(a.logger.WithField("component", "console")),
	)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
