/*
Copyright © 2025 The Icinga 2 Diagnostics Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/Icinga/icinga2-diagnostics/pkg/collector"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/icinga"
	"github.com/Icinga/icinga2-diagnostics/pkg/collector/systemd"
	"github.com/Icinga/icinga2-diagnostics/pkg/defaults"
	"github.com/Icinga/icinga2-diagnostics/pkg/diagnostics"
	"github.com/Icinga/icinga2-diagnostics/pkg/logging"
	"github.com/Icinga/icinga2-diagnostics/pkg/serializer"
)

const (
	name           = "icinga-diagnostics"
	versionDefault = "0.2.0"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

const (
	flagFormat = "format"
	flagOutput = "output"
)

// Execute runs the root command with the process arguments and exits
// non-zero on failure. Called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Collect basic host and Icinga 2 diagnostics",
		Description: fmt.Sprintf(`Prints a short report about the operating system, virtualization,
CPU cores, memory and the installed Icinga 2 version.

Version: %s
Commit:  %s
Built:   %s

Run as root to get all checks; virt-what needs it.

# Examples

Print the text report:
  %[4]s

Store a JSON report and node_exporter metrics:
  %[4]s --format json --output report.json \
    --metrics-file /var/lib/node_exporter/textfile/icinga_diagnostics.prom`, version, commit, date, name),
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"t"},
				Usage:   "output format (text, json, yaml, table)",
				Sources: cli.EnvVars("ICINGA_DIAG_FORMAT"),
				Value:   string(serializer.FormatText),
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
				Sources: cli.EnvVars("ICINGA_DIAG_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "icinga-binary",
				Usage:   "Icinga 2 binary name or path",
				Sources: cli.EnvVars("ICINGA2_BIN"),
				Value:   icinga.DefaultBinary,
			},
			&cli.StringFlag{
				Name:    "service-unit",
				Usage:   "systemd unit of the Icinga 2 daemon",
				Sources: cli.EnvVars("ICINGA_DIAG_SERVICE_UNIT"),
				Value:   systemd.DefaultUnit,
			},
			&cli.BoolFlag{
				Name:  "skip-service",
				Usage: "do not query the service state over D-Bus",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "write Prometheus metrics in textfile format to this path",
				Sources: cli.EnvVars("ICINGA_DIAG_METRICS_FILE"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout per external command, 0 disables it",
				Sources: cli.EnvVars("ICINGA_DIAG_TIMEOUT"),
				Value:   defaults.ProbeTimeout,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("ICINGA_DIAG_LOG_LEVEL", logging.EnvLogLevel),
				Value:   "warn",
			},
		},
		Action: runDiagnostics,
	}
}

func runDiagnostics(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	timeout := cmd.Duration("timeout")
	if timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", timeout)
	}

	logger := newLogger(cmd.Root().ErrWriter, cmd.String("log-level"))
	logger.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	writer, err := newOutputWriter(cmd, outFormat)
	if err != nil {
		return err
	}
	defer writer.Close()

	factory := collector.NewDefaultFactory(
		collector.WithIcingaBinary(cmd.String("icinga-binary")),
		collector.WithServiceUnit(cmd.String("service-unit")),
		collector.WithTimeout(timeout),
		collector.WithLogger(logger),
	)

	runner := diagnostics.Runner{
		Version:     version,
		Factory:     factory,
		Serializer:  writer,
		SkipService: cmd.Bool("skip-service"),
		MetricsFile: cmd.String("metrics-file"),
		Logger:      logger,
	}

	if _, err := runner.Run(ctx); err != nil {
		return fmt.Errorf("diagnostics failed: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String(flagFormat))
	if err != nil {
		return "", fmt.Errorf("invalid --%s: %w", flagFormat, err)
	}
	return f, nil
}

func newOutputWriter(cmd *cli.Command, f serializer.Format) (*serializer.Writer, error) {
	path := cmd.String(flagOutput)
	if path == "" {
		return serializer.NewWriter(f, cmd.Root().Writer), nil
	}
	w, err := serializer.NewFileWriterOrStdout(f, path)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flagOutput, err)
	}
	return w, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	if w == nil {
		return logging.NewStructuredLogger(name, version, level)
	}
	return logging.NewStructuredLoggerTo(w, name, version, level)
}
