package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/vectormap/logger"
	flag "github.com/spf13/pflag"
)

const appName = "vectormap-demo"

type options struct {
	scenario string
	json     bool
	level    slog.Level
}

func run(out io.Writer, errOut io.Writer, args []string) int {
	if hasHelpFlag(args) {
		printHelp(out)

		return 0
	}

	opts, err := parseFlags(args)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: appName,
		JSON:      opts.json,
		MinLevel:  opts.level,
		Output:    errOut,
	})

	ctx := logger.WithSubsystem(context.Background(), appName)

	if err := runScenarios(out, logger.From(log, ctx), opts.scenario); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	return 0
}

func parseFlags(args []string) (options, error) {
	flagSet := flag.NewFlagSet(appName, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	scenario := flagSet.String("scenario", "all", "Scenario to run")
	jsonLogs := flagSet.Bool("json", false, "Log as JSON")
	levelName := flagSet.String("log-level", "info", "Minimum log level")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}

	if flagSet.NArg() > 0 {
		return options{}, fmt.Errorf("%w: %v", errUnexpectedArgs, flagSet.Args())
	}

	level, err := logger.ParseLevel(*levelName)
	if err != nil {
		return options{}, err
	}

	return options{
		scenario: *scenario,
		json:     *jsonLogs,
		level:    level,
	}, nil
}

var errUnexpectedArgs = errors.New("unexpected arguments")

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}

	return false
}

func printHelp(out io.Writer) {
	fprintln(out, "Usage: "+appName+" [options]")
	fprintln(out, "")
	fprintln(out, "Exercise the vectormap containers and print the results.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  --scenario=<name>    all|ints|strings|bools|intkey [default: all]")
	fprintln(out, "  --json               Write logs as JSON")
	fprintln(out, "  --log-level=<level>  debug|info|warn|error [default: info]")
}

func fprintln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}

func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
