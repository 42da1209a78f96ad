// Package main provides the CLI entrypoint for bls2brs.
//
// bls2brs converts a Blockland save into a Brickadia save:
//   - Reads the .bls text save (Windows-1252)
//   - Maps every brick through the built-in and user supplied rule tables
//   - Writes the converted save as YAML
//   - Reports unmapped bricks with the nearest known names
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"bls2brs/internal/blsave"
	"bls2brs/internal/brsdump"
	"bls2brs/internal/convert"
	"bls2brs/internal/diagnostic"
	"bls2brs/internal/report"
	"bls2brs/internal/rules"
)

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	input       string
	output      string
	ruleFiles   stringList
	verbose     bool
	top         int
	suggestions int
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("bls2brs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.Var(&opts.ruleFiles, "rules", "extra YAML rule file (repeatable, later files win)")
	fs.StringVar(&opts.output, "o", "", "write the converted save as YAML to this file (- for stdout)")
	fs.BoolVar(&opts.verbose, "v", false, "log every mapping decision")
	fs.IntVar(&opts.top, "top", 20, "number of unmapped names to list (-1 for all)")
	fs.IntVar(&opts.suggestions, "suggest", 3, "suggestions per unmapped name")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bls2brs [-rules extra.yaml]... [-o out.yaml] [-v] input.bls")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one input file")
	}

	opts.input = fs.Arg(0)

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	cfg := convert.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	registry, err := rules.Default()
	if err != nil {
		return err
	}

	// A broken rule file is skipped. The run still converts with the
	// remaining rules but reports the file and exits non-zero.
	var problems diagnostic.Diagnostics

	for _, path := range opts.ruleFiles {
		if err := registry.LoadFile(path); err != nil {
			cfg.Logger.Warn("skipping rule file", "path", path, "error", err)
			problems.AddError(diagnostic.CodeRuleFile, err.Error(), "")

			continue
		}

		cfg.Logger.Debug("loaded rule file", "path", path)
	}

	source, file, err := blsave.OpenFile(opts.input)
	if err != nil {
		return err
	}
	defer file.Close()

	var sink convert.Sink

	switch opts.output {
	case "":
	case "-":
		sink = brsdump.NewWriter(stdout)
	default:
		sink = brsdump.FileSink{Path: opts.output}
	}

	_, rep, err := convert.Convert(ctx, registry, source, sink, cfg)
	if err != nil {
		return err
	}

	summary := stdout
	if opts.output == "-" {
		summary = stderr
	}

	suggest := report.Suggester(registry.Names(), opts.suggestions)
	if err := rep.WriteSummary(summary, opts.top, suggest, problems); err != nil {
		return err
	}

	return problems.Error()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "bls2brs:", err)
		}

		stop()
		os.Exit(1)
	}
}
