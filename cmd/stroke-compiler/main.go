// Package main provides the CLI entrypoint for stroke-compiler.
//
// stroke-compiler builds the stroke order data file from a directory of
// per-character stroke order drawings:
//   - compile: parse every drawing, validate its strokes and labels, and
//     write the character to stroke table as JSON
//   - check: validate a previously written stroke data file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stroke-compiler/internal/check"
	"stroke-compiler/internal/compile"
	"stroke-compiler/internal/config"
	"stroke-compiler/internal/output"
	"stroke-compiler/internal/stroke"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `stroke-compiler - compile stroke order drawings into stroke data

Commands:
  compile [-config file.yaml] [-in dir] [-out file.json] [-workers n] [-collect-all] [-ascii] [-indent n] [-v]
  check [-dump CHAR] file.json
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "compile":
		return runCompile(ctx, args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

func runCompile(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file")
	in := fs.String("in", "", "directory of drawing files")
	out := fs.String("out", "", "stroke data JSON file to write")
	workers := fs.Int("workers", config.DefaultWorkers, "drawings parsed concurrently")
	collectAll := fs.Bool("collect-all", false, "report every failing drawing")
	ascii := fs.Bool("ascii", output.DefaultFormat().ASCII, "escape non-ASCII characters in the output")
	indent := fs.Int("indent", output.DefaultFormat().Indent, "JSON indent width, 0 for compact output")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitFail
		}
		cfg = loaded
	}

	// Flags given on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "out":
			cfg.Output = *out
		case "workers":
			cfg.Workers = *workers
		case "collect-all":
			cfg.CollectAll = *collectAll
		case "ascii":
			cfg.ASCII = ascii
		case "indent":
			cfg.Indent = indent
		case "v":
			if *verbose {
				cfg.LogLevel = zapcore.DebugLevel.String()
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level, _ := cfg.Level()
	log := newLogger(stderr, level)
	defer func() { _ = log.Sync() }()

	compiler := compile.NewCompiler(compile.CompilerConfig{
		Workers:    cfg.Workers,
		CollectAll: cfg.CollectAll,
		Logger:     log,
	})

	table, err := compiler.Compile(ctx, cfg.Input)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "interrupted")
			return exitFail
		}

		d := compile.Diagnose(err)
		d.Sort()
		fmt.Fprint(stderr, d.Report())
		fmt.Fprintf(stderr, "%d drawing(s) failed, %s not written\n", len(d.Errors), cfg.Output)

		return exitFail
	}

	if err := output.WriteFile(table.Descriptors(), cfg.Format(), cfg.Output); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}

	fmt.Fprintf(stdout, "compiled %d characters into %s\n", table.Len(), cfg.Output)

	return exitOK
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dump := fs.String("dump", "", "print the decoded strokes of one character")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	path := fs.Arg(0)

	res, err := check.CheckFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}

	res.Diagnostics.Sort()
	fmt.Fprint(stderr, res.Diagnostics.Report())
	fmt.Fprintf(stdout, "%s: %d characters, %d strokes, %d error(s), %d warning(s)\n",
		path, res.Characters, res.Strokes, len(res.Diagnostics.Errors), len(res.Diagnostics.Warnings))

	if *dump != "" {
		if code := dumpCharacter(path, *dump, stdout, stderr); code != exitOK {
			return code
		}
	}

	if res.Diagnostics.HasErrors() {
		return exitFail
	}

	return exitOK
}

func dumpCharacter(path, character string, stdout, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}

	table, err := check.Decode(data)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}

	descriptors, ok := table[character]
	if !ok {
		fmt.Fprintf(stderr, "%q not found in %s\n", character, path)
		return exitFail
	}

	records, err := stroke.ParseRecords(descriptors)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}

	spew.Fdump(stdout, records)

	return exitOK
}

// newLogger returns a console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core)
}
