package compile

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stroke-compiler/internal/codepoint"
	"stroke-compiler/internal/drawing"
	"stroke-compiler/internal/stroke"
)

// CompilerConfig holds configuration for a compile run.
type CompilerConfig struct {
	// Workers is the number of drawings parsed concurrently.
	// Values below 2 compile strictly sequentially in directory order.
	Workers int
	// CollectAll keeps compiling after a failing drawing and reports
	// every failure at the end of the run.
	CollectAll bool
	// Logger receives per-file and summary logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultCompilerConfig returns the default compiler configuration.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// Compiler compiles drawing directories into stroke tables.
type Compiler struct {
	config CompilerConfig
	log    *zap.Logger
}

// NewCompiler creates a new Compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Compiler{config: config, log: log}
}

// job is one selected drawing file.
type job struct {
	name     string
	basename string
}

// compiled is the outcome of one drawing.
type compiled struct {
	character codepoint.Identity
	records   []stroke.Record
}

// Compile compiles every drawing file in dir.
func (c *Compiler) Compile(ctx context.Context, dir string) (*Table, error) {
	return c.CompileFS(ctx, os.DirFS(dir))
}

// CompileFS compiles every drawing file at the root of fsys.
func (c *Compiler) CompileFS(ctx context.Context, fsys fs.FS) (*Table, error) {
	jobs, err := c.discover(fsys)
	if err != nil {
		return nil, err
	}

	results := make([]compiled, len(jobs))
	errs := make([]error, len(jobs))

	if c.config.Workers > 1 {
		err = c.runParallel(ctx, fsys, jobs, results, errs)
	} else {
		err = c.runSequential(ctx, fsys, jobs, results, errs)
	}
	if err != nil {
		return nil, err
	}

	table := NewTable()

	for i, j := range jobs {
		if errs[i] != nil {
			continue
		}

		r := results[i]
		if err := table.Insert(r.character.Text, r.records); err != nil {
			errs[i] = newFileError(j.name, err)
			if !c.config.CollectAll {
				return nil, errs[i]
			}
		}
	}

	if err := multierr.Combine(errs...); err != nil {
		c.log.Error("stroke compilation failed", zap.Int("failed", len(multierr.Errors(err))))
		return nil, err
	}

	c.log.Info("compiled stroke table",
		zap.Int("characters", table.Len()),
		zap.Int("drawings", len(jobs)),
	)

	return table, nil
}

// discover lists the drawing files at the root of fsys, sorted by name.
func (c *Compiler) discover(fsys fs.FS) ([]job, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing drawings: %w", err)
	}

	jobs := make([]job, 0, len(entries))

	for _, e := range entries {
		basename, ok := MatchDrawingName(e.Name())
		if !ok || e.IsDir() {
			c.log.Debug("skipping entry", zap.String("name", e.Name()))
			continue
		}

		jobs = append(jobs, job{name: e.Name(), basename: basename})
	}

	return jobs, nil
}

func (c *Compiler) runSequential(ctx context.Context, fsys fs.FS, jobs []job, results []compiled, errs []error) error {
	for i, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := c.compileFile(fsys, j)
		if err != nil {
			if !c.config.CollectAll {
				return err
			}

			errs[i] = err
			continue
		}

		results[i] = r
	}

	return nil
}

// runParallel fills results and errs by index, so the merge order matches
// the sequential run.
func (c *Compiler) runParallel(ctx context.Context, fsys fs.FS, jobs []job, results []compiled, errs []error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Workers)

	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := c.compileFile(fsys, j)
			if err != nil {
				if !c.config.CollectAll {
					return err
				}

				errs[i] = err
				return nil
			}

			results[i] = r

			return nil
		})
	}

	return g.Wait()
}

// compileFile resolves, parses and assembles one drawing.
func (c *Compiler) compileFile(fsys fs.FS, j job) (compiled, error) {
	cp, err := codepoint.ParseHex(j.basename)
	if err != nil {
		return compiled{}, newFileError(j.name, err)
	}

	id, err := codepoint.Resolve(cp)
	if err != nil {
		return compiled{}, newFileError(j.name, err)
	}

	records, err := c.parseFile(fsys, j)
	if err != nil {
		c.log.Warn("drawing rejected", zap.String("file", j.name), zap.Error(err))
		return compiled{}, newFileError(j.name, err)
	}

	c.log.Debug("compiled drawing",
		zap.String("file", j.name),
		zap.String("character", id.Text),
		zap.Int("strokes", len(records)),
	)

	return compiled{character: id, records: records}, nil
}

func (c *Compiler) parseFile(fsys fs.FS, j job) ([]stroke.Record, error) {
	f, err := fsys.Open(j.name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := drawing.ParseTree(f)
	if err != nil {
		return nil, err
	}

	d, err := drawing.Parse(j.basename, root)
	if err != nil {
		return nil, err
	}

	return d.Records()
}
