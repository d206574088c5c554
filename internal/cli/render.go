package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgkit/pkg/buildinfo"
	"github.com/matzehuels/svgkit/pkg/cache"
	"github.com/matzehuels/svgkit/pkg/diag"
	"github.com/matzehuels/svgkit/pkg/errors"
	pkgio "github.com/matzehuels/svgkit/pkg/io"
	"github.com/matzehuels/svgkit/pkg/observability"
	"github.com/matzehuels/svgkit/pkg/scene"
	"github.com/matzehuels/svgkit/pkg/svg"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file, "-" for stdout; defaults to the scene name with .svg
	indent      string // indent unit, overrides the scene's
	metricsFile string // Prometheus textfile to write after rendering
	strict      bool   // fail when the build reports any diagnostic
	cache       cacheOpts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene file to SVG",
		Long: `Render builds a TOML or YAML scene and writes the SVG document.

Diagnostics are logged as warnings and do not stop the render unless
--strict is set. Clean renders are cached by scene content, indent and
svgkit version.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().StringVar(&opts.indent, "indent", "", "indent unit (default: the scene's, else two spaces)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if the build reports any diagnostic")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&opts.cache.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.cache.redisURL, "redis-url", "", "use a shared Redis render cache (redis://host:port/db)")

	return cmd
}

// outputPath derives the document path from the flag and the scene path.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.metricsFile != "" {
		if err := errors.ValidatePath(opts.metricsFile); err != nil {
			return err
		}
		hooks := observability.NewPromHooks()
		observability.SetBuildHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer func() {
			if err := hooks.WriteTextfile(opts.metricsFile); err != nil {
				logger.Warn("could not write metrics", "path", opts.metricsFile, "err", err)
			}
			observability.Reset()
		}()
	}

	out := outputPath(opts.output, input)
	if out != stdoutPath {
		if err := errors.ValidatePath(out); err != nil {
			return err
		}
	}

	format, err := errors.ValidateSceneFilename(input)
	if err != nil {
		return err
	}
	src, err := pkgio.ReadFile(input)
	if err != nil {
		return err
	}

	store, backend, err := openCache(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer store.Close()

	indent := opts.indent
	key := cache.RenderKey(src, indent, buildinfo.CacheTag())

	doc, hit := c.cached(ctx, store, backend, key)
	elements, diagnostics := 0, 0
	if !hit {
		var rec *diag.Recorder
		doc, elements, rec, err = c.build(ctx, input, src, format, indent)
		if err != nil {
			return err
		}
		diagnostics = rec.Count()
		if opts.strict && diagnostics > 0 {
			return errors.New(errors.ErrCodeInvalidScene, "%s: %d diagnostics in strict mode", input, diagnostics)
		}
		if diagnostics == 0 {
			c.store(ctx, store, backend, key, doc)
		}
	}

	if err := c.write(ctx, out, doc); err != nil {
		return err
	}
	if out == stdoutPath {
		return nil
	}

	prog.done("Rendered " + input)
	printSuccess(c.out, "Rendered %s", input)
	printStats(c.out, elements, diagnostics, hit)
	printFile(c.out, out)
	return nil
}

// build parses and builds the scene, forwarding diagnostics to the logger,
// the build hooks and a recorder.
func (c *CLI) build(ctx context.Context, name string, src []byte, format, indent string) ([]byte, int, *diag.Recorder, error) {
	logger := loggerFromContext(ctx)

	s, err := scene.Parse(src, format)
	if err != nil {
		return nil, 0, nil, err
	}
	s.Name = name
	if indent != "" {
		s.Indent = indent
	}

	rec := &diag.Recorder{}
	sink := diag.Multi(rec, diag.NewLogSink(logger), observability.DiagnosticSink(ctx))
	canvas, err := s.BuildContext(ctx, svg.NewBuilder(svg.WithSink(sink)))
	if err != nil {
		return nil, 0, nil, err
	}
	logger.Debug("built scene", "scene", name, "elements", len(canvas.Members()), "definitions", len(canvas.Definitions()))

	var buf bytes.Buffer
	if err := pkgio.Write(&buf, canvas); err != nil {
		return nil, 0, nil, err
	}
	return buf.Bytes(), len(canvas.Members()), rec, nil
}

// cached looks up a rendered document. Cache failures are logged and
// treated as misses.
func (c *CLI) cached(ctx context.Context, store cache.Cache, backend, key string) ([]byte, bool) {
	logger := loggerFromContext(ctx)

	var data []byte
	var hit bool
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = store.Get(ctx, key)
		return err
	})
	if err != nil {
		logger.Warn("cache lookup failed", "backend", backend, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, backend)
		logger.Debug("cache hit", "backend", backend, "key", key)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, backend)
	return nil, false
}

func (c *CLI) store(ctx context.Context, store cache.Cache, backend, key string, doc []byte) {
	if err := store.Set(ctx, key, doc, cacheTTL); err != nil {
		loggerFromContext(ctx).Warn("cache store failed", "backend", backend, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, backend, len(doc))
}

// write sends doc to path, or to the CLI output for "-".
func (c *CLI) write(ctx context.Context, path string, doc []byte) error {
	if path == stdoutPath {
		return pkgio.Write(c.out, bytes.NewReader(doc))
	}
	err := pkgio.Export(path, bytes.NewReader(doc))
	observability.Build().OnExport(ctx, path, len(doc), err)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
