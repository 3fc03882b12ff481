// Command wavefield renders frames of the animated sine-wave surface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/wavefield"
	"github.com/gogpu/wavefield/animation"
	"github.com/gogpu/wavefield/colormap"
	"github.com/gogpu/wavefield/colorspace"
	"github.com/gogpu/wavefield/export"
	"github.com/gogpu/wavefield/internal/config"
)

type flags struct {
	config  string
	frame   int
	animate int
	solid   string
	legend  int
	workers int
}

func main() {
	var f flags
	cfg := config.Default()

	flag.StringVar(&f.config, "config", "", "TOML config file (flags override it)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	flag.Var(float32Value{&cfg.GridIncrement}, "grid", "grid increment")
	flag.IntVar(&cfg.TotalFrames, "frames", cfg.TotalFrames, "total frames in one cycle")
	flag.IntVar(&f.frame, "frame", 0, "frame index to render, -1 for all")
	flag.Var(float32Value{&cfg.Alpha}, "alpha", "alpha weight in [0, 1]")
	flag.BoolVar(&cfg.Cache, "cache", cfg.Cache, "cache frames (uses memory)")
	flag.IntVar(&cfg.CacheCapacity, "cache-capacity", cfg.CacheCapacity, "max cached frames, 0 for unbounded")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second for -animate")
	flag.IntVar(&f.animate, "animate", 0, "render this many animation ticks at -fps")
	flag.StringVar(&cfg.Output.Dir, "out", cfg.Output.Dir, "output directory")
	flag.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "image format: png, bmp or tiff")
	flag.IntVar(&cfg.Output.Scale, "scale", cfg.Output.Scale, "integer upscale factor")
	flag.BoolVar(&cfg.Output.Dump, "dump", cfg.Output.Dump, "also write magnitude grids (.grid.zst)")
	flag.StringVar(&f.solid, "solid", "", "render a solid surface of this color name instead")
	flag.IntVar(&f.legend, "legend", 0, "print this many colormap stops and exit")
	flag.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "parallel renderers for -frame -1")
	flag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	flag.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "log to a rotating file instead of stderr")
	flag.Parse()

	if f.config != "" {
		var err error
		if cfg, err = loadWithFlags(f.config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()
	wavefield.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, f); err != nil {
		logger.Error("wavefield failed", "err", err)
		closeLog()
		os.Exit(1)
	}
}

// loadWithFlags loads the config file and re-applies the flags that were set
// on the command line.
func loadWithFlags(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("overrides", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "")
	fs.Var(float32Value{&cfg.GridIncrement}, "grid", "")
	fs.IntVar(&cfg.TotalFrames, "frames", cfg.TotalFrames, "")
	fs.Var(float32Value{&cfg.Alpha}, "alpha", "")
	fs.BoolVar(&cfg.Cache, "cache", cfg.Cache, "")
	fs.IntVar(&cfg.CacheCapacity, "cache-capacity", cfg.CacheCapacity, "")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "")
	fs.StringVar(&cfg.Output.Dir, "out", cfg.Output.Dir, "")
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "")
	fs.IntVar(&cfg.Output.Scale, "scale", cfg.Output.Scale, "")
	fs.BoolVar(&cfg.Output.Dump, "dump", cfg.Output.Dump, "")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "")
	fs.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "")

	var args []string
	flag.Visit(func(fl *flag.Flag) {
		if fs.Lookup(fl.Name) != nil {
			args = append(args, "-"+fl.Name+"="+fl.Value.String())
		}
	})
	return cfg, fs.Parse(args)
}

// float32Value is a flag.Value for float32 settings.
type float32Value struct{ p *float32 }

func (v float32Value) String() string {
	if v.p == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*v.p), 'g', -1, 32)
}

func (v float32Value) Set(s string) error {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*v.p = float32(f)
	return nil
}

func newLogger(c config.Log) (*slog.Logger, func()) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid log level, using info\n", c.Level)
		lvl = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    32, // MB
			MaxBackups: 1,
		}
		w = lj
		closeFn = func() { _ = lj.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn
}

func run(ctx context.Context, cfg config.Config, f flags) error {
	if f.legend > 0 {
		fmt.Println(strings.Join(colormap.Legend(colormap.Spectrum{}, f.legend), " "))
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	r := renderer{cfg: cfg, format: format}

	switch {
	case f.solid != "":
		return r.solid(f.solid)
	case f.animate > 0:
		return r.animate(ctx, f.animate)
	case f.frame < 0:
		return r.all(ctx, f.workers)
	default:
		return r.frame(wavefield.NewField(cfg.FieldOptions()...), f.frame)
	}
}

type renderer struct {
	cfg    config.Config
	format export.Format
}

func (r renderer) frame(field *wavefield.Field, index int) error {
	start := time.Now()
	p := r.cfg.Params(index)

	pm, err := field.Rasterize(p, r.cfg.Alpha)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("frame_%04d", index)
	if err := r.writeImage(name, pm); err != nil {
		return err
	}

	if r.cfg.Output.Dump {
		mags, err := field.Magnitudes(p)
		if err != nil {
			return err
		}
		if err := r.writeGrid(name, export.GridDump{Params: p, Magnitudes: mags}); err != nil {
			return err
		}
	}

	wavefield.Logger().Debug("frame rendered", "frame", index, "elapsed", time.Since(start))
	return nil
}

// all renders every frame of the cycle. Each worker owns its Field since a
// Field is not safe for concurrent use.
func (r renderer) all(ctx context.Context, workers int) error {
	workers = max(1, min(workers, r.cfg.TotalFrames))
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			field := wavefield.NewField(r.cfg.FieldOptions()...)
			for i := w; i < r.cfg.TotalFrames; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := r.frame(field, i); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	wavefield.Logger().Info("rendered all frames", "frames", r.cfg.TotalFrames, "dir", r.cfg.Output.Dir)
	return nil
}

var errDone = errors.New("done")

func (r renderer) animate(ctx context.Context, ticks int) error {
	field := wavefield.NewField(r.cfg.FieldOptions()...)
	anim := animation.New(r.cfg.TotalFrames, r.cfg.FPS)

	n := 0
	err := anim.Run(ctx, func(frame int) error {
		if err := r.frame(field, frame); err != nil {
			return err
		}
		n++
		if n == ticks {
			return errDone
		}
		return nil
	})
	if errors.Is(err, errDone) {
		err = nil
	}

	s := field.CacheStats().Images
	wavefield.Logger().Info("animation finished", "ticks", n, "image_cache_hits", s.Hits, "image_cache_len", s.Len)
	return err
}

func (r renderer) solid(name string) error {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown color %q", name)
	}

	alpha := colorspace.DecimalToOctet(r.cfg.Alpha)
	pm, err := wavefield.SolidSurface(r.cfg.Width, r.cfg.Height, colorspace.ColorU8{R: c.R, G: c.G, B: c.B}.WithAlpha(alpha))
	if err != nil {
		return err
	}
	return r.writeImage("solid_"+strings.ToLower(name), pm)
}

func (r renderer) writeImage(name string, img image.Image) error {
	path := filepath.Join(r.cfg.Output.Dir, name+r.format.Ext())
	return writeFile(path, func(w io.Writer) error {
		return export.Encode(w, export.Scale(img, r.cfg.Output.Scale), r.format)
	})
}

func (r renderer) writeGrid(name string, d export.GridDump) error {
	path := filepath.Join(r.cfg.Output.Dir, name+".grid.zst")
	return writeFile(path, func(w io.Writer) error {
		return export.WriteGrid(w, d)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is built from user-provided output dir
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
