// Command facescore scores one detection request and writes the JSON report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facescore/internal/analysis"
	"facescore/internal/config"
	"facescore/internal/logging"
	"facescore/internal/version"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	request     string
	frontImage  string
	sideImage   string
	out         string
	envFile     string
	watch       bool
	interval    time.Duration
	printConfig bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("facescore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.request, "request", "", "Path to the JSON detection request")
	fs.StringVar(&o.frontImage, "front-image", "", "Front photo for the blur check (JPEG, PNG, WebP, BMP or TIFF)")
	fs.StringVar(&o.sideImage, "side-image", "", "Side photo for the blur check")
	fs.StringVar(&o.out, "out", "", "Write the report here instead of stdout")
	fs.StringVar(&o.envFile, "env", ".env", "Dotenv file with FACESCORE_CONFIG, LOG_LEVEL and LOG_FORMAT; empty disables it")
	fs.BoolVar(&o.watch, "watch", false, "Re-run whenever the request or tuning file changes")
	fs.DurationVar(&o.interval, "interval", time.Second, "Polling interval for -watch")
	fs.BoolVar(&o.printConfig, "print-config", false, "Print the effective tuning as YAML and exit")
	fs.BoolVar(&o.showVersion, "version", false, "Print version information and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if o.interval <= 0 {
		fmt.Fprintf(stderr, "Invalid -interval %s: must be positive\n", o.interval)
		return 2
	}

	if o.showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	settings, tuning, err := config.Load(config.WithEnvFile(o.envFile))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	if o.printConfig {
		data, err := config.Marshal(tuning)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to encode configuration: %v\n", err)
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	}

	if o.request == "" {
		fmt.Fprintln(stderr, "Usage: facescore -request <request.json> [-front-image <path>] [-side-image <path>] [-out <report.json>] [-watch]")
		return 2
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	analyzer := analysis.New(tuning, analysis.WithLogger(logger))
	if err := once(analyzer, o, stdout); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		if !o.watch {
			return 1
		}
	}
	if !o.watch {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := config.NewWatcher(o.interval, o.request, o.frontImage, o.sideImage, settings.ConfigPath)
	w.OnChange(func(path string) {
		if settings.ConfigPath != "" && sameFile(path, settings.ConfigPath) {
			t, err := config.LoadFile(settings.ConfigPath)
			if err != nil {
				logger.Warn("keeping previous tuning", zap.String("path", path), zap.Error(err))
				return
			}
			analyzer = analysis.New(t, analysis.WithLogger(logger))
			logger.Info("tuning reloaded", zap.String("path", path))
		}
		if err := once(analyzer, o, stdout); err != nil {
			logger.Error("analysis failed", zap.String("trigger", path), zap.Error(err))
		}
	})
	logger.Info("watching for changes", zap.Duration("interval", o.interval))
	w.Run(ctx)
	return 0
}

// once reads the request and its photos, analyses it and writes the report.
func once(a *analysis.Analyzer, o options, stdout io.Writer) error {
	req, err := readRequest(o.request)
	if err != nil {
		return err
	}
	if err := attachImage(&req.Front, o.frontImage); err != nil {
		return err
	}
	if o.sideImage != "" {
		if req.Side == nil {
			return errors.New("side image given but the request has no side photo")
		}
		if err := attachImage(req.Side, o.sideImage); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(a.Analyze(req), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if o.out == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(o.out, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func readRequest(path string) (analysis.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Request{}, fmt.Errorf("read request: %w", err)
	}
	var req analysis.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return analysis.Request{}, fmt.Errorf("decode request %s: %w", path, err)
	}
	return req, nil
}

// attachImage decodes path into ph. Photo dimensions missing from the
// request are taken from the image.
func attachImage(ph *analysis.Photo, path string) error {
	if path == "" {
		return nil
	}
	img, err := loadImage(path)
	if err != nil {
		return err
	}
	ph.Image = img
	if ph.Width <= 0 || ph.Height <= 0 {
		b := img.Bounds()
		ph.Width, ph.Height = b.Dx(), b.Dy()
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
