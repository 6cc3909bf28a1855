package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	solarsystem "github.com/FihlaTV/SolarSystem"
	"github.com/FihlaTV/SolarSystem/catalog"
	"github.com/FihlaTV/SolarSystem/stream"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soniakeys/meeus/v3/julian"
)

const (
	dateFormat         = "2006-01-02 15:04:05"
	dateFormatFilename = "2006-01-02-15.04.05"
)

type runOptions struct {
	frames int
	dt     float64
	focus  string
	start  string
	speed  float64
	scale  float64
	bursts int
	csv    bool
	cosmo  bool
}

type serveOptions struct {
	focus string
	fps   float64
}

// parseStart reads a start date either as a Julian day or as a date.
func parseStart(s string) (time.Time, error) {
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return julian.JDToTime(jd).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, dateFormat, "2006-01-02"} {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start date '%s'", s)
}

// newEngine wires an engine on a full scene with a headless camera.
func newEngine(conf solarsystem.Config, logger kitlog.Logger, opts ...solarsystem.Option) (*solarsystem.Engine, *solarsystem.MemoryScene) {
	scene := solarsystem.NewFullScene(solarsystem.DefaultElements())
	cam := &solarsystem.StaticCamera{Pos: solarsystem.Vec3{X: 0, Y: conf.DefaultZoomLimit, Z: conf.DefaultZoomLimit}}
	opts = append([]solarsystem.Option{
		solarsystem.WithCamera(cam),
		solarsystem.WithController(solarsystem.NewZoomState(conf.DefaultZoomLimit, conf.DefaultZoomSpeed)),
		solarsystem.WithLogger(logger),
	}, opts...)
	engine := solarsystem.NewEngine(conf, scene, opts...)
	engine.ChangeScale(conf.Scale, false)
	return engine, scene
}

// focusOn points the camera and its controller to the provided body.
func focusOn(engine *solarsystem.Engine, focus solarsystem.BodyID) {
	engine.ChangeScale(engine.Scale().Actual(), focus != solarsystem.SolarSystemView)
	engine.UpdateZoomLimit(focus)
	engine.UpdateSolarView(focus)
}

func runSim(out io.Writer, conf solarsystem.Config, opts runOptions) error {
	logger := solarsystem.NewLogger(os.Stderr, conf.LogLevel)
	focus, err := solarsystem.ParseBodyID(opts.focus)
	if err != nil {
		return err
	}
	if opts.start != "" {
		if conf.Start, err = parseStart(opts.start); err != nil {
			return err
		}
	}
	if opts.speed > 0 {
		conf.SpeedScale = opts.speed
	}
	if opts.scale > 0 {
		conf.Scale = opts.scale
	}

	export := solarsystem.ExportConfig{
		Filename:  "solarsim-" + conf.Start.Format(dateFormatFilename),
		OutputDir: conf.OutputDir,
		AUScale:   conf.AUScale,
		Cosmo:     opts.cosmo,
		AsCSV:     opts.csv,
		Logger:    logger,
	}

	var engineOpts []solarsystem.Option
	var frames chan solarsystem.FrameState
	if !export.IsUseless() {
		if err := os.MkdirAll(conf.OutputDir, 0755); err != nil {
			return err
		}
		// Large enough to never drop a frame of this run.
		frames = make(chan solarsystem.FrameState, opts.frames)
		engineOpts = append(engineOpts, solarsystem.WithFrames(frames))
	}

	engine, _ := newEngine(conf, logger, engineOpts...)
	for i := 0; i < opts.bursts; i++ {
		engine.BurstSpeedUp()
	}
	focusOn(engine, focus)

	level.Info(logger).Log("start", conf.Start.Format(dateFormat), "frames", opts.frames, "focus", focus)
	for i := 0; i < opts.frames; i++ {
		engine.Step(focus, opts.dt)
	}
	engine.UpdateSolarView(focus)
	level.Info(logger).Log("end", engine.Clock().Time().Format(dateFormat), "elapsed", engine.Clock().Elapsed())

	if frames != nil {
		close(frames)
		if err := solarsystem.StreamFrames(export, frames); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	}
	return printFrame(out, engine.Snapshot())
}

func printFrame(out io.Writer, frame solarsystem.FrameState) error {
	fmt.Fprintf(out, "%s (day %.4f, burst x%.0f, scale %.2f)\n", frame.DT.Format(dateFormat), frame.Elapsed, frame.Burst, frame.Scale)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "body\tx\ty\tz\troll\tr\t")
	for _, b := range frame.Bodies {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.2f\t%.3f\t\n", b.Name, b.X, b.Y, b.Z, b.Roll, b.R)
	}
	return w.Flush()
}

func runInfo(out io.Writer, conf solarsystem.Config, name string) error {
	logger := solarsystem.NewLogger(os.Stderr, conf.LogLevel)
	cat, err := catalog.Open(conf.CatalogPath, logger)
	if err != nil {
		return err
	}
	defer cat.Close()
	if err := cat.Seed(); err != nil {
		return err
	}

	if name == "" {
		names, err := cat.AllObjects()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}

	b, err := cat.Info(name)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", b.Name)
	fmt.Fprintf(w, "Type\t%s\n", b.Type)
	fmt.Fprintf(w, "Orbital speed\t%g km/s\n", b.OrbitalSpeed)
	fmt.Fprintf(w, "Mass\t%g kg\n", b.Mass)
	fmt.Fprintf(w, "Mean radius\t%g km\n", b.MeanRadius)
	fmt.Fprintf(w, "Temperature\t%d K\n", b.Temperature)
	fmt.Fprintf(w, "Gravity\t%g m/s²\n", b.Gravity)
	fmt.Fprintf(w, "Volume\t%g km³\n", b.Volume)
	fmt.Fprintf(w, "Sidereal period\t%g d\n", b.SiderealPeriod)
	if b.OrbitalPeriod > 0 {
		fmt.Fprintf(w, "Orbital period\t%g d\n", b.OrbitalPeriod)
	}
	fmt.Fprintf(w, "\n%s\n", b.Description)
	return w.Flush()
}

func runServe(ctx context.Context, conf solarsystem.Config, opts serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger := solarsystem.NewLogger(os.Stderr, conf.LogLevel)
	focus, err := solarsystem.ParseBodyID(opts.focus)
	if err != nil {
		return err
	}
	if opts.fps <= 0 {
		return errors.New("fps must be positive")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := solarsystem.NewMetrics(reg)

	frames := make(chan solarsystem.FrameState, 8)
	engine, _ := newEngine(conf, logger, solarsystem.WithMetrics(metrics), solarsystem.WithFrames(frames))
	focusOn(engine, focus)

	hub := stream.NewHub(conf.StreamRate, logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	var servers []*http.Server
	if conf.MetricsAddr == "" || conf.MetricsAddr == conf.StreamAddr {
		mux.Handle("/metrics", metricsHandler)
	} else {
		mmux := http.NewServeMux()
		mmux.Handle("/metrics", metricsHandler)
		servers = append(servers, &http.Server{Addr: conf.MetricsAddr, Handler: mmux})
	}
	servers = append(servers, &http.Server{Addr: conf.StreamAddr, Handler: mux})

	errs := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			level.Info(logger).Log("listen", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
		}()
	}
	go hub.Run(ctx, frames)

	period := time.Duration(float64(time.Second) / opts.fps)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			level.Info(logger).Log("status", "shutting down", "elapsed", engine.Clock().Elapsed())
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			for _, srv := range servers {
				srv.Shutdown(shutdown)
			}
			return nil
		case err := <-errs:
			return err
		case now := <-ticker.C:
			engine.Step(focus, now.Sub(last).Seconds())
			engine.UpdateSolarView(focus)
			last = now
		}
	}
}
