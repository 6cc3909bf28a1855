package solarsystem

import (
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// BodyState is the transform of a body at the end of a frame.
type BodyState struct {
	ID   BodyID  `json:"-"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Roll float64 `json:"roll"`
	Tilt float64 `json:"tilt"`
	R    float64 `json:"r"`
}

// FrameState is the state of the scene at the end of a frame.
type FrameState struct {
	DT      time.Time   `json:"dt"`
	Elapsed float64     `json:"elapsed"`
	Delta   float64     `json:"delta"`
	Burst   float64     `json:"burst"`
	Scale   float64     `json:"scale"`
	Focus   string      `json:"focus"`
	Bodies  []BodyState `json:"bodies"`
}

// Option configures an Engine at wiring time.
type Option func(*Engine)

// WithCamera sets the camera whose view center is driven by the engine.
func WithCamera(c Camera) Option {
	return func(e *Engine) { e.camera = c }
}

// WithController sets the camera controller receiving the zoom limits and speeds.
func WithController(c CameraController) Option {
	return func(e *Engine) { e.controller = c }
}

// WithSkybox sets the skybox which follows the camera each frame.
func WithSkybox(s Skybox) Option {
	return func(e *Engine) { e.skybox = s }
}

// WithLogger sets the logger.
func WithLogger(l kitlog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithFrames sets the channel on which each frame is published. Frames are dropped when it is full.
func WithFrames(c chan<- FrameState) Option {
	return func(e *Engine) { e.frames = c }
}

// WithElements replaces the default orbital elements.
func WithElements(el map[BodyID]OrbitalElements) Option {
	return func(e *Engine) { e.elements = el }
}

// Engine animates the solar system: it owns the clock, the scale and the solvers, and updates
// the visual bodies of a scene once per frame. An Engine is not safe for concurrent use.
type Engine struct {
	elements      map[BodyID]OrbitalElements
	registry      *Registry
	clock         *Clock
	scale         *ScaleState
	rings         *RingRadii
	solver        *Solver
	propagator    *Propagator
	camera        Camera
	controller    CameraController
	skybox        Skybox
	logger        kitlog.Logger
	metrics       *Metrics
	frames        chan<- FrameState
	solarDistance float64
	count         int
}

// NewEngine returns a new engine updating the provided scene (which may be nil until set).
func NewEngine(conf Config, scene Scene, opts ...Option) *Engine {
	e := &Engine{elements: DefaultElements(), logger: kitlog.NewNopLogger(), count: BodyCount, solarDistance: conf.SolarDistance}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = NewRegistry(e.elements, scene)
	e.clock = NewClock(conf.Start, e.registry)
	e.clock.SetSpeedScale(conf.SpeedScale)
	if conf.BurstStep > 0 && conf.BurstMax > 0 {
		e.clock.SetBurstLimits(conf.BurstStep, conf.BurstMax)
	}
	e.scale = NewScaleState(conf.Scale, conf.FocusedMinimumScale)
	e.scale.FocusedScaling = conf.FocusedScaling
	e.rings = NewRingRadii(e.registry.RadiusOf(Saturn), e.registry.RadiusOf(Uranus))
	auScale := conf.AUScale
	if auScale == 0 {
		auScale = DefaultAUScale
	}
	e.solver = NewSolver(e.registry, e.clock, auScale)
	e.propagator = NewPropagator(e.registry, e.rings)
	e.logger = kitlog.With(e.logger, "subsys", "engine")
	level.Debug(e.logger).Log("start", e.clock.Time(), "elapsed", e.clock.Elapsed(), "speed", conf.SpeedScale, "scale", conf.Scale)
	return e
}

// Registry returns the body registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Clock returns the simulation clock.
func (e *Engine) Clock() *Clock { return e.clock }

// Scale returns the scale state.
func (e *Engine) Scale() *ScaleState { return e.scale }

// Rings returns the ring dimensions.
func (e *Engine) Rings() *RingRadii { return e.rings }

// SetScene changes the scene updated by the engine.
func (e *Engine) SetScene(s Scene) {
	e.registry.SetScene(s)
}

// SetBodyCount sets how many bodies, in index order, are solved each frame.
func (e *Engine) SetBodyCount(count int) {
	e.count = count
}

// Step runs one frame: advances the clock, solves all bodies and propagates the rings and clouds.
func (e *Engine) Step(focus BodyID, frameDelta float64) {
	e.clock.Advance(focus, frameDelta)
	e.solver.SolveAll(e.count)
	e.propagator.Propagate()
	if e.skybox != nil && e.camera != nil {
		e.skybox.SetCameraPosition(e.camera.Position())
	}
	if e.metrics != nil {
		e.metrics.RecordFrame(e.clock)
	}
	if e.frames != nil {
		select {
		case e.frames <- e.Snapshot():
		default:
			// Drop the frame rather than block the frame loop.
		}
	}
}

// SolvePosition solves a single body.
func (e *Engine) SolvePosition(id BodyID) {
	e.solver.SolvePosition(id)
}

// SetSpeed sets the user simulation speed.
func (e *Engine) SetSpeed(speed float64) {
	e.clock.SetSpeedScale(speed)
	level.Info(e.logger).Log("speed", speed)
}

// Speed returns the user simulation speed.
func (e *Engine) Speed() float64 {
	return e.clock.SpeedScale()
}

// BurstSpeedUp cycles the burst multiplier.
func (e *Engine) BurstSpeedUp() {
	e.clock.BurstSpeedUp()
	level.Info(e.logger).Log("burst", e.clock.Burst())
}

// ResetBurst sets the burst multiplier back to 1.
func (e *Engine) ResetBurst() {
	e.clock.ResetBurst()
	level.Debug(e.logger).Log("burst", e.clock.Burst())
}

// ChangeScale requests a new scale and applies the resulting effective scale to all bodies.
func (e *Engine) ChangeScale(scale float64, focused bool) {
	e.scale.Set(scale, focused)
	e.ApplyScale()
	level.Debug(e.logger).Log("requested", scale, "focused", focused, "effective", e.scale.Effective())
}

// ApplyScale sets the display radius of every body of the scene from the effective scale.
func (e *Engine) ApplyScale() {
	eff := e.scale.Effective()
	for i := 0; i < e.count; i++ {
		id := BodyID(i)
		switch {
		case id == SaturnRing || id == UranusRing:
			e.rings.Scale(id, eff)
		case id == Sun:
			if vb, ok := e.registry.VisualBodyOf(id); ok {
				vb.R = e.registry.RadiusOf(id) * eff / SunRadiusDivisor
			}
		case id.IsPlanet() || id == Moon:
			if vb, ok := e.registry.VisualBodyOf(id); ok {
				vb.R = e.registry.RadiusOf(id) * eff
			}
		}
	}
	if e.metrics != nil {
		e.metrics.RecordScale(eff)
	}
}

func (e *Engine) defaultZoomLimit() float64 {
	if e.controller == nil {
		return 0
	}
	return e.controller.DefaultZoomLimit()
}

// ZoomLimit returns the closest the camera may get to the provided body.
func (e *Engine) ZoomLimit(id BodyID) float64 {
	limit := e.scale.Effective() * e.registry.RadiusOf(id) * ZoomLimitRadii
	return AdjustZoomLimit(id, limit, e.defaultZoomLimit())
}

// UpdateZoomLimit pushes the zoom limit and speed of the provided body to the camera controller.
func (e *Engine) UpdateZoomLimit(id BodyID) {
	if e.controller == nil {
		return
	}
	if id == SolarSystemView {
		e.controller.SetDefaultZoomLimit()
		e.controller.SetDefaultZoomSpeed()
		return
	}
	e.controller.SetZoomLimit(e.ZoomLimit(id))
	e.controller.SetZoomSpeed(e.controller.DefaultZoomSpeed() / ZoomSpeedDivisor)
}

// UpdateSolarView centers the camera on the provided body, or on the Sun for the whole system view.
func (e *Engine) UpdateSolarView(id BodyID) {
	if e.camera == nil {
		return
	}
	if id == SolarSystemView {
		id = Sun
	}
	vb, ok := e.registry.VisualBodyOf(id)
	if !ok {
		e.recordMissing(id)
		return
	}
	e.camera.SetViewCenter(vb.Position())
	level.Debug(e.logger).Log("focus", id)
}

// ObjectPosition returns the position of the provided body, or the origin if it is not in the scene.
func (e *Engine) ObjectPosition(id BodyID) Vec3 {
	if id == SolarSystemView {
		return Vec3{}
	}
	vb, ok := e.registry.VisualBodyOf(id)
	if !ok {
		e.recordMissing(id)
		return Vec3{}
	}
	return vb.Position()
}

// ViewPositionOfObject returns where the camera should move to look at the provided body
// from its zoom limit along the current line of sight.
func (e *Engine) ViewPositionOfObject(id BodyID) Vec3 {
	vb, ok := e.registry.VisualBodyOf(id)
	if !ok {
		e.recordMissing(id)
		return Vec3{}
	}
	if e.camera == nil {
		return Vec3{}
	}
	cam := e.camera.Position()
	onTarget := vb.Position().Sub(cam)
	dist := onTarget.Norm()
	limit := e.ZoomLimit(id)
	needDist := dist - limit
	if needDist <= 0 {
		needDist = limit - dist
	}
	return onTarget.Unit().Scale(needDist).Add(cam)
}

// OuterRadius returns the distance from the center of the body past which the camera is outside of it.
func (e *Engine) OuterRadius(id BodyID) float64 {
	switch {
	case id == Sun:
		return e.registry.RadiusOf(Sun) / 100
	case id.IsPlanet() || id == Moon:
		return e.solarDistance + e.registry.RadiusOf(id) + e.rings.OuterOffset(id)
	default:
		return e.solarDistance
	}
}

// Snapshot returns the current state of the bodies in the scene.
func (e *Engine) Snapshot() FrameState {
	fs := FrameState{
		DT:      e.clock.Time(),
		Elapsed: e.clock.Elapsed(),
		Delta:   e.clock.Delta(),
		Burst:   e.clock.Burst(),
		Scale:   e.scale.Effective(),
		Focus:   e.clock.Focus().String(),
	}
	for i := 0; i < BodyCount; i++ {
		id := BodyID(i)
		vb, ok := e.registry.VisualBodyOf(id)
		if !ok {
			continue
		}
		fs.Bodies = append(fs.Bodies, BodyState{
			ID: id, Name: id.String(),
			X: vb.X, Y: vb.Y, Z: vb.Z,
			Roll: vb.Roll, Tilt: vb.Tilt, R: vb.R,
		})
	}
	return fs
}

func (e *Engine) recordMissing(id BodyID) {
	if e.metrics != nil {
		e.metrics.RecordMissing(id)
	}
}
