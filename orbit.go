package solarsystem

import (
	"math"
)

// DefaultAUScale is the number of scene units per astronomical unit.
const DefaultAUScale = 1000.0

// EccentricAnomaly returns the eccentric anomaly from one fixed-point step of Kepler's equation
// seeded at the mean anomaly. This first order approximation is only valid for small eccentricities.
func EccentricAnomaly(M, e float64) float64 {
	return M + e*math.Sin(M)*(1+e*math.Cos(M))
}

// OrbitalPosition returns the position relative to the center of orbit, in AU, in the rendering frame.
func OrbitalPosition(el Elements) Vec3 {
	E := EccentricAnomaly(el.M, el.E)
	sinE, cosE := math.Sincos(E)
	xv := el.A * (cosE - el.E)
	yv := el.A * (math.Sqrt(1-el.E*el.E) * sinE)
	ν := math.Atan2(yv, xv)
	r := math.Sqrt(xv*xv + yv*yv)
	return Ecliptic2Render(MxV33(PQW2Ecliptic(el.N, el.I, ν+el.W), []float64{r, 0, 0}))
}

// Solver computes the position and roll of the bodies of a registry from the clock.
type Solver struct {
	registry *Registry
	clock    *Clock
	auScale  float64
}

// NewSolver returns a new orbit solver.
func NewSolver(registry *Registry, clock *Clock, auScale float64) *Solver {
	return &Solver{registry, clock, auScale}
}

// SolvePosition updates the visual body of the provided body.
// Nothing happens if the body is not in the scene. The Sun stays where it is but still rolls.
func (s *Solver) SolvePosition(id BodyID) {
	vb, ok := s.registry.VisualBodyOf(id)
	if !ok {
		return
	}
	el, err := s.registry.ElementsOf(id)
	if err != nil {
		// Rings, clouds and views are positioned by the Propagator.
		return
	}
	if id != Sun {
		var center Vec3
		if cvb, ok := s.registry.VisualBodyOf(el.Center); ok && el.Center != id {
			center = cvb.Position()
		}
		pos := OrbitalPosition(el.At(s.clock.Elapsed()))
		vb.SetPosition(center.Add(pos.Scale(s.auScale)))
	}
	vb.Roll += s.clock.Delta() / el.Period * 360
}

// SolveAll solves every body of index [0, count) in index order.
func (s *Solver) SolveAll(count int) {
	for i := 0; i < count; i++ {
		s.SolvePosition(BodyID(i))
	}
}
