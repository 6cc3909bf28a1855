package solarsystem

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEccentricAnomaly(t *testing.T) {
	for M := 0.0; M < 2*math.Pi; M += 0.1 {
		if EccentricAnomaly(M, 0) != M {
			t.Fatalf("circular orbit: E(%f) != M", M)
		}
	}
	// Error of a single step is in e³ for a small eccentricity.
	M, e := 1.0, 0.0167
	E := EccentricAnomaly(M, e)
	if kepler := E - e*math.Sin(E); !scalar.EqualWithinAbs(kepler, M, 1e-5) {
		t.Fatalf("E - e sinE = %f != %f", kepler, M)
	}
}

func TestOrbitalPositionCircular(t *testing.T) {
	for _, M := range []float64{0, 0.7, 2, 4.5} {
		el := Elements{N: 0.3, I: 0.1, W: 0.2, A: 2, E: 0, M: M}
		if r := OrbitalPosition(el).Norm(); !scalar.EqualWithinAbs(r, 2, 1e-12) {
			t.Fatalf("circular orbit distance %f != 2", r)
		}
	}
	// In the ecliptic plane, the rendering Y (up) is always null.
	if y := OrbitalPosition(Elements{A: 1, E: 0.2, M: 1}).Y; !scalar.EqualWithinAbs(y, 0, 1e-15) {
		t.Fatalf("planar orbit has Y=%f", y)
	}
}

func TestOrbitalPositionPerihelion(t *testing.T) {
	el := Elements{A: 1.5, E: 0.1, M: 0}
	pos := OrbitalPosition(el)
	// At perihelion on the X axis.
	if !floats.EqualApprox(pos.Slice(), []float64{1.35, 0, 0}, 1e-12) {
		t.Fatalf("perihelion at %+v", pos)
	}
	el.M = math.Pi
	if r := OrbitalPosition(el).Norm(); !scalar.EqualWithinAbs(r, 1.65, 1e-12) {
		t.Fatalf("aphelion distance %f != 1.65", r)
	}
}

func newTestSolver(start time.Time, ids ...BodyID) (*Solver, *Clock, *MemoryScene) {
	scene := NewMemoryScene(ids...)
	reg := NewRegistry(DefaultElements(), scene)
	clock := NewClock(start, reg)
	clock.SetSpeedScale(1)
	return NewSolver(reg, clock, DefaultAUScale), clock, scene
}

func TestSolveEarth(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	solver, _, scene := newTestSolver(j2000, Sun, Earth)
	solver.SolveAll(BodyCount)
	sun, _ := scene.VisualBody(Sun)
	earth, _ := scene.VisualBody(Earth)
	if sun.Position() != (Vec3{}) {
		t.Fatalf("the Sun moved to %+v", sun.Position())
	}
	// Early January is close to perihelion.
	dist := earth.Position().Norm()
	if dist < 0.983*DefaultAUScale || dist > 0.984*DefaultAUScale {
		t.Fatalf("Earth at %f from the Sun", dist)
	}
	// Along the ecliptic.
	if !scalar.EqualWithinAbs(earth.Y, 0, 1e-9) {
		t.Fatalf("Earth out of the ecliptic: %f", earth.Y)
	}
	// The Sun is seen from the Earth at an ecliptic longitude of about 280° on January 1st,
	// so the Earth itself is at about 100°.
	lon := Rad2deg(math.Atan2(-earth.Z, earth.X))
	if lon < 99 || lon > 102 {
		t.Fatalf("Earth longitude %f", lon)
	}
}

func TestSolveMoonAroundEarth(t *testing.T) {
	solver, _, scene := newTestSolver(time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC), Sun, Earth, Moon)
	solver.SolveAll(BodyCount)
	earth, _ := scene.VisualBody(Earth)
	moon, _ := scene.VisualBody(Moon)
	el := DefaultElements()[Moon]
	d := moon.Position().Sub(earth.Position()).Norm()
	lo := el.A1 * (1 - el.E1) * DefaultAUScale
	hi := el.A1 * (1 + el.E1) * DefaultAUScale
	if d < lo-1e-9 || d > hi+1e-9 {
		t.Fatalf("Moon at %f from Earth, expected within [%f, %f]", d, lo, hi)
	}
}

func TestSolveWithoutCenter(t *testing.T) {
	// Without the Earth in the scene, the Moon orbits the origin.
	solver, _, scene := newTestSolver(time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC), Moon)
	solver.SolvePosition(Moon)
	moon, _ := scene.VisualBody(Moon)
	if d := moon.Position().Norm(); d < 2 || d > 3 {
		t.Fatalf("Moon at %f from the origin", d)
	}
}

func TestSolveRoll(t *testing.T) {
	solver, clock, scene := newTestSolver(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Sun, Venus)
	clock.Advance(SolarSystemView, 86400) // one day
	solver.SolveAll(BodyCount)
	sun, _ := scene.VisualBody(Sun)
	venus, _ := scene.VisualBody(Venus)
	if !scalar.EqualWithinAbs(clock.Delta(), 1, 1e-9) {
		t.Fatalf("delta %f != 1 day", clock.Delta())
	}
	if !scalar.EqualWithinRel(sun.Roll, 360/25.38, 1e-9) {
		t.Fatalf("Sun roll %f", sun.Roll)
	}
	// Venus rotates backwards.
	if !scalar.EqualWithinRel(venus.Roll, -360/243.025, 1e-9) {
		t.Fatalf("Venus roll %f", venus.Roll)
	}
	// Roll accumulates without wrapping.
	for i := 0; i < 100; i++ {
		clock.Advance(SolarSystemView, 86400)
		solver.SolvePosition(Sun)
	}
	if sun.Roll < 360 {
		t.Fatalf("Sun roll wrapped to %f", sun.Roll)
	}
}

func TestSolveMissingBody(t *testing.T) {
	solver, clock, scene := newTestSolver(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Sun, SaturnRing)
	clock.Advance(SolarSystemView, 60)
	// Neither of these is in the scene.
	solver.SolvePosition(Earth)
	solver.SolvePosition(SolarSystemView)
	// Rings have no elements.
	solver.SolvePosition(SaturnRing)
	ring, _ := scene.VisualBody(SaturnRing)
	if *ring != (VisualBody{}) {
		t.Fatalf("ring modified by the solver: %+v", ring)
	}
	// A nil scene is tolerated.
	NewSolver(NewRegistry(DefaultElements(), nil), clock, DefaultAUScale).SolveAll(BodyCount)
}

func TestSolveCircularPlanarOrbit(t *testing.T) {
	center := Vec3{10, -20, 30}
	for _, M := range []float64{0, 45, 133.7, 270, 359} {
		el := DefaultElements()
		el[Mars] = OrbitalElements{N1: 49.5, W1: 286.5, A1: 1.3, M1: M, Period: 1, Radius: 1, Center: Sun}
		scene := NewMemoryScene(Sun, Mars)
		sun, _ := scene.VisualBody(Sun)
		sun.SetPosition(center)
		reg := NewRegistry(el, scene)
		NewSolver(reg, NewClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), reg), DefaultAUScale).SolvePosition(Mars)

		mars, _ := scene.VisualBody(Mars)
		rel := mars.Position().Sub(center)
		if !scalar.EqualWithinAbs(rel.Y, 0, 1e-9) {
			t.Fatalf("M=%f: out of the base plane by %f", M, rel.Y)
		}
		if !scalar.EqualWithinAbs(rel.Norm(), 1.3*DefaultAUScale, 1e-9) {
			t.Fatalf("M=%f: at %f from the center instead of %f", M, rel.Norm(), 1.3*DefaultAUScale)
		}
	}
}
