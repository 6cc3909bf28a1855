package solarsystem

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPropagate(t *testing.T) {
	el := DefaultElements()
	scene := NewFullScene(el)
	reg := NewRegistry(el, scene)
	rings := NewRingRadii(el[Saturn].Radius, el[Uranus].Radius)
	p := NewPropagator(reg, rings)

	saturn, _ := scene.VisualBody(Saturn)
	saturn.SetPosition(Vec3{100, 2, -300})
	saturn.Roll = 720
	earth, _ := scene.VisualBody(Earth)
	earth.SetPosition(Vec3{-1, 0, 990})
	earth.Roll = 60
	earth.R = 6.371

	p.Propagate()

	ring, _ := scene.VisualBody(SaturnRing)
	if ring.Position() != saturn.Position() || ring.Tilt != saturn.Tilt {
		t.Fatalf("ring %+v does not follow Saturn %+v", ring, saturn)
	}
	if ring.Roll != 72 {
		t.Fatalf("ring roll %f", ring.Roll)
	}
	dims, _ := rings.Ring(SaturnRing)
	if ring.R != dims.Radius() {
		t.Fatalf("ring radius %f", ring.R)
	}

	cloud, _ := scene.VisualBody(EarthCloud)
	if cloud.Position() != earth.Position() || cloud.Tilt != earth.Tilt {
		t.Fatalf("cloud %+v does not follow Earth %+v", cloud, earth)
	}
	if !scalar.EqualWithinAbs(cloud.Roll, 50, 1e-12) {
		t.Fatalf("cloud roll %f", cloud.Roll)
	}
	if !scalar.EqualWithinAbs(cloud.R, 6.371*EarthCloudModifier, 1e-12) {
		t.Fatalf("cloud radius %f", cloud.R)
	}

	venus, _ := scene.VisualBody(Venus)
	atm, _ := scene.VisualBody(VenusCloud)
	if atm.Position() != venus.Position() || atm.Tilt != venus.Tilt {
		t.Fatal("Venus atmosphere does not follow Venus")
	}
}

func TestPropagatePartialScene(t *testing.T) {
	// A ring without its planet, and a planet without its ring.
	scene := NewMemoryScene(SaturnRing, Uranus, Earth)
	reg := NewRegistry(DefaultElements(), scene)
	p := NewPropagator(reg, NewRingRadii(58.232, 25.362))
	ring, _ := scene.VisualBody(SaturnRing)
	ring.Roll = 42
	p.Propagate()
	if ring.Roll != 42 || ring.R != 0 {
		t.Fatalf("orphan ring modified: %+v", ring)
	}
	// No scene at all.
	NewPropagator(NewRegistry(DefaultElements(), nil), NewRingRadii(1, 1)).Propagate()
}
