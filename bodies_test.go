package solarsystem

import (
	"errors"
	"testing"
)

func TestBodyID(t *testing.T) {
	for i := 0; i <= int(SolarSystemView); i++ {
		id := BodyID(i)
		parsed, err := ParseBodyID(id.String())
		if err != nil || parsed != id {
			t.Fatalf("%s: parsed %s (%v)", id, parsed, err)
		}
	}
	if id, err := ParseBodyID("jupiter"); err != nil || id != Jupiter {
		t.Fatal("parsing should be case insensitive")
	}
	if _, err := ParseBodyID("Vulcan"); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
	if BodyID(99).String() != "BodyID(99)" {
		t.Fatal("invalid out of range name")
	}
	if Sun.IsPlanet() || !Mercury.IsPlanet() || !Pluto.IsPlanet() || Moon.IsPlanet() {
		t.Fatal("invalid planets")
	}
	if BodyCount != 15 {
		t.Fatalf("BodyCount=%d", BodyCount)
	}
}

func TestElementsOrder(t *testing.T) {
	// A center of orbit must be solved before its satellites.
	for id, el := range DefaultElements() {
		if id != Sun && el.Center >= id {
			t.Fatalf("%s is solved before its center %s", id, el.Center)
		}
		if el.Radius <= 0 || el.Period == 0 {
			t.Fatalf("%s has no radius or period", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	el := DefaultElements()
	scene := NewMemoryScene(Sun, Earth)
	reg := NewRegistry(el, scene)
	if _, err := reg.ElementsOf(SaturnRing); !errors.Is(err, ErrUnknownElements) {
		t.Fatalf("expected ErrUnknownElements, got %v", err)
	}
	if e, err := reg.ElementsOf(Earth); err != nil || e.A1 != 1 {
		t.Fatal("invalid Earth elements")
	}
	if _, ok := reg.VisualBodyOf(Mars); ok {
		t.Fatal("Mars is not in the scene")
	}
	if _, ok := reg.VisualBodyOf(Earth); !ok {
		t.Fatal("Earth is in the scene")
	}
	if reg.PeriodOf(Earth) != el[Earth].Period || reg.PeriodOf(Uranus) != -el[Uranus].Period || reg.PeriodOf(SaturnRing) != 0 {
		t.Fatal("invalid periods")
	}
	if reg.RadiusOf(Jupiter) != el[Jupiter].Radius || reg.RadiusOf(EarthCloud) != 0 {
		t.Fatal("invalid radii")
	}
	reg.SetScene(nil)
	if _, ok := reg.VisualBodyOf(Earth); ok {
		t.Fatal("no scene should have no bodies")
	}
}

func TestMemoryScene(t *testing.T) {
	scene := NewFullScene(DefaultElements())
	if scene.Len() != BodyCount {
		t.Fatalf("full scene has %d bodies", scene.Len())
	}
	ids := scene.IDs()
	for i, id := range ids {
		if id != BodyID(i) {
			t.Fatalf("IDs not in update order: %v", ids)
		}
	}
	if _, ok := scene.VisualBody(SolarSystemView); ok {
		t.Fatal("the whole system view is not a body")
	}
	uranus, _ := scene.VisualBody(Uranus)
	if uranus.Tilt != DefaultElements()[Uranus].Tilt {
		t.Fatal("tilt not set")
	}
	if NewMemoryScene(Sun, Sun).Len() != 1 {
		t.Fatal("duplicate bodies")
	}
}
