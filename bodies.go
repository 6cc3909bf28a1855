package solarsystem

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownElements is returned for bodies which have no astronomical element record (rings, clouds, views).
	ErrUnknownElements = errors.New("no orbital elements")
	// ErrUnknownBody is returned when a name does not match any body.
	ErrUnknownBody = errors.New("unknown body")
)

// BodyID identifies a body of the simulation.
// The index order is the update order: a center of orbit always has a lower index than its satellites.
type BodyID int

// Body identifiers.
const (
	Sun BodyID = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	SaturnRing
	UranusRing
	EarthCloud
	VenusCloud
	SolarSystemView
)

// BodyCount is the number of bodies which may be present in a scene.
const BodyCount = int(SolarSystemView)

var bodyNames = [...]string{
	Sun:             "Sun",
	Mercury:         "Mercury",
	Venus:           "Venus",
	Earth:           "Earth",
	Mars:            "Mars",
	Jupiter:         "Jupiter",
	Saturn:          "Saturn",
	Uranus:          "Uranus",
	Neptune:         "Neptune",
	Pluto:           "Pluto",
	Moon:            "Moon",
	SaturnRing:      "SaturnRing",
	UranusRing:      "UranusRing",
	EarthCloud:      "EarthCloud",
	VenusCloud:      "VenusCloud",
	SolarSystemView: "SolarSystemView",
}

// String implements the Stringer interface.
func (id BodyID) String() string {
	if id < 0 || int(id) >= len(bodyNames) {
		return fmt.Sprintf("BodyID(%d)", int(id))
	}
	return bodyNames[id]
}

// IsPlanet returns whether this body is one of the planets (Pluto included).
func (id BodyID) IsPlanet() bool {
	return id >= Mercury && id <= Pluto
}

// ParseBodyID returns the body from its name.
func ParseBodyID(name string) (BodyID, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return BodyID(i), nil
		}
	}
	return -1, fmt.Errorf("%w: '%s'", ErrUnknownBody, name)
}

// PeriodSource provides the rotation period of a body in days.
type PeriodSource interface {
	PeriodOf(id BodyID) float64
}

// Registry maps a body to its orbital elements and to its visual body in the active scene.
// The elements are read only once the registry is created.
type Registry struct {
	elements map[BodyID]OrbitalElements
	scene    Scene
}

// NewRegistry returns a new registry. The scene may be nil while it is being built.
func NewRegistry(elements map[BodyID]OrbitalElements, scene Scene) *Registry {
	return &Registry{elements, scene}
}

// ElementsOf returns the orbital elements of the provided body.
func (r *Registry) ElementsOf(id BodyID) (OrbitalElements, error) {
	el, ok := r.elements[id]
	if !ok {
		return OrbitalElements{}, fmt.Errorf("%w for %s", ErrUnknownElements, id)
	}
	return el, nil
}

// VisualBodyOf returns the visual body of the provided id if it is in the active scene.
func (r *Registry) VisualBodyOf(id BodyID) (*VisualBody, bool) {
	if r.scene == nil {
		return nil, false
	}
	return r.scene.VisualBody(id)
}

// PeriodOf returns the length of the rotation period in days, or zero if the body has no elements.
func (r *Registry) PeriodOf(id BodyID) float64 {
	return r.elements[id].PeriodLength()
}

// RadiusOf returns the physical radius, or zero if the body has no elements.
func (r *Registry) RadiusOf(id BodyID) float64 {
	return r.elements[id].Radius
}

// SetScene changes the scene whose visual bodies are updated.
func (r *Registry) SetScene(s Scene) {
	r.scene = s
}
