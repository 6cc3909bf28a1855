package solarsystem

// Dependent body tuning.
const (
	ringRollDivisor  = 10.0
	cloudRollDivisor = 1.2
	// EarthCloudModifier is the radius of the Earth cloud layer relative to the Earth.
	EarthCloudModifier = 1.010
	// VenusCloudModifier is the radius of the Venus atmosphere relative to Venus.
	VenusCloudModifier = 1.015
)

type ringPair struct {
	ring, planet BodyID
}

type cloudPair struct {
	cloud, planet BodyID
	modifier      float64
}

var (
	ringPairs  = []ringPair{{SaturnRing, Saturn}, {UranusRing, Uranus}}
	cloudPairs = []cloudPair{{EarthCloud, Earth, EarthCloudModifier}, {VenusCloud, Venus, VenusCloudModifier}}
)

// Propagator positions the rings and cloud layers on their planet.
// It must run after the planets have been solved in the same frame.
type Propagator struct {
	registry *Registry
	rings    *RingRadii
}

// NewPropagator returns a new propagator.
func NewPropagator(registry *Registry, rings *RingRadii) *Propagator {
	return &Propagator{registry, rings}
}

// Propagate updates all the rings and clouds present in the scene.
func (p *Propagator) Propagate() {
	p.SetupRings()
	p.Atmospheres()
}

// SetupRings copies each planet's transform to its ring.
func (p *Propagator) SetupRings() {
	for _, pair := range ringPairs {
		ring, parent, ok := p.pair(pair.ring, pair.planet)
		if !ok {
			continue
		}
		follow(ring, parent, ringRollDivisor)
		if dims, ok := p.rings.Ring(pair.ring); ok {
			ring.R = dims.Radius()
		}
	}
}

// Atmospheres copies each planet's transform to its cloud layer.
func (p *Propagator) Atmospheres() {
	for _, pair := range cloudPairs {
		cloud, parent, ok := p.pair(pair.cloud, pair.planet)
		if !ok {
			continue
		}
		follow(cloud, parent, cloudRollDivisor)
		cloud.R = parent.R * pair.modifier
	}
}

func (p *Propagator) pair(dependent, parent BodyID) (*VisualBody, *VisualBody, bool) {
	d, ok := p.registry.VisualBodyOf(dependent)
	if !ok {
		return nil, nil, false
	}
	pa, ok := p.registry.VisualBodyOf(parent)
	if !ok {
		return nil, nil, false
	}
	return d, pa, true
}

func follow(dependent, parent *VisualBody, rollDivisor float64) {
	dependent.X, dependent.Y, dependent.Z = parent.X, parent.Y, parent.Z
	dependent.Tilt = parent.Tilt
	dependent.Roll = parent.Roll / rollDivisor
}
