package solarsystem

// Scale and zoom tuning constants. These are empirical values chosen for legibility.
const (
	// DefaultFocusedMinimumScale is the lowest scale allowed while focused on a body.
	DefaultFocusedMinimumScale = 20.0
	// SunRadiusDivisor keeps the Sun proportionate against the much smaller planets.
	SunRadiusDivisor = 80.0
	// ZoomLimitRadii is the zoom limit in scaled radii of the focused body.
	ZoomLimitRadii = 4.0
	// MercuryZoomFactor multiplies the zoom limit of Mercury.
	MercuryZoomFactor = 2.0
	// JupiterZoomDivisor divides the zoom limit of Jupiter.
	JupiterZoomDivisor = 1.5
	// PlutoZoomFactor multiplies the zoom limit of Pluto.
	PlutoZoomFactor = 1.5
	// ZoomSpeedDivisor divides the default zoom speed while focused on a body.
	ZoomSpeedDivisor = 3.0
)

// Ring dimensions, in thousands of km above the planet surface.
const (
	saturnRingInnerOffset = 6.630
	saturnRingOuterOffset = 78.5
	uranusRingInnerOffset = 2.0
	uranusRingOuterOffset = 25.6
)

// ScaleState holds the user scale and derives the effective scale applied to all bodies.
type ScaleState struct {
	actual         float64 // persistent user scale
	effective      float64
	floor          float64
	FocusedScaling bool // enforce the floor even for unfocused requests
}

// NewScaleState returns a new scale state with the provided initial scale and focused floor.
func NewScaleState(scale, floor float64) *ScaleState {
	return &ScaleState{actual: scale, effective: scale, floor: floor}
}

// Set requests a new scale. An unfocused request becomes the persistent scale.
// While focused, the effective scale never goes below the floor.
func (s *ScaleState) Set(scale float64, focused bool) {
	if !focused {
		s.actual = scale
	}
	if scale <= s.floor && (s.FocusedScaling || focused) {
		s.effective = s.floor
	} else {
		s.effective = s.actual
	}
}

// Effective returns the scale applied to all bodies.
func (s *ScaleState) Effective() float64 {
	return s.effective
}

// Actual returns the persistent user scale.
func (s *ScaleState) Actual() float64 {
	return s.actual
}

// Floor returns the focused minimum scale.
func (s *ScaleState) Floor() float64 {
	return s.floor
}

// Ring is the inner and outer radius of a planetary ring.
type Ring struct {
	Inner, Outer float64
}

// Radius returns the display radius of the ring.
func (r Ring) Radius() float64 {
	return (r.Inner + r.Outer) / 1.75
}

// Scaled returns the ring scaled by the provided factor.
func (r Ring) Scaled(scale float64) Ring {
	return Ring{r.Inner * scale, r.Outer * scale}
}

// RingRadii holds the unscaled ring dimensions and the working ones at the current scale.
// The working values are always recomputed from the base ones so scaling never compounds.
type RingRadii struct {
	base    map[BodyID]Ring
	working map[BodyID]Ring
}

// NewRingRadii computes the rings of Saturn and Uranus from their physical radii.
func NewRingRadii(saturnRadius, uranusRadius float64) *RingRadii {
	base := map[BodyID]Ring{
		SaturnRing: {saturnRadius + saturnRingInnerOffset, saturnRadius + saturnRingOuterOffset},
		UranusRing: {uranusRadius + uranusRingInnerOffset, uranusRadius + uranusRingOuterOffset},
	}
	working := make(map[BodyID]Ring, len(base))
	for id, r := range base {
		working[id] = r
	}
	return &RingRadii{base, working}
}

// Scale recomputes the working radius of the provided ring.
func (r *RingRadii) Scale(id BodyID, scale float64) {
	if b, ok := r.base[id]; ok {
		r.working[id] = b.Scaled(scale)
	}
}

// Ring returns the working dimensions of the provided ring.
func (r *RingRadii) Ring(id BodyID) (Ring, bool) {
	ring, ok := r.working[id]
	return ring, ok
}

// OuterOffset returns how far the ring of the provided planet extends past its surface.
func (r *RingRadii) OuterOffset(planet BodyID) float64 {
	switch planet {
	case Saturn:
		return saturnRingOuterOffset
	case Uranus:
		return uranusRingOuterOffset
	default:
		return 0
	}
}

// AdjustZoomLimit applies the empirical per-body correction to a zoom limit.
func AdjustZoomLimit(id BodyID, limit, defaultLimit float64) float64 {
	switch id {
	case Sun, SolarSystemView:
		return defaultLimit
	case Mercury:
		return limit * MercuryZoomFactor
	case Jupiter:
		return limit / JupiterZoomDivisor
	case Pluto:
		return limit * PlutoZoomFactor
	default:
		return limit
	}
}
