package solarsystem

import (
	"fmt"
	"math"
)

// OrbitalElements defines the orbit of a body via its osculating elements at the epoch
// (2000 Jan 0.0 UT) plus their secular drift per day.
// Angles are in degrees, the semi-major axis is in AU.
type OrbitalElements struct {
	N1, N2 float64 // Longitude of the ascending node
	I1, I2 float64 // Inclination to the ecliptic
	W1, W2 float64 // Argument of perihelion
	A1, A2 float64 // Semi-major axis
	E1, E2 float64 // Eccentricity
	M1, M2 float64 // Mean anomaly
	Period float64 // Rotation period in days (negative for retrograde rotation)
	Radius float64 // Physical radius in thousands of km
	Tilt   float64 // Axial tilt in degrees
	Center BodyID  // Center of orbit
}

// Elements are the orbital elements evaluated at a given day, all angles in radians.
type Elements struct {
	N, I, W, A, E, M float64
}

// At returns the elements evaluated at the provided elapsed day.
func (o OrbitalElements) At(d float64) Elements {
	return Elements{
		N: (o.N1 + o.N2*d) * deg2rad,
		I: (o.I1 + o.I2*d) * deg2rad,
		W: (o.W1 + o.W2*d) * deg2rad,
		A: o.A1 + o.A2*d,
		E: o.E1 + o.E2*d,
		M: (o.M1 + o.M2*d) * deg2rad,
	}
}

// String implements the Stringer interface.
func (e Elements) String() string {
	return fmt.Sprintf("a=%.6f e=%.6f i=%.4f Ω=%.4f ω=%.4f M=%.4f", e.A, e.E, Rad2deg(e.I), Rad2deg(e.N), Rad2deg(e.W), Rad2deg(e.M))
}

// PeriodLength returns the rotation period in days regardless of the direction of rotation.
func (o OrbitalElements) PeriodLength() float64 {
	return math.Abs(o.Period)
}

// DefaultElements returns the element set of the Sun, the planets, Pluto and the Moon.
// Values from P. Schlyter, "How to compute planetary positions"; Pluto from the JPL
// approximate Keplerian elements. Earth is the Sun's apparent orbit with ω+180°.
func DefaultElements() map[BodyID]OrbitalElements {
	return map[BodyID]OrbitalElements{
		Sun: {
			Period: 25.38, Radius: 696.342, Tilt: 7.25, Center: Sun,
		},
		Mercury: {
			N1: 48.3313, N2: 3.24587e-5,
			I1: 7.0047, I2: 5.00e-8,
			W1: 29.1241, W2: 1.01444e-5,
			A1: 0.387098,
			E1: 0.205635, E2: 5.59e-10,
			M1: 168.6562, M2: 4.0923344368,
			Period: 58.646, Radius: 2.4397, Tilt: 0.034, Center: Sun,
		},
		Venus: {
			N1: 76.6799, N2: 2.46590e-5,
			I1: 3.3946, I2: 2.75e-8,
			W1: 54.8910, W2: 1.38374e-5,
			A1: 0.723330,
			E1: 0.006773, E2: -1.302e-9,
			M1: 48.0052, M2: 1.6021302244,
			Period: -243.025, Radius: 6.0518, Tilt: 177.36, Center: Sun,
		},
		Earth: {
			W1: 102.9404, W2: 4.70935e-5,
			A1: 1.0,
			E1: 0.016709, E2: -1.151e-9,
			M1: 356.0470, M2: 0.9856002585,
			Period: 0.99727, Radius: 6.371, Tilt: 23.44, Center: Sun,
		},
		Mars: {
			N1: 49.5574, N2: 2.11081e-5,
			I1: 1.8497, I2: -1.78e-8,
			W1: 286.5016, W2: 2.92961e-5,
			A1: 1.523688,
			E1: 0.093405, E2: 2.516e-9,
			M1: 18.6021, M2: 0.5240207766,
			Period: 1.025957, Radius: 3.3895, Tilt: 25.19, Center: Sun,
		},
		Jupiter: {
			N1: 100.4542, N2: 2.76854e-5,
			I1: 1.3030, I2: -1.557e-7,
			W1: 273.8777, W2: 1.64505e-5,
			A1: 5.20256,
			E1: 0.048498, E2: 4.469e-9,
			M1: 19.8950, M2: 0.0830853001,
			Period: 0.41354, Radius: 69.911, Tilt: 3.13, Center: Sun,
		},
		Saturn: {
			N1: 113.6634, N2: 2.38980e-5,
			I1: 2.4886, I2: -1.081e-7,
			W1: 339.3939, W2: 2.97661e-5,
			A1: 9.55475,
			E1: 0.055546, E2: -9.499e-9,
			M1: 316.9670, M2: 0.0334442282,
			Period: 0.44401, Radius: 58.232, Tilt: 26.73, Center: Sun,
		},
		Uranus: {
			N1: 74.0005, N2: 1.3978e-5,
			I1: 0.7733, I2: 1.9e-8,
			W1: 96.6612, W2: 3.0565e-5,
			A1: 19.18171, A2: -1.55e-8,
			E1: 0.047318, E2: 7.45e-9,
			M1: 142.5905, M2: 0.011725806,
			Period: -0.71833, Radius: 25.362, Tilt: 97.77, Center: Sun,
		},
		Neptune: {
			N1: 131.7806, N2: 3.0173e-5,
			I1: 1.7700, I2: -2.55e-7,
			W1: 272.8461, W2: -6.027e-6,
			A1: 30.05826, A2: 3.313e-8,
			E1: 0.008606, E2: 2.15e-9,
			M1: 260.2471, M2: 0.005995147,
			Period: 0.67125, Radius: 24.622, Tilt: 28.32, Center: Sun,
		},
		Pluto: {
			N1: 110.30347,
			I1: 17.14175,
			W1: 113.76329,
			A1: 39.48168677,
			E1: 0.24880766,
			M1: 14.8540, M2: 0.0039752,
			Period: -6.387230, Radius: 1.1883, Tilt: 122.53, Center: Sun,
		},
		Moon: {
			N1: 125.1228, N2: -0.0529538083,
			I1: 5.1454,
			W1: 318.0634, W2: 0.1643573223,
			A1: 0.00256955529, // 60.2666 Earth radii
			E1: 0.054900,
			M1: 115.3654, M2: 13.0649929509,
			Period: 27.321661, Radius: 1.7374, Tilt: 6.68, Center: Earth,
		},
	}
}
