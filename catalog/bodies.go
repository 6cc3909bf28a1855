package catalog

// DefaultBodies returns the information of the Sun, the planets, Pluto and the Moon.
func DefaultBodies() []Body {
	return []Body{
		{Name: "Sun", Type: TypeStar, OrbitalSpeed: 220, Mass: 1.9885e30, MeanRadius: 696342, Temperature: 5778, Gravity: 274, Volume: 1.41e18, SiderealPeriod: 25.38,
			Description: "The star at the center of the solar system, a nearly perfect sphere of hot plasma."},
		{Name: "Mercury", Type: TypePlanet, OrbitalSpeed: 47.36, Mass: 3.3011e23, MeanRadius: 2439.7, Temperature: 440, Gravity: 3.7, Volume: 6.083e10, SiderealPeriod: 58.646, OrbitalPeriod: 87.969,
			Description: "The smallest planet and the closest to the Sun."},
		{Name: "Venus", Type: TypePlanet, OrbitalSpeed: 35.02, Mass: 4.8675e24, MeanRadius: 6051.8, Temperature: 737, Gravity: 8.87, Volume: 9.2843e11, SiderealPeriod: -243.025, OrbitalPeriod: 224.701,
			Description: "The hottest planet, wrapped in a thick carbon dioxide atmosphere, rotating backwards."},
		{Name: "Earth", Type: TypePlanet, OrbitalSpeed: 29.78, Mass: 5.97237e24, MeanRadius: 6371, Temperature: 288, Gravity: 9.807, Volume: 1.08321e12, SiderealPeriod: 0.99727, OrbitalPeriod: 365.256,
			Description: "Home."},
		{Name: "Mars", Type: TypePlanet, OrbitalSpeed: 24.07, Mass: 6.4171e23, MeanRadius: 3389.5, Temperature: 210, Gravity: 3.721, Volume: 1.6318e11, SiderealPeriod: 1.025957, OrbitalPeriod: 686.980,
			Description: "The red planet, with the largest volcano of the solar system."},
		{Name: "Jupiter", Type: TypePlanet, OrbitalSpeed: 13.07, Mass: 1.8982e27, MeanRadius: 69911, Temperature: 165, Gravity: 24.79, Volume: 1.4313e15, SiderealPeriod: 0.41354, OrbitalPeriod: 4332.59,
			Description: "The largest planet, a gas giant with a storm larger than the Earth."},
		{Name: "Saturn", Type: TypePlanet, OrbitalSpeed: 9.68, Mass: 5.6834e26, MeanRadius: 58232, Temperature: 134, Gravity: 10.44, Volume: 8.2713e14, SiderealPeriod: 0.44401, OrbitalPeriod: 10759.22,
			Description: "A gas giant known for its bright ring system."},
		{Name: "Uranus", Type: TypePlanet, OrbitalSpeed: 6.80, Mass: 8.6810e25, MeanRadius: 25362, Temperature: 76, Gravity: 8.69, Volume: 6.833e13, SiderealPeriod: -0.71833, OrbitalPeriod: 30688.5,
			Description: "An ice giant rotating on its side."},
		{Name: "Neptune", Type: TypePlanet, OrbitalSpeed: 5.43, Mass: 1.02413e26, MeanRadius: 24622, Temperature: 72, Gravity: 11.15, Volume: 6.254e13, SiderealPeriod: 0.67125, OrbitalPeriod: 60182,
			Description: "The farthest planet, with the strongest winds of the solar system."},
		{Name: "Pluto", Type: TypeDwarfPlanet, OrbitalSpeed: 4.743, Mass: 1.303e22, MeanRadius: 1188.3, Temperature: 44, Gravity: 0.62, Volume: 7.057e9, SiderealPeriod: -6.387230, OrbitalPeriod: 90560,
			Description: "A dwarf planet of the Kuiper belt."},
		{Name: "Moon", Type: TypeSatellite, OrbitalSpeed: 1.022, Mass: 7.342e22, MeanRadius: 1737.4, Temperature: 220, Gravity: 1.62, Volume: 2.1958e10, SiderealPeriod: 27.321661, OrbitalPeriod: 27.321661,
			Description: "The only natural satellite of the Earth."},
	}
}
