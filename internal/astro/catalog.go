package astro

// DefaultCatalog returns the built-in catalog of bright and nearby stars.
// Coordinates are J2000 epoch, ordered roughly by magnitude (brightest first).
// Physical values are rounded literature figures.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultStars)
}

func entry(name, constellation string, ra, dec, mag, distLy, ageGyr, mass, lum, tempK float64, spectral, desc string) Star {
	return Star{
		Name:          name,
		Constellation: constellation,
		RAdeg:         ra,
		DecDeg:        dec,
		Mag:           mag,
		DistanceLy:    distLy,
		AgeGyr:        ageGyr,
		MassSolar:     mass,
		Luminosity:    lum,
		TemperatureK:  tempK,
		SpectralClass: spectral,
		Description:   desc,
	}
}

var defaultStars = []Star{
	// Magnitude < 0.5
	entry("Sirius", "CMa", 101.287, -16.716, -1.46, 8.6, 0.24, 2.06, 25.4, 9940, "A1V", "Brightest star in the night sky, with a white dwarf companion."),
	entry("Canopus", "Car", 95.988, -52.696, -0.74, 310, 0.025, 8.0, 10700, 7350, "A9II", "Second brightest star, used as a spacecraft attitude reference."),
	entry("Rigil Kentaurus", "Cen", 219.902, -60.834, -0.27, 4.37, 5.3, 1.1, 1.5, 5790, "G2V", "Nearest star system visible to the naked eye."),
	entry("Arcturus", "Boo", 213.915, 19.182, -0.05, 36.7, 7.1, 1.08, 170, 4286, "K1.5III", "Orange giant, brightest star of the northern celestial hemisphere."),
	entry("Vega", "Lyr", 279.235, 38.784, 0.03, 25, 0.455, 2.14, 40, 9602, "A0V", "Photometric zero point and corner of the Summer Triangle."),
	entry("Capella", "Aur", 79.172, 45.998, 0.08, 42.9, 0.59, 2.57, 78.7, 4970, "G8III", "Pair of yellow giants orbiting each other every 104 days."),
	entry("Rigel", "Ori", 78.634, -8.202, 0.13, 860, 0.008, 21, 120000, 12100, "B8Ia", "Blue supergiant marking Orion's foot."),
	entry("Procyon", "CMi", 114.826, 5.225, 0.34, 11.46, 1.87, 1.5, 6.93, 6530, "F5IV-V", "Nearby subgiant with a white dwarf companion."),
	entry("Achernar", "Eri", 24.429, -57.237, 0.46, 139, 0.037, 6.7, 3150, 15000, "B6Vep", "Rapid rotator flattened into an oblate spheroid."),

	// Magnitude 0.5-1.5
	entry("Betelgeuse", "Ori", 88.793, 7.407, 0.50, 548, 0.01, 16.5, 126000, 3600, "M1-2Ia", "Red supergiant expected to end as a supernova."),
	entry("Hadar", "Cen", 210.956, -60.373, 0.61, 390, 0.014, 12, 41700, 25000, "B1III", "Triple system pointing toward the Southern Cross."),
	entry("Altair", "Aql", 297.696, 8.868, 0.76, 16.7, 0.1, 1.86, 10.6, 7550, "A7V", "Fast-spinning star of the Summer Triangle."),
	entry("Acrux", "Cru", 186.650, -63.099, 0.76, 320, 0.01, 17.8, 25000, 28000, "B0.5IV", "Brightest star of the Southern Cross."),
	entry("Aldebaran", "Tau", 68.980, 16.509, 0.85, 65.3, 6.6, 1.16, 439, 3910, "K5III", "Orange giant forming the eye of the Bull."),
	entry("Antares", "Sco", 247.352, -26.432, 0.96, 550, 0.011, 12, 75900, 3660, "M1.5Iab", "Red supergiant at the heart of the Scorpion."),
	entry("Spica", "Vir", 201.298, -11.161, 0.97, 250, 0.0125, 11.4, 20500, 22400, "B1V", "Close binary distorted into egg shapes by tides."),
	entry("Pollux", "Gem", 116.329, 28.026, 1.14, 33.8, 0.724, 1.91, 43, 4586, "K0III", "Orange giant hosting a confirmed exoplanet."),
	entry("Fomalhaut", "PsA", 344.413, -29.622, 1.16, 25.1, 0.44, 1.92, 16.6, 8590, "A3V", "Surrounded by a bright debris disk."),
	entry("Deneb", "Cyg", 310.358, 45.280, 1.25, 2615, 0.01, 19, 196000, 8525, "A2Ia", "One of the most luminous stars visible to the naked eye."),
	entry("Mimosa", "Cru", 191.930, -59.689, 1.25, 280, 0.01, 16, 33000, 27000, "B0.5III", "Second brightest star of the Southern Cross."),
	entry("Regulus", "Leo", 152.093, 11.967, 1.35, 79.3, 0.1, 3.8, 288, 12460, "B8IVn", "Heart of the Lion, lying almost on the ecliptic."),

	// Magnitude 1.5-2.5
	entry("Adhara", "CMa", 104.656, -28.972, 1.50, 430, 0.0225, 12.6, 38700, 22900, "B2II", "Brightest extreme-ultraviolet source in the sky."),
	entry("Castor", "Gem", 113.650, 31.889, 1.58, 51, 0.29, 2.76, 30, 10286, "A1V", "Sextuple star system."),
	entry("Shaula", "Sco", 263.402, -37.104, 1.63, 570, 0.0316, 14.5, 36300, 25000, "B1.5IV", "Stinger of the Scorpion."),
	entry("Bellatrix", "Ori", 81.283, 6.350, 1.64, 250, 0.0251, 8.6, 9211, 22000, "B2III", "Orion's western shoulder."),
	entry("Elnath", "Tau", 81.573, 28.608, 1.65, 134, 0.1, 5, 700, 13824, "B7III", "Tip of the Bull's northern horn."),
	entry("Alnilam", "Ori", 84.053, -1.202, 1.69, 2000, 0.0057, 40, 420000, 27500, "B0Ia", "Middle star of Orion's Belt."),
	entry("Alnitak", "Ori", 85.190, -1.943, 1.77, 1260, 0.0064, 33, 250000, 29500, "O9.5Iab", "Eastern star of Orion's Belt, near the Flame Nebula."),
	entry("Alioth", "UMa", 193.507, 55.960, 1.77, 82.6, 0.3, 2.91, 102, 9020, "A1III-IVp", "Brightest star of the Big Dipper."),
	entry("Dubhe", "UMa", 165.932, 61.751, 1.79, 123, 0.2, 4.25, 316, 4660, "K0III", "Pointer star leading to Polaris."),
	entry("Mirfak", "Per", 51.081, 49.861, 1.79, 510, 0.041, 8.5, 5000, 6350, "F5Ib", "Brightest member of the Alpha Persei Cluster."),
	entry("Wezen", "CMa", 107.098, -26.393, 1.84, 1600, Unknown(), 17, 50000, 6100, "F8Ia", "Yellow-white supergiant whose age is poorly constrained."),
	entry("Alkaid", "UMa", 206.885, 49.313, 1.86, 104, 0.01, 6.1, 594, 15540, "B3V", "End of the Big Dipper's handle."),
	entry("Polaris", "UMi", 37.954, 89.264, 2.02, 433, 0.07, 5.4, 1260, 6015, "F7Ib", "The North Star, a Cepheid variable within a degree of the pole."),
	entry("Mizar", "UMa", 200.981, 54.925, 2.04, 82.9, 0.37, 2.43, 33, 9000, "A2V", "Naked-eye double with Alcor."),
	entry("Kochab", "UMi", 222.676, 74.156, 2.08, 131, 2.95, 2.2, 390, 4030, "K4III", "Guardian of the pole, once a pole star itself."),
	entry("Rasalhague", "Oph", 263.734, 12.560, 2.08, 48.6, 0.77, 2.4, 25, 8000, "A5III", "Head of the Serpent Bearer."),
	entry("Algol", "Per", 47.042, 40.957, 2.12, 90, 0.57, 3.17, 98, 13000, "B8V", "The Demon Star, an eclipsing binary dimming every 2.87 days."),
	entry("Denebola", "Leo", 177.265, 14.572, 2.13, 35.9, 0.1, 1.78, 15, 8500, "A3Va", "Tail of the Lion."),
	entry("Schedar", "Cas", 10.127, 56.537, 2.23, 228, 0.1, 4.5, 676, 4530, "K0IIIa", "Brightest star in Cassiopeia."),
	entry("Alphecca", "CrB", 233.672, 26.715, 2.23, 75, 0.314, 2.58, 74, 9700, "A0V", "Jewel of the Northern Crown."),
	entry("Eltanin", "Dra", 269.152, 51.489, 2.23, 154, 1.2, 1.72, 471, 3930, "K5III", "Dragon's eye, approaching the Sun."),
	entry("Sadr", "Cyg", 305.557, 40.257, 2.23, 1800, 0.012, 12, 33000, 5790, "F8Iab", "Center of the Northern Cross."),
	entry("Caph", "Cas", 2.295, 59.150, 2.27, 54.7, 1.1, 1.91, 27, 7079, "F2III", "Delta Scuti variable in Cassiopeia's W."),

	// Fainter
	entry("Mira", "Cet", 34.837, -2.978, 3.04, 300, 6, 1.18, 8400, 2918, "M7IIIe", "Prototype long-period variable with a comet-like tail."),
	entry("Albireo", "Cyg", 292.680, 27.960, 3.18, 430, 0.1, 5, 950, 4270, "K3II", "Gold and blue double at the Swan's beak."),
	entry("Tau Ceti", "Cet", 26.017, -15.938, 3.50, 11.9, 5.8, 0.78, 0.52, 5344, "G8V", "Nearby Sun-like star with a dusty disk."),
	entry("Thuban", "Dra", 211.097, 64.376, 3.65, 303, 0.3, 2.8, 479, 10000, "A0III", "Pole star when the pyramids were built."),
	entry("Epsilon Eridani", "Eri", 53.233, -9.458, 3.73, 10.5, 0.6, 0.82, 0.34, 5084, "K2V", "Young nearby star with a known giant planet."),
	entry("61 Cygni", "Cyg", 316.725, 38.750, 5.21, 11.4, 6.1, 0.70, 0.15, 4526, "K5V", "First star to have its parallax measured."),
	entry("Barnard's Star", "Oph", 269.452, 4.693, 9.54, 5.96, 10, 0.144, 0.0035, 3134, "M4V", "Star with the largest proper motion."),
	entry("Proxima Centauri", "Cen", 217.429, -62.680, 11.13, 4.24, 4.85, 0.122, 0.0017, 3042, "M5.5Ve", "Closest known star to the Sun."),
}
