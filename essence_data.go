package ucum

import "math"

// buildEssenceAtoms returns the compiled atom table this registry ships
// with. In a full deployment this slice is the in-memory output of the
// build-time UCUM-essence-XML transformer described in spec.md §6; that
// generator is an explicit non-goal here (no XML essence file is an input
// to this repository), so this file stands in for its output with a
// curated subset: the seven SI base units, the common SI derived units,
// customary units exercised by spec.md's own worked examples (§8), the
// three temperature specials, the three logarithmic specials, and two
// arbitrary units.
//
// Base dimension order throughout: mass, length, time, current,
// temperature, amount, luminous_intensity (dimension.go).
func buildEssenceAtoms() []Atom {
	dim := func(mass, length, time, current, temp, amount, lum int8) Dimension {
		return Dimension{mass, length, time, current, temp, amount, lum}
	}

	atoms := []Atom{
		// --- SI base units (mass canonical is gram, not kilogram: kg is
		// reached by prefix-splitting "k" + "g") ---
		{Code: "g", DisplayName: "gram", Property: "mass", IsMetric: true, Factor: 1, Dimension: dim(1, 0, 0, 0, 0, 0, 0)},
		{Code: "m", DisplayName: "meter", Property: "length", IsMetric: true, Factor: 1, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
		{Code: "s", DisplayName: "second", Property: "time", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "A", DisplayName: "ampere", Property: "electric current", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 1, 0, 0, 0)},
		{Code: "K", DisplayName: "kelvin", Property: "temperature", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 1, 0, 0)},
		{Code: "mol", DisplayName: "mole", Property: "amount of substance", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 0, 1, 0)},
		{Code: "cd", DisplayName: "candela", Property: "luminous intensity", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 0, 0, 1)},

		// --- dimensionless geometric units ---
		{Code: "rad", DisplayName: "radian", Property: "plane angle", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 0, 0, 0)},
		{Code: "sr", DisplayName: "steradian", Property: "solid angle", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 0, 0, 0)},

		// --- SI derived units, reduced to the gram-based canonical ---
		{Code: "Hz", DisplayName: "hertz", Property: "frequency", IsMetric: true, Factor: 1, Dimension: dim(0, 0, -1, 0, 0, 0, 0)},
		{Code: "N", DisplayName: "newton", Property: "force", IsMetric: true, Factor: 1000, Dimension: dim(1, 1, -2, 0, 0, 0, 0)},
		{Code: "Pa", DisplayName: "pascal", Property: "pressure", IsMetric: true, Factor: 1000, Dimension: dim(1, -1, -2, 0, 0, 0, 0)},
		{Code: "J", DisplayName: "joule", Property: "energy", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -2, 0, 0, 0, 0)},
		{Code: "W", DisplayName: "watt", Property: "power", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -3, 0, 0, 0, 0)},
		{Code: "C", DisplayName: "coulomb", Property: "electric charge", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 1, 1, 0, 0, 0)},
		{Code: "V", DisplayName: "volt", Property: "electric potential", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -3, -1, 0, 0, 0)},
		{Code: "F", DisplayName: "farad", Property: "capacitance", IsMetric: true, Factor: 0.001, Dimension: dim(-1, -2, 4, 2, 0, 0, 0)},
		{Code: "Ohm", DisplayName: "ohm", Property: "electric resistance", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -3, -2, 0, 0, 0)},
		{Code: "S", DisplayName: "siemens", Property: "electric conductance", IsMetric: true, Factor: 0.001, Dimension: dim(-1, -2, 3, 2, 0, 0, 0)},
		{Code: "Wb", DisplayName: "weber", Property: "magnetic flux", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -2, -1, 0, 0, 0)},
		{Code: "T", DisplayName: "tesla", Property: "magnetic flux density", IsMetric: true, Factor: 1000, Dimension: dim(1, 0, -2, -1, 0, 0, 0)},
		{Code: "H", DisplayName: "henry", Property: "inductance", IsMetric: true, Factor: 1000, Dimension: dim(1, 2, -2, -2, 0, 0, 0)},
		{Code: "lm", DisplayName: "lumen", Property: "luminous flux", IsMetric: true, Factor: 1, Dimension: dim(0, 0, 0, 0, 0, 0, 1)},
		{Code: "lx", DisplayName: "lux", Property: "illuminance", IsMetric: true, Factor: 1, Dimension: dim(0, -2, 0, 0, 0, 0, 1)},
		{Code: "Bq", DisplayName: "becquerel", Property: "radioactivity", IsMetric: true, Factor: 1, Dimension: dim(0, 0, -1, 0, 0, 0, 0)},
		{Code: "Gy", DisplayName: "gray", Property: "absorbed dose", IsMetric: true, Factor: 1, Dimension: dim(0, 2, -2, 0, 0, 0, 0)},
		{Code: "Sv", DisplayName: "sievert", Property: "dose equivalent", IsMetric: true, Factor: 1, Dimension: dim(0, 2, -2, 0, 0, 0, 0)},
		{Code: "kat", DisplayName: "katal", Property: "catalytic activity", IsMetric: true, Factor: 1, Dimension: dim(0, 0, -1, 0, 0, 1, 0)},

		// --- non-SI but metric volume ---
		{Code: "L", DisplayName: "liter", Property: "volume", IsMetric: true, Factor: 0.001, Dimension: dim(0, 3, 0, 0, 0, 0, 0)},

		// --- time, accepted (non-prefixable) ---
		{Code: "min", DisplayName: "minute", Property: "time", IsMetric: false, Factor: 60, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "h", DisplayName: "hour", Property: "time", IsMetric: false, Factor: 3600, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "d", DisplayName: "day", Property: "time", IsMetric: false, Factor: 86400, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "wk", DisplayName: "week", Property: "time", IsMetric: false, Factor: 604800, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "mo", DisplayName: "month", Property: "time", IsMetric: false, Factor: 2629800, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},
		{Code: "a", DisplayName: "year", Property: "time", IsMetric: false, Factor: 31557600, Dimension: dim(0, 0, 1, 0, 0, 0, 0)},

		// --- customary length/mass/volume ---
		{Code: "[in_i]", DisplayName: "inch", Property: "length", IsMetric: false, Factor: 0.0254, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
		{Code: "[ft_i]", DisplayName: "foot", Property: "length", IsMetric: false, Factor: 0.3048, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
		{Code: "[yd_i]", DisplayName: "yard", Property: "length", IsMetric: false, Factor: 0.9144, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
		{Code: "[mi_i]", DisplayName: "mile", Property: "length", IsMetric: false, Factor: 1609.344, Dimension: dim(0, 1, 0, 0, 0, 0, 0)},
		{Code: "[lb_av]", DisplayName: "pound", Property: "mass", IsMetric: false, Factor: 453.59237, Dimension: dim(1, 0, 0, 0, 0, 0, 0)},
		{Code: "[oz_av]", DisplayName: "ounce", Property: "mass", IsMetric: false, Factor: 28.349523125, Dimension: dim(1, 0, 0, 0, 0, 0, 0)},
		{Code: "[gal_us]", DisplayName: "US gallon", Property: "volume", IsMetric: false, Factor: 0.003785411784, Dimension: dim(0, 3, 0, 0, 0, 0, 0)},
		{Code: "[qt_us]", DisplayName: "US quart", Property: "volume", IsMetric: false, Factor: 0.000946352946, Dimension: dim(0, 3, 0, 0, 0, 0, 0)},
		{Code: "[pt_us]", DisplayName: "US pint", Property: "volume", IsMetric: false, Factor: 0.000473176473, Dimension: dim(0, 3, 0, 0, 0, 0, 0)},
		{Code: "[foz_us]", DisplayName: "US fluid ounce", Property: "volume", IsMetric: false, Factor: 0.0000295735295625, Dimension: dim(0, 3, 0, 0, 0, 0, 0)},

		// --- pressure, referenced by spec.md §8 scenario 1 ---
		{Code: "mm[Hg]", DisplayName: "millimeter of mercury", Property: "pressure", IsMetric: false, Factor: 133322.387415, Dimension: dim(1, -1, -2, 0, 0, 0, 0)},
		{Code: "[psi]", DisplayName: "pound per square inch", Property: "pressure", IsMetric: false, Factor: 6894757.293168, Dimension: dim(1, -1, -2, 0, 0, 0, 0)},

		// --- dimensionless fraction ---
		{Code: "%", DisplayName: "percent", Property: "fraction", IsMetric: false, Factor: 0.01, Dimension: dim(0, 0, 0, 0, 0, 0, 0)},

		// --- temperature specials ---
		{Code: "Cel", DisplayName: "degree Celsius", Property: "temperature", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialTemperature, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
			Factor: 1, Offset: 273.15},
		{Code: "[degF]", DisplayName: "degree Fahrenheit", Property: "temperature", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialTemperature, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
			Factor: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0},
		{Code: "[degR]", DisplayName: "degree Rankine", Property: "temperature", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialTemperature, Dimension: dim(0, 0, 0, 0, 1, 0, 0),
			Factor: 5.0 / 9.0, Offset: 0},

		// --- logarithmic specials ---
		{Code: "dB", DisplayName: "decibel", Property: "level", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialLog, Dimension: Dimensionless,
			LogBase: 10, LogScale: 10},
		{Code: "B", DisplayName: "bel", Property: "level", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialLog, Dimension: Dimensionless,
			LogBase: 10, LogScale: 1},
		{Code: "Np", DisplayName: "neper", Property: "level", IsMetric: false,
			IsSpecial: true, SpecialKind: SpecialLog, Dimension: Dimensionless,
			LogBase: math.E, LogScale: 1},

		// --- arbitrary units ---
		{Code: "[IU]", DisplayName: "international unit", Property: "arbitrary", IsMetric: true,
			IsArbitrary: true, Dimension: Dimensionless, Factor: 1},
		{Code: "[arb'U]", DisplayName: "arbitrary unit", Property: "arbitrary", IsMetric: true,
			IsArbitrary: true, Dimension: Dimensionless, Factor: 1},
	}

	return atoms
}

// buildEssencePrefixes returns the compiled prefix table: the twenty SI
// prefixes plus the IEC binary prefixes, grounded directly on the
// teacher's si.go Prefixes map (extended here as data rather than a bare
// map literal so NewRegistry can index and validate it the same way it
// indexes atoms).
func buildEssencePrefixes() []Prefix {
	return []Prefix{
		{Code: "Y", DisplayName: "yotta", Factor: 1e24},
		{Code: "Z", DisplayName: "zetta", Factor: 1e21},
		{Code: "E", DisplayName: "exa", Factor: 1e18},
		{Code: "P", DisplayName: "peta", Factor: 1e15},
		{Code: "T", DisplayName: "tera", Factor: 1e12},
		{Code: "G", DisplayName: "giga", Factor: 1e9},
		{Code: "M", DisplayName: "mega", Factor: 1e6},
		{Code: "k", DisplayName: "kilo", Factor: 1e3},
		{Code: "h", DisplayName: "hecto", Factor: 1e2},
		{Code: "da", DisplayName: "deka", Factor: 1e1},
		{Code: "d", DisplayName: "deci", Factor: 1e-1},
		{Code: "c", DisplayName: "centi", Factor: 1e-2},
		{Code: "m", DisplayName: "milli", Factor: 1e-3},
		{Code: "u", DisplayName: "micro", Factor: 1e-6},
		{Code: "n", DisplayName: "nano", Factor: 1e-9},
		{Code: "p", DisplayName: "pico", Factor: 1e-12},
		{Code: "f", DisplayName: "femto", Factor: 1e-15},
		{Code: "a", DisplayName: "atto", Factor: 1e-18},
		{Code: "z", DisplayName: "zepto", Factor: 1e-21},
		{Code: "y", DisplayName: "yocto", Factor: 1e-24},
		{Code: "Ki", DisplayName: "kibi", Factor: math.Pow(2, 10)},
		{Code: "Mi", DisplayName: "mebi", Factor: math.Pow(2, 20)},
		{Code: "Gi", DisplayName: "gibi", Factor: math.Pow(2, 30)},
		{Code: "Ti", DisplayName: "tebi", Factor: math.Pow(2, 40)},
		{Code: "Pi", DisplayName: "pebi", Factor: math.Pow(2, 50)},
		{Code: "Ei", DisplayName: "exbi", Factor: math.Pow(2, 60)},
	}
}
