package domain

import "fmt"

// HazardResult holds one judgment per hazard category plus the location label.
type HazardResult struct {
	AreaName      string        `json:"area_name"`
	Country       string        `json:"country"`
	Vampires      Vampires      `json:"vampires"`
	Precipitation Precipitation `json:"precipitation"`
	Temperature   Temperature   `json:"temperature"`
	Sun           Sun           `json:"sun"`
}

// Classify maps a snapshot onto the four hazard categories. It is total: any
// snapshot, however extreme, yields exactly one variant per category.
func Classify(s Snapshot) HazardResult {
	return HazardResult{
		AreaName:      s.AreaName,
		Country:       s.Country,
		Vampires:      classifyVampires(s.SunHours, s.MoonPhase),
		Precipitation: classifyPrecipitation(s.Humidity, s.PrecipMM, s.MaxTempC),
		Temperature:   classifyTemperature(s.MinTempC, s.MaxTempC),
		Sun:           classifySun(s.SunHours, s.UVIndex),
	}
}

// classifyPrecipitation: Drown overrides humidity and temperature entirely.
func classifyPrecipitation(humidity int, precipMM float64, maxTempC int) Precipitation {
	switch {
	case precipMM > 100.0:
		return PrecipitationDrown
	case humidity < 10 && precipMM < 0.5 && maxTempC > 30:
		return PrecipitationDry
	case humidity > 80 && precipMM < 0.5 && maxTempC > 30:
		return PrecipitationHumid
	default:
		return PrecipitationOk
	}
}

// classifyTemperature checks the minimum first, so a day spanning both
// extremes reports Freeze.
func classifyTemperature(minTempC, maxTempC int) Temperature {
	switch {
	case minTempC < -6:
		return TemperatureFreeze
	case maxTempC > 37:
		return TemperatureBurn
	default:
		return TemperatureOk
	}
}

// classifySun ignores sun hours once the UV index reaches 8.
func classifySun(sunHours float64, uvIndex int) Sun {
	switch {
	case uvIndex >= 8:
		return SunSunburn
	case sunHours >= 0.0 && sunHours <= 3.0:
		return SunDepression
	default:
		return SunOk
	}
}

func classifyVampires(sunHours float64, moonPhase string) Vampires {
	if sunHours < 2.0 && moonPhase == "Full Moon" {
		return VampiresYes
	}
	return VampiresNo
}

// Glyphs concatenates the category glyphs in display order: vampires,
// precipitation, temperature, sun.
func (r HazardResult) Glyphs() string {
	return r.Vampires.Glyph() + r.Precipitation.Glyph() + r.Temperature.Glyph() + r.Sun.Glyph()
}

// Count returns how many categories hold a non-Ok variant.
func (r HazardResult) Count() int {
	n := 0
	if r.Vampires != VampiresNo {
		n++
	}
	if r.Precipitation != PrecipitationOk {
		n++
	}
	if r.Temperature != TemperatureOk {
		n++
	}
	if r.Sun != SunOk {
		n++
	}
	return n
}

// Header is the location line printed above the glyphs.
func (r HazardResult) Header() string {
	return fmt.Sprintf("Current Meteorological Safety Hazards in %s, %s:", r.AreaName, r.Country)
}

// Line renders the bracketed glyph sequence, "[ ]" when nothing is flagged.
func (r HazardResult) Line() string {
	glyphs := r.Glyphs()
	if glyphs == "" {
		return "[ ]"
	}
	return "[ " + glyphs + " ]"
}

// Render returns the two-line summary, newline-terminated.
func (r HazardResult) Render() string {
	return r.Header() + "\n" + r.Line() + "\n"
}
