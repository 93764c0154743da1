package domain

import "fmt"

// Vampires reports whether conditions favor vampires.
type Vampires int

const (
	VampiresNo Vampires = iota
	VampiresYes
)

// Precipitation is the moisture hazard.
type Precipitation int

const (
	PrecipitationOk Precipitation = iota
	PrecipitationDry
	PrecipitationHumid
	PrecipitationDrown
)

// Temperature is the thermal hazard.
type Temperature int

const (
	TemperatureOk Temperature = iota
	TemperatureFreeze
	TemperatureBurn
)

// Sun is the sunlight exposure hazard.
type Sun int

const (
	SunOk Sun = iota
	SunSunburn
	SunDepression
)

// level pairs a variant's stable name with its display glyph.
type level struct {
	name  string
	glyph string
}

var (
	vampireLevels = []level{
		VampiresNo:  {"no", ""},
		VampiresYes: {"yes", "🧛🏻"},
	}
	precipitationLevels = []level{
		PrecipitationOk:    {"ok", ""},
		PrecipitationDry:   {"dry", "🐪"},
		PrecipitationHumid: {"humid", "😰"},
		PrecipitationDrown: {"drown", "🌊"},
	}
	temperatureLevels = []level{
		TemperatureOk:     {"ok", ""},
		TemperatureFreeze: {"freeze", "🥶"},
		TemperatureBurn:   {"burn", "🥵"},
	}
	sunLevels = []level{
		SunOk:         {"ok", ""},
		SunSunburn:    {"sunburn", "🕶"},
		SunDepression: {"depression", "😔"},
	}
)

func lookup(levels []level, i int) level {
	if i < 0 || i >= len(levels) {
		return level{name: fmt.Sprintf("unknown(%d)", i)}
	}
	return levels[i]
}

func parseLevel(levels []level, category string, text []byte) (int, error) {
	for i, l := range levels {
		if l.name == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s level %q", category, text)
}

func (v Vampires) String() string { return lookup(vampireLevels, int(v)).name }

// Glyph returns the display symbol, empty for VampiresNo.
func (v Vampires) Glyph() string { return lookup(vampireLevels, int(v)).glyph }

func (v Vampires) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Vampires) UnmarshalText(text []byte) error {
	i, err := parseLevel(vampireLevels, "vampire", text)
	*v = Vampires(i)
	return err
}

func (p Precipitation) String() string { return lookup(precipitationLevels, int(p)).name }

// Glyph returns the display symbol, empty for PrecipitationOk.
func (p Precipitation) Glyph() string { return lookup(precipitationLevels, int(p)).glyph }

func (p Precipitation) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Precipitation) UnmarshalText(text []byte) error {
	i, err := parseLevel(precipitationLevels, "precipitation", text)
	*p = Precipitation(i)
	return err
}

func (t Temperature) String() string { return lookup(temperatureLevels, int(t)).name }

// Glyph returns the display symbol, empty for TemperatureOk.
func (t Temperature) Glyph() string { return lookup(temperatureLevels, int(t)).glyph }

func (t Temperature) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Temperature) UnmarshalText(text []byte) error {
	i, err := parseLevel(temperatureLevels, "temperature", text)
	*t = Temperature(i)
	return err
}

func (s Sun) String() string { return lookup(sunLevels, int(s)).name }

// Glyph returns the display symbol, empty for SunOk.
func (s Sun) Glyph() string { return lookup(sunLevels, int(s)).glyph }

func (s Sun) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Sun) UnmarshalText(text []byte) error {
	i, err := parseLevel(sunLevels, "sun", text)
	*s = Sun(i)
	return err
}
