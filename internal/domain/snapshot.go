package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProviderResponse is the subset of the wttr.in `format=j1` document the
// classifier needs. Numeric fields arrive as strings and stay strings here;
// NewSnapshot parses them.
type ProviderResponse struct {
	CurrentCondition []CurrentCondition `json:"current_condition"`
	Weather          []WeatherPeriod    `json:"weather"`
	NearestArea      []NearestArea      `json:"nearest_area"`
}

// CurrentCondition is one entry of the provider's current_condition array.
type CurrentCondition struct {
	PrecipMM string `json:"precipMM"`
	Humidity string `json:"humidity"` // percent
}

// WeatherPeriod is one forecast day from the provider's weather array.
type WeatherPeriod struct {
	MinTempC    string      `json:"mintempC"`
	MaxTempC    string      `json:"maxtempC"`
	SunHour     string      `json:"sun_hour"`
	UVIndex     string      `json:"uv_index"`
	TotalSnowCM string      `json:"totalSnow_cm"`
	Astronomy   []Astronomy `json:"astronomy"`
}

// Astronomy carries the moon phase label, e.g. "Full Moon". MoonPhase is nil
// when the key is absent; an empty label is still a label.
type Astronomy struct {
	MoonPhase *string `json:"moon_phase"`
}

// NearestArea is the provider's resolved location.
type NearestArea struct {
	AreaName []LabelValue `json:"areaName"`
	Country  []LabelValue `json:"country"`
}

// LabelValue is the provider's {"value": "..."} wrapper.
type LabelValue struct {
	Value string `json:"value"`
}

// Snapshot is the typed, immutable view of one provider response.
type Snapshot struct {
	AreaName  string
	Country   string
	PrecipMM  float64
	Humidity  int
	MinTempC  int
	MaxTempC  int
	SunHours  float64
	UVIndex   int
	MoonPhase string
}

// ParseProviderResponse decodes a `format=j1` body. Decode failures wrap
// ErrMalformedResponse.
func ParseProviderResponse(data []byte) (ProviderResponse, error) {
	var resp ProviderResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ProviderResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return resp, nil
}

// NewSnapshot validates that every required sub-record is present and parses
// the numeric strings. Missing data is never defaulted: each absence returns
// its own sentinel, wrapped with ErrMalformedResponse.
func NewSnapshot(resp ProviderResponse) (Snapshot, error) {
	if len(resp.NearestArea) == 0 {
		return Snapshot{}, missing(ErrNoAreaName)
	}
	area := resp.NearestArea[0]
	areaName := firstValue(area.AreaName)
	if areaName == "" {
		return Snapshot{}, missing(ErrNoAreaName)
	}
	country := firstValue(area.Country)
	if country == "" {
		return Snapshot{}, missing(ErrNoCountry)
	}

	if len(resp.CurrentCondition) == 0 {
		return Snapshot{}, missing(ErrNoCurrentConditions)
	}
	cond := resp.CurrentCondition[0]

	if len(resp.Weather) == 0 {
		return Snapshot{}, missing(ErrNoWeather)
	}
	day := resp.Weather[0]
	if len(day.Astronomy) == 0 {
		return Snapshot{}, missing(ErrNoAstronomy)
	}
	moonPhase := day.Astronomy[0].MoonPhase
	if moonPhase == nil {
		return Snapshot{}, missing(ErrNoMoonPhase)
	}

	var (
		snap = Snapshot{
			AreaName:  areaName,
			Country:   country,
			MoonPhase: *moonPhase,
		}
		err error
	)
	if snap.PrecipMM, err = parseFloatField("precipMM", cond.PrecipMM); err != nil {
		return Snapshot{}, err
	}
	if snap.Humidity, err = parseIntField("humidity", cond.Humidity); err != nil {
		return Snapshot{}, err
	}
	if snap.MinTempC, err = parseIntField("mintempC", day.MinTempC); err != nil {
		return Snapshot{}, err
	}
	if snap.MaxTempC, err = parseIntField("maxtempC", day.MaxTempC); err != nil {
		return Snapshot{}, err
	}
	if snap.SunHours, err = parseFloatField("sun_hour", day.SunHour); err != nil {
		return Snapshot{}, err
	}
	if snap.UVIndex, err = parseIntField("uv_index", day.UVIndex); err != nil {
		return Snapshot{}, err
	}
	// Snow depth is not classified, but a response without it is incomplete.
	if _, err = parseFloatField("totalSnow_cm", day.TotalSnowCM); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

func missing(sentinel error) error {
	return fmt.Errorf("%w: %w", ErrMalformedResponse, sentinel)
}

func firstValue(values []LabelValue) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

// Numeric fields must be bare numbers; surrounding whitespace is malformed.
func parseFloatField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s=%q: %w", ErrMalformedResponse, name, raw, err)
	}
	return v, nil
}

func parseIntField(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s=%q: %w", ErrMalformedResponse, name, raw, err)
	}
	return v, nil
}
