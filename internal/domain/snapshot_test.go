package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJ1 = `{
  "current_condition": [{"precipMM": "0.1", "humidity": "5", "temp_C": "33"}],
  "weather": [{
    "mintempC": "10", "maxtempC": "35", "sun_hour": "10.0", "uv_index": "2", "totalSnow_cm": "0.0",
    "astronomy": [{"moon_phase": "Waning Crescent", "sunrise": "06:01 AM"}]
  }],
  "nearest_area": [{"areaName": [{"value": "Tamanrasset"}], "country": [{"value": "Algeria"}]}]
}`

func validResponse(t *testing.T) ProviderResponse {
	t.Helper()
	resp, err := ParseProviderResponse([]byte(sampleJ1))
	require.NoError(t, err)
	return resp
}

func TestParseProviderResponse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		resp := validResponse(t)

		require.Len(t, resp.CurrentCondition, 1)
		assert.Equal(t, "0.1", resp.CurrentCondition[0].PrecipMM)
		require.Len(t, resp.Weather, 1)
		require.Len(t, resp.Weather[0].Astronomy, 1)
		require.NotNil(t, resp.Weather[0].Astronomy[0].MoonPhase)
		assert.Equal(t, "Waning Crescent", *resp.Weather[0].Astronomy[0].MoonPhase)
		require.Len(t, resp.NearestArea, 1)
		assert.Equal(t, "Algeria", resp.NearestArea[0].Country[0].Value)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseProviderResponse([]byte("<html>Sorry, we are out of queries</html>"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("numbers where strings are expected", func(t *testing.T) {
		_, err := ParseProviderResponse([]byte(`{"current_condition":[{"precipMM":0.1}]}`))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestNewSnapshot(t *testing.T) {
	snap, err := NewSnapshot(validResponse(t))
	require.NoError(t, err)

	assert.Equal(t, Snapshot{
		AreaName:  "Tamanrasset",
		Country:   "Algeria",
		PrecipMM:  0.1,
		Humidity:  5,
		MinTempC:  10,
		MaxTempC:  35,
		SunHours:  10.0,
		UVIndex:   2,
		MoonPhase: "Waning Crescent",
	}, snap)
}

func TestNewSnapshot_MissingRecords(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ProviderResponse)
		expected error
		mention  string
	}{
		{"empty nearest_area", func(r *ProviderResponse) { r.NearestArea = nil }, ErrNoAreaName, "area"},
		{"empty areaName", func(r *ProviderResponse) { r.NearestArea[0].AreaName = nil }, ErrNoAreaName, "area"},
		{"blank areaName", func(r *ProviderResponse) { r.NearestArea[0].AreaName = []LabelValue{{Value: " "}} }, ErrNoAreaName, "area"},
		{"empty country", func(r *ProviderResponse) { r.NearestArea[0].Country = nil }, ErrNoCountry, "country"},
		{"empty current_condition", func(r *ProviderResponse) { r.CurrentCondition = nil }, ErrNoCurrentConditions, "current conditions"},
		{"empty weather", func(r *ProviderResponse) { r.Weather = nil }, ErrNoWeather, "weather"},
		{"empty astronomy", func(r *ProviderResponse) { r.Weather[0].Astronomy = nil }, ErrNoAstronomy, "astronomy"},
		{"astronomy without moon_phase", func(r *ProviderResponse) { r.Weather[0].Astronomy[0].MoonPhase = nil }, ErrNoMoonPhase, "moon phase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse(t)
			tt.mutate(&resp)

			_, err := NewSnapshot(resp)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Contains(t, err.Error(), tt.mention)
		})
	}
}

func TestNewSnapshot_BadNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProviderResponse)
		field  string
	}{
		{"precip", func(r *ProviderResponse) { r.CurrentCondition[0].PrecipMM = "lots" }, "precipMM"},
		{"humidity is an integer", func(r *ProviderResponse) { r.CurrentCondition[0].Humidity = "5.5" }, "humidity"},
		{"missing min temp", func(r *ProviderResponse) { r.Weather[0].MinTempC = "" }, "mintempC"},
		{"max temp", func(r *ProviderResponse) { r.Weather[0].MaxTempC = "hot" }, "maxtempC"},
		{"sun hours", func(r *ProviderResponse) { r.Weather[0].SunHour = "n/a" }, "sun_hour"},
		{"uv index", func(r *ProviderResponse) { r.Weather[0].UVIndex = "" }, "uv_index"},
		{"snow depth", func(r *ProviderResponse) { r.Weather[0].TotalSnowCM = "" }, "totalSnow_cm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse(t)
			tt.mutate(&resp)

			_, err := NewSnapshot(resp)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewSnapshot_RejectsPaddedNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProviderResponse)
		field  string
	}{
		{"padded humidity", func(r *ProviderResponse) { r.CurrentCondition[0].Humidity = " 42 " }, "humidity"},
		{"trailing newline on precip", func(r *ProviderResponse) { r.CurrentCondition[0].PrecipMM = "0.1\n" }, "precipMM"},
		{"leading space on uv index", func(r *ProviderResponse) { r.Weather[0].UVIndex = " 3" }, "uv_index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse(t)
			tt.mutate(&resp)

			_, err := NewSnapshot(resp)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewSnapshot_MoonPhaseKeyAbsent(t *testing.T) {
	body := strings.Replace(sampleJ1, `"moon_phase": "Waning Crescent", `, "", 1)
	require.NotEqual(t, sampleJ1, body)

	resp, err := ParseProviderResponse([]byte(body))
	require.NoError(t, err)

	_, err = NewSnapshot(resp)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMoonPhase)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNewSnapshot_EmptyMoonPhaseIsKept(t *testing.T) {
	resp := validResponse(t)
	empty := ""
	resp.Weather[0].Astronomy[0].MoonPhase = &empty

	snap, err := NewSnapshot(resp)

	require.NoError(t, err)
	assert.Empty(t, snap.MoonPhase)
}
