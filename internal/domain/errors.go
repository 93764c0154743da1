package domain

import "errors"

// Lookup failures, one per user-visible failure category.
var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrUpstream          = errors.New("request to weather service returned unsuccessful")
	ErrUnreachable       = errors.New("weather service unreachable")
	ErrMalformedResponse = errors.New("malformed response from weather service")
)

// Snapshot construction failures. Each names the sub-record that was absent.
var (
	ErrNoCurrentConditions = errors.New("no current conditions found")
	ErrNoWeather           = errors.New("no weather information found")
	ErrNoAstronomy         = errors.New("no astronomy data found")
	ErrNoMoonPhase         = errors.New("no moon phase found")
	ErrNoAreaName          = errors.New("no area name found")
	ErrNoCountry           = errors.New("no country information found")
)
