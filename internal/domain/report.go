package domain

import "time"

// HazardReport is a classified lookup, the unit published to downstream sinks.
type HazardReport struct {
	Query     string       `json:"query,omitempty"` // location as typed; empty for auto-detect
	Result    HazardResult `json:"result"`
	Hazards   int          `json:"hazards"`
	CheckedAt time.Time    `json:"checked_at"`
}

// NewReport stamps a classification with the current clock time.
func NewReport(query string, result HazardResult) HazardReport {
	return HazardReport{
		Query:     query,
		Result:    result,
		Hazards:   result.Count(),
		CheckedAt: checkedAt(),
	}
}

// Label identifies the resolved location, e.g. "Oslo, Norway".
func (r HazardReport) Label() string {
	return r.Result.AreaName + ", " + r.Result.Country
}
