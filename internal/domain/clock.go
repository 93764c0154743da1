package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// reportClock is the time source for HazardReport.CheckedAt.
var reportClock = clockwork.NewRealClock()

// SetClock replaces the time source used to stamp reports, e.g. with a
// clockwork fake clock for reproducible fixtures. nil restores wall time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	reportClock = c
}

// checkedAt is the report timestamp, always in UTC.
func checkedAt() time.Time {
	return reportClock.Now().UTC()
}
