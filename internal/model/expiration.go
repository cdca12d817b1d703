package model

import (
	"math"
	"time"
)

// Expiration status values, ordered from worst to best.
const (
	StatusExpired  = "expired"
	StatusCritical = "critical"
	StatusWarning  = "warning"
	StatusNormal   = "normal"
)

// DaysUntilExpiration returns the whole number of days between now and
// exp, rounded up. Already expired items yield negative values.
func DaysUntilExpiration(exp, now time.Time) int {
	return int(math.Ceil(exp.Sub(now).Hours() / 24))
}

// ExpirationStatus classifies an optional expiration date relative to now:
// expired when past, critical within 3 days, warning within 7, otherwise
// normal. Items without an expiration date are always normal.
func ExpirationStatus(exp *time.Time, now time.Time) string {
	if exp == nil {
		return StatusNormal
	}
	days := DaysUntilExpiration(*exp, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= 3:
		return StatusCritical
	case days <= 7:
		return StatusWarning
	default:
		return StatusNormal
	}
}
