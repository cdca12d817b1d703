package model

import (
	"testing"
	"time"
)

func TestDaysUntilExpiration(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		exp  time.Time
		want int
	}{
		{"half day rounds up", now.Add(12 * time.Hour), 1},
		{"exactly two days", now.Add(48 * time.Hour), 2},
		{"just under three days", now.Add(71 * time.Hour), 3},
		{"already expired", now.Add(-36 * time.Hour), -1},
		{"same instant", now, 0},
	}
	for _, tc := range cases {
		if got := DaysUntilExpiration(tc.exp, now); got != tc.want {
			t.Errorf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestExpirationStatus(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	cases := []struct {
		name string
		exp  *time.Time
		want string
	}{
		{"nil expiration is normal", nil, StatusNormal},
		{"yesterday is expired", at(-24 * time.Hour), StatusExpired},
		{"two days out is critical", at(47 * time.Hour), StatusCritical},
		{"three days out is critical", at(72 * time.Hour), StatusCritical},
		{"four days out is warning", at(96 * time.Hour), StatusWarning},
		{"seven days out is warning", at(7 * 24 * time.Hour), StatusWarning},
		{"eight days out is normal", at(8 * 24 * time.Hour), StatusNormal},
	}
	for _, tc := range cases {
		if got := ExpirationStatus(tc.exp, now); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
