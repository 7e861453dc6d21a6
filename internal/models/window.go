package models

import "time"

// DateWindow is the inclusive date range a news search covers.
// Invariant: From is strictly before To.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// NewDateWindow computes the [now - days, now] window at date granularity.
func NewDateWindow(now time.Time, days int) DateWindow {
	to := now.Truncate(24 * time.Hour)
	return DateWindow{
		From: to.AddDate(0, 0, -days),
		To:   to,
	}
}

// FromDate returns the window start formatted for the news backend.
func (w DateWindow) FromDate() string {
	return w.From.Format("2006-01-02")
}

// ToDate returns the window end formatted for the news backend.
func (w DateWindow) ToDate() string {
	return w.To.Format("2006-01-02")
}

// Days returns the window length in whole days.
func (w DateWindow) Days() int {
	return int(w.To.Sub(w.From).Hours() / 24)
}
