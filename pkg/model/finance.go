package model

import "math"

// Unit conversion constants.
const (
	HoursPerDay  = 24
	DaysPerYear  = 365
	HoursPerYear = HoursPerDay * DaysPerYear
	Million      = 1e6
	KWPerMW      = 1000.0

	LbToMetricTon = 0.000453592
	MMBtuPerGJ    = 0.94709
)

// FixedChargeRate returns the annual fraction of capital recovered each
// year to amortize an investment over n years at discount rate r:
//
//	FCR = r / (1 - (1+r)^-n)
//
// At r == 0 the annuity degenerates to straight-line recovery, 1/n.
func FixedChargeRate(rate float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if rate == 0 {
		return 1 / float64(years)
	}
	return rate / (1 - math.Pow(1+rate, -float64(years)))
}
