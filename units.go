// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import "golang.org/x/text/language"

// Millisecond equivalences of the built-in units. These are fixed
// approximations: a month is the average Gregorian month and coarser units
// build on it. Calendar arithmetic is out of scope on purpose.
const (
	MillisPerSecond     int64 = 1000
	MillisPerMinute           = 60 * MillisPerSecond
	MillisPerHour             = 60 * MillisPerMinute
	MillisPerDay              = 24 * MillisPerHour
	MillisPerWeek             = 7 * MillisPerDay
	MillisPerMonth      int64 = 2629743830
	MillisPerYear             = 12 * MillisPerMonth
	MillisPerDecade           = 10 * MillisPerYear
	MillisPerCentury          = 100 * MillisPerYear
	MillisPerMillennium       = 1000 * MillisPerYear

	// justNowThreshold is how close to the reference a difference must be
	// to read as "moments ago" / "moments from now".
	justNowThreshold = 5 * MillisPerMinute
)

// DefaultUnits returns the built-in unit sequence in ascending coarseness
// order, with phrase formats bound to the given language: a "just now"
// threshold unit followed by millisecond through millennium. Each call
// returns fresh units, so reconfiguring one PrettyTime instance never leaks
// into another.
func DefaultUnits(lang language.Tag) []Unit {
	defs := []struct {
		name          string
		key           string
		millisPerUnit int64
		maxQuantity   int64
		fixed         bool
	}{
		{"just now", "just_now", 1, justNowThreshold, true},
		{"millisecond", "millisecond", 1, MillisPerSecond, false},
		{"second", "second", MillisPerSecond, 0, false},
		{"minute", "minute", MillisPerMinute, 0, false},
		{"hour", "hour", MillisPerHour, 0, false},
		{"day", "day", MillisPerDay, 0, false},
		{"week", "week", MillisPerWeek, 0, false},
		{"month", "month", MillisPerMonth, 0, false},
		{"year", "year", MillisPerYear, 0, false},
		{"decade", "decade", MillisPerDecade, 0, false},
		{"century", "century", MillisPerCentury, 0, false},
		{"millennium", "millennium", MillisPerMillennium, 0, false},
	}

	units := make([]Unit, 0, len(defs))
	for _, def := range defs {
		var format Format
		if def.fixed {
			format = NewFixedFormat(def.key, lang)
		} else {
			format = NewFormat(def.key, lang)
		}
		units = append(units, NewUnit(def.name, def.millisPerUnit, def.maxQuantity, format))
	}
	return units
}
