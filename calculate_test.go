// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import (
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

// testUnits returns an uncapped millisecond through day sequence. The
// calculator never touches formats, so none are attached.
func testUnits() []Unit {
	return []Unit{
		NewUnit("millisecond", 1, 0, nil),
		NewUnit("second", MillisPerSecond, 0, nil),
		NewUnit("minute", MillisPerMinute, 0, nil),
		NewUnit("hour", MillisPerHour, 0, nil),
		NewUnit("day", MillisPerDay, 0, nil),
	}
}

func TestCalculateDuration(t *testing.T) {
	units := testUnits()

	tests := []struct {
		name     string
		in       int64
		unit     string
		quantity int64
		delta    int64
	}{
		{"half second", 500, "millisecond", 500, 0},
		{"ninety seconds back", -90000, "minute", -1, -30000},
		{"three days", 3 * MillisPerDay, "day", 3, 0},
		{"zero difference", 0, "millisecond", 1, 0},
		{"one hour back", -MillisPerHour, "hour", -1, 0},
		{"beyond coarsest falls back", 40 * MillisPerDay, "day", 40, 0},
		{"day hour minute second", 90061000, "day", 1, 3661000},
	}

	for _, test := range tests {
		d, err := CalculateDuration(test.in, units)
		testutils.NoError(t, err, test.name)
		testutils.Equal(t, test.unit, d.Unit().String(), test.name)
		testutils.Equal(t, test.quantity, d.Quantity(), test.name)
		testutils.Equal(t, test.delta, d.Delta(), test.name)
	}
}

func TestCalculateDurationNoUnits(t *testing.T) {
	_, err := CalculateDuration(1000, nil)
	testutils.ErrorIs(t, err, Error)
	_, err = CalculatePreciseDurations(1000, []Unit{})
	testutils.ErrorIs(t, err, Error)
}

func TestSignSymmetry(t *testing.T) {
	units := testUnits()
	for _, d := range []int64{1, 500, 999, 90000, 3661000, 90061000, 400 * MillisPerDay} {
		pos, err := CalculateDuration(d, units)
		testutils.NoError(t, err)
		neg, err := CalculateDuration(-d, units)
		testutils.NoError(t, err)

		testutils.Equal(t, pos.Unit().String(), neg.Unit().String(), "unit for ±%d", d)
		testutils.Equal(t, pos.Quantity(), -neg.Quantity(), "quantity for ±%d", d)
		testutils.Equal(t, pos.Delta(), -neg.Delta(), "delta for ±%d", d)
	}
}

func TestSelectionMonotonicity(t *testing.T) {
	units := testUnits()
	coarsest := units[len(units)-1]

	for _, diff := range []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 86399999, 86400000, 1 << 40} {
		d, err := CalculateDuration(diff, units)
		testutils.NoError(t, err)
		if d.Unit() == coarsest {
			continue
		}
		// effective cap of the selected unit must encompass the difference
		var next Unit
		for i, u := range units {
			if u == d.Unit() && i < len(units)-1 {
				next = units[i+1]
			}
		}
		testutils.NotNil(t, next, "selected unit should be in the sequence")
		bound := d.Unit().MaxQuantity()
		if bound == 0 {
			bound = next.MillisPerUnit() / d.Unit().MillisPerUnit()
		}
		testutils.Assert(t, d.Unit().MillisPerUnit()*bound > absMillis(diff),
			"unit %s does not encompass %d", d.Unit(), diff)
	}
}

func TestRoundingBoundary(t *testing.T) {
	units := testUnits()

	tests := []struct {
		name     string
		in       int64
		quantity int64
	}{
		{"zero maps to plus one", 0, 1},
		// below one millisecond cannot happen with integer millis, use a
		// sequence starting at second granularity instead
	}
	for _, test := range tests {
		d, err := CalculateDuration(test.in, units)
		testutils.NoError(t, err)
		testutils.Equal(t, test.quantity, d.Quantity(), test.name)
	}

	seconds := []Unit{
		NewUnit("second", MillisPerSecond, 0, nil),
		NewUnit("minute", MillisPerMinute, 0, nil),
	}
	d, err := CalculateDuration(300, seconds)
	testutils.NoError(t, err)
	testutils.Equal(t, "second", d.Unit().String())
	testutils.Equal(t, int64(1), d.Quantity(), "sub-unit difference rounds up to sign")
	d, err = CalculateDuration(-300, seconds)
	testutils.NoError(t, err)
	testutils.Equal(t, int64(-1), d.Quantity())
}

func TestCalculatePreciseDurations(t *testing.T) {
	units := []Unit{
		NewUnit("second", MillisPerSecond, 0, nil),
		NewUnit("minute", MillisPerMinute, 0, nil),
		NewUnit("hour", MillisPerHour, 0, nil),
		NewUnit("day", MillisPerDay, 0, nil),
	}

	// 1 day, 1 hour, 1 minute, 1 second
	durations, err := CalculatePreciseDurations(90061000, units)
	testutils.NoError(t, err)
	testutils.Equal(t, 4, len(durations))

	wantUnits := []string{"day", "hour", "minute", "second"}
	for i, d := range durations {
		testutils.Equal(t, wantUnits[i], d.Unit().String())
		testutils.Equal(t, int64(1), d.Quantity())
	}
	testutils.Equal(t, int64(0), durations[len(durations)-1].Delta())
}

func TestCalculatePreciseDurationsZero(t *testing.T) {
	durations, err := CalculatePreciseDurations(0, testUnits())
	testutils.NoError(t, err)
	testutils.Equal(t, 1, len(durations), "zero difference decomposes to a single element")
	testutils.Equal(t, int64(1), durations[0].Quantity())
	testutils.Equal(t, int64(0), durations[0].Delta())
}

func TestReconstructionLaw(t *testing.T) {
	units := testUnits()
	for _, diff := range []int64{1, -1, 500, 90061000, -90061000, 123456789, -987654321, 40 * MillisPerDay, 1<<41 + 7} {
		durations, err := CalculatePreciseDurations(diff, units)
		testutils.NoError(t, err)

		var sum int64
		for _, d := range durations {
			sum += d.Quantity() * d.Unit().MillisPerUnit()
		}
		sum += durations[len(durations)-1].Delta()
		testutils.Equal(t, diff, sum, "chain must reconstruct %d", diff)
	}
}

func TestDecompositionBound(t *testing.T) {
	// A sequence whose remainders never shrink: the guard must stop the
	// chain at one step per unit, carrying the rest in the final delta.
	units := []Unit{
		NewUnit("minute", MillisPerMinute, 0, nil),
		NewUnit("hour", MillisPerHour, 0, nil),
	}
	durations, err := CalculatePreciseDurations(500, units)
	testutils.NoError(t, err)
	testutils.Assert(t, len(durations) <= len(units), "chain capped at unit count")

	var sum int64
	for _, d := range durations {
		sum += d.Quantity() * d.Unit().MillisPerUnit()
	}
	sum += durations[len(durations)-1].Delta()
	testutils.Equal(t, int64(500), sum)
}

func TestDerivedMaxQuantity(t *testing.T) {
	units := testUnits()

	// 59 seconds still fits the second unit, 61 spills into minutes.
	d, err := CalculateDuration(59000, units)
	testutils.NoError(t, err)
	testutils.Equal(t, "second", d.Unit().String())
	testutils.Equal(t, int64(59), d.Quantity())

	d, err = CalculateDuration(61000, units)
	testutils.NoError(t, err)
	testutils.Equal(t, "minute", d.Unit().String())
	testutils.Equal(t, int64(1), d.Quantity())
	testutils.Equal(t, int64(1000), d.Delta())
}

func TestExplicitMaxQuantity(t *testing.T) {
	// an explicit cap wins over the derived ratio
	units := []Unit{
		NewUnit("second", MillisPerSecond, 30, nil),
		NewUnit("minute", MillisPerMinute, 0, nil),
	}
	d, err := CalculateDuration(45000, units)
	testutils.NoError(t, err)
	testutils.Equal(t, "minute", d.Unit().String())
	testutils.Equal(t, int64(1), d.Quantity())
}
