// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import "fmt"

// CalculateDuration selects the best fitting unit for the given millisecond
// difference and returns it together with the signed whole-unit quantity and
// the millisecond remainder.
//
// Units are scanned in ascending coarseness order. A unit is selected when
// its millisPerUnit*maxQuantity exceeds the absolute difference, or when it
// is the last unit in the sequence. A unit with maxQuantity zero inherits
// "how many of me fit in the next coarser unit" as its bound. When the
// difference is smaller than one instance of the selected unit the quantity
// rounds up to the sign of the difference, with an exactly-zero difference
// treated as +1.
//
// The unit sequence must not be empty.
func CalculateDuration(difference int64, units []Unit) (Duration, error) {
	if len(units) == 0 {
		return Duration{}, fmt.Errorf("%w: no units configured", Error)
	}

	abs := absMillis(difference)

	for i, u := range units {
		millisPerUnit := absMillis(u.MillisPerUnit())
		quantity := absMillis(u.MaxQuantity())
		isLast := i == len(units)-1

		if quantity == 0 && !isLast {
			// Integer division may derive a zero bound from a
			// misconfigured unit sequence. Kept as-is: callers own
			// the ordering invariant.
			quantity = units[i+1].MillisPerUnit() / u.MillisPerUnit()
		}

		// does this unit encompass the difference?
		if millisPerUnit*quantity > abs || isLast {
			d := Duration{unit: u}
			if millisPerUnit > abs {
				// Rounding up: one whole unit toward the sign. An
				// exactly-zero difference reads as one unit of this
				// granularity with nothing left to decompose.
				d.quantity = sign(difference)
				if difference == 0 {
					return d, nil
				}
			} else {
				d.quantity = difference / millisPerUnit
			}
			d.delta = difference - d.quantity*millisPerUnit
			return d, nil
		}
	}

	// unreachable: the last unit always encompasses
	return Duration{}, fmt.Errorf("%w: no unit selected", Error)
}

// CalculatePreciseDurations decomposes the given millisecond difference into
// a chain of durations, largest unit first, by repeatedly applying
// CalculateDuration to each step's remainder. Summing quantity*millisPerUnit
// over the chain plus the final element's delta reconstructs the difference.
//
// Decomposition stops when the remainder reaches zero, and is capped at one
// step per configured unit. The cap is a termination guard against unit
// sequences whose remainders never shrink; when it trips, the final
// element's delta carries the undecomposed rest.
func CalculatePreciseDurations(difference int64, units []Unit) ([]Duration, error) {
	d, err := CalculateDuration(difference, units)
	if err != nil {
		return nil, err
	}
	durations := []Duration{d}
	for d.delta != 0 && len(durations) < len(units) {
		if d, err = CalculateDuration(d.delta, units); err != nil {
			return nil, err
		}
		durations = append(durations, d)
	}
	return durations, nil
}

func absMillis(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// sign maps exactly-zero to +1 so that a zero difference still rounds up to
// one whole unit of the finest granularity.
func sign(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}
