// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import "fmt"

// Duration represents a time difference expressed in a single Unit.
// Quantity is the number of whole units, signed: negative quantities lie in
// the past, positive ones in the future. Delta is the remainder in
// milliseconds left over after removing Quantity*MillisPerUnit from the
// original difference, and feeds further decomposition.
//
// A Duration is immutable once returned from a calculation.
type Duration struct {
	unit     Unit
	quantity int64
	delta    int64
}

// Unit returns the time unit this duration is expressed in.
func (d Duration) Unit() Unit { return d.unit }

// Quantity returns the signed number of whole units.
func (d Duration) Quantity() int64 { return d.quantity }

// Delta returns the unaccounted remainder in milliseconds.
func (d Duration) Delta() int64 { return d.delta }

// IsInPast reports whether the duration lies in the past.
func (d Duration) IsInPast() bool { return d.quantity < 0 }

// IsInFuture reports whether the duration lies in the future.
func (d Duration) IsInFuture() bool { return d.quantity > 0 }

func (d Duration) String() string {
	name := "<nil>"
	if d.unit != nil {
		name = d.unit.String()
	}
	return fmt.Sprintf("prettytime.Duration{%d %s, delta %dms}", d.quantity, name, d.delta)
}
