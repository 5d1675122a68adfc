// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import (
	"fmt"

	"golang.org/x/text/language"
)

// Unit describes one granularity of time with a fixed millisecond
// equivalence. Units ordered by ascending MillisPerUnit form the search
// sequence of the duration calculator; the last unit in the sequence is
// always selected as a fallback, so no difference is ever "too big".
type Unit interface {
	fmt.Stringer

	// MillisPerUnit returns how many milliseconds one instance of this
	// unit represents.
	MillisPerUnit() int64

	// MaxQuantity returns the upper bound on how many instances of this
	// unit may be expressed before the calculator switches to the next
	// coarser unit. Zero means the bound is derived at calculation time
	// from the ratio to the next unit in the sequence.
	MaxQuantity() int64

	// Format returns the phrase formatter rendering durations of this unit.
	Format() Format

	// SetLocale switches the language of the unit's phrase formatter.
	SetLocale(lang language.Tag) error
}

// LocaleAware is implemented by formats whose phrase language can be
// switched after construction.
type LocaleAware interface {
	SetLocale(lang language.Tag) error
}

type unit struct {
	name          string
	millisPerUnit int64
	maxQuantity   int64
	format        Format
}

// NewUnit creates a custom time unit. The name is used for debug output
// only; phrase text comes from the format. A maxQuantity of zero derives
// the bound from the next coarser unit during calculation.
func NewUnit(name string, millisPerUnit, maxQuantity int64, format Format) Unit {
	return &unit{
		name:          name,
		millisPerUnit: millisPerUnit,
		maxQuantity:   maxQuantity,
		format:        format,
	}
}

func (u *unit) String() string       { return u.name }
func (u *unit) MillisPerUnit() int64 { return u.millisPerUnit }
func (u *unit) MaxQuantity() int64   { return u.maxQuantity }
func (u *unit) Format() Format       { return u.format }

func (u *unit) SetLocale(lang language.Tag) error {
	if la, ok := u.format.(LocaleAware); ok {
		return la.SetLocale(lang)
	}
	return nil
}
