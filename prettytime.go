// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

// Package prettytime creates social style relative timestamps such as
// "moments ago", "3 days ago" or "2 months from now".
//
// Usage:
//
//	pt, _ := prettytime.New()
//	phrase := pt.Format(time.Now())
//	// moments from now
//
// A PrettyTime instance may be shared between goroutines. Thread safety is
// best effort: every calculation works on a private snapshot of the unit
// sequence taken at call start, so concurrent reconfiguration can never
// produce a half replaced view, but a calculation racing a SetUnits or
// SetLocale call sees some consistent prior configuration rather than a
// transactionally latest one.
package prettytime

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/happy-sdk/happy/pkg/logging"
	"golang.org/x/text/language"
)

// Error is the package sentinel all prettytime errors wrap.
var Error = errors.New("prettytime")

// Option configures a PrettyTime instance during New.
type Option func(*PrettyTime) error

// WithReference pins the reference timestamp the instance compares against.
// Without it, "now" is sampled at call time.
func WithReference(t time.Time) Option {
	return func(pt *PrettyTime) error {
		pt.reference = &t
		return nil
	}
}

// WithLocale sets the phrase language. The tag must match one of the
// catalog languages, see SupportedLanguages and RegisterTranslations.
func WithLocale(lang language.Tag) Option {
	return func(pt *PrettyTime) error {
		matched, conf := matchLanguage(lang)
		if conf == language.No {
			return fmt.Errorf("%w: language %s not supported", Error, lang)
		}
		pt.lang = matched
		return nil
	}
}

// WithUnits replaces the default unit sequence.
func WithUnits(units ...Unit) Option {
	return func(pt *PrettyTime) error {
		if len(units) == 0 {
			return fmt.Errorf("%w: no units provided", Error)
		}
		pt.units = slices.Clone(units)
		return nil
	}
}

// WithLogger attaches a logger for locale fan-out diagnostics. The library
// is silent without one.
func WithLogger(l logging.Logger) Option {
	return func(pt *PrettyTime) error {
		pt.logger = l
		return nil
	}
}

// PrettyTime converts timestamps into relative phrases against a reference
// instant. The zero value is not usable, construct instances with New.
type PrettyTime struct {
	mu        sync.RWMutex
	reference *time.Time
	lang      language.Tag
	units     []Unit
	logger    logging.Logger
}

// New creates a PrettyTime instance with the built-in unit sequence,
// English phrases and an unpinned reference.
func New(opts ...Option) (*PrettyTime, error) {
	pt := &PrettyTime{lang: language.English}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(pt); err != nil {
			return nil, err
		}
	}
	if pt.units == nil {
		pt.units = DefaultUnits(pt.lang)
	} else if err := pt.localizeUnits(pt.lang, pt.units); err != nil {
		return nil, err
	}
	return pt, nil
}

// ApproximateDuration calculates the single best fitting Duration between
// the reference timestamp and then. An unpinned reference means "now",
// sampled for this call only.
func (pt *PrettyTime) ApproximateDuration(then time.Time) Duration {
	pt.mu.RLock()
	ref := time.Now()
	if pt.reference != nil {
		ref = *pt.reference
	}
	units := slices.Clone(pt.units)
	pt.mu.RUnlock()

	// units are guaranteed non-empty by New and SetUnits
	d, _ := CalculateDuration(then.UnixMilli()-ref.UnixMilli(), units)
	return d
}

// CalculatePreciseDurations decomposes the difference between the reference
// timestamp and then into a chain of Durations, largest unit first, down to
// the precision of the finest configured unit.
//
// When the reference is unpinned this call pins it to "now", so that
// repeated precise calculations on the same instance stay internally
// consistent instead of re-sampling the clock. Use ClearReference to
// unpin again.
func (pt *PrettyTime) CalculatePreciseDurations(then time.Time) []Duration {
	pt.mu.Lock()
	if pt.reference == nil {
		now := time.Now()
		pt.reference = &now
	}
	ref := *pt.reference
	units := slices.Clone(pt.units)
	pt.mu.Unlock()

	durations, _ := CalculatePreciseDurations(then.UnixMilli()-ref.UnixMilli(), units)
	return durations
}

// Format renders then as a relative phrase against the reference timestamp.
// A zero then means "now".
func (pt *PrettyTime) Format(then time.Time) string {
	if then.IsZero() {
		then = time.Now()
	}
	return pt.FormatDuration(pt.ApproximateDuration(then))
}

// FormatPrecise renders the full precise duration chain between the
// reference timestamp and then, e.g. "1 day 2 hours 3 minutes ago".
// See CalculatePreciseDurations for the reference pinning side effect.
func (pt *PrettyTime) FormatPrecise(then time.Time) string {
	return pt.FormatDurations(pt.CalculatePreciseDurations(then))
}

// FormatDuration renders a single Duration using its unit's format.
func (pt *PrettyTime) FormatDuration(d Duration) string {
	if d.unit == nil {
		return ""
	}
	format := d.unit.Format()
	return format.Decorate(d, format.Format(d))
}

// FormatDurations renders a duration chain: all but the last segment
// unrounded, joined with single spaces, with the last segment's decoration
// applied to the whole phrase.
func (pt *PrettyTime) FormatDurations(durations []Duration) string {
	if len(durations) == 0 {
		return ""
	}
	var b strings.Builder
	last := durations[len(durations)-1]
	for i, d := range durations {
		if d.unit == nil {
			continue
		}
		if i < len(durations)-1 {
			b.WriteString(d.unit.Format().FormatUnrounded(d))
			b.WriteString(" ")
		} else {
			b.WriteString(d.unit.Format().Format(d))
		}
	}
	if last.unit == nil {
		return b.String()
	}
	return last.unit.Format().Decorate(last, b.String())
}

// SetReference pins the reference timestamp. A reference after "now" simply
// flips the sign of subsequent differences, producing future tense output.
func (pt *PrettyTime) SetReference(t time.Time) {
	pt.mu.Lock()
	pt.reference = &t
	pt.mu.Unlock()
}

// ClearReference unpins the reference timestamp so calculations sample the
// clock again.
func (pt *PrettyTime) ClearReference() {
	pt.mu.Lock()
	pt.reference = nil
	pt.mu.Unlock()
}

// Reference returns the pinned reference timestamp, if any.
func (pt *PrettyTime) Reference() (time.Time, bool) {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	if pt.reference == nil {
		return time.Time{}, false
	}
	return *pt.reference, true
}

// SetUnits replaces the active unit sequence. The sequence must be ordered
// by ascending coarseness and must not be empty. The units are localized to
// the instance's current language.
func (pt *PrettyTime) SetUnits(units ...Unit) error {
	if len(units) == 0 {
		return fmt.Errorf("%w: no units provided", Error)
	}
	replacement := slices.Clone(units)

	pt.mu.Lock()
	lang := pt.lang
	pt.units = replacement
	pt.mu.Unlock()

	return pt.localizeUnits(lang, replacement)
}

// Units returns a copy of the active unit sequence.
func (pt *PrettyTime) Units() []Unit {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return slices.Clone(pt.units)
}

// SetLocale switches the phrase language and propagates it into every
// configured unit's format. The tag is matched against the catalog
// languages; an unmatchable tag is rejected without touching the units.
func (pt *PrettyTime) SetLocale(lang language.Tag) error {
	matched, conf := matchLanguage(lang)
	if conf == language.No {
		return fmt.Errorf("%w: language %s not supported", Error, lang)
	}
	if matched != lang && pt.logger != nil {
		pt.logger.Debug("prettytime: matched requested language",
			slog.String("requested", lang.String()),
			slog.String("matched", matched.String()))
	}

	pt.mu.Lock()
	pt.lang = matched
	units := slices.Clone(pt.units)
	pt.mu.Unlock()

	return pt.localizeUnits(matched, units)
}

// Locale returns the active phrase language.
func (pt *PrettyTime) Locale() language.Tag {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.lang
}

func (pt *PrettyTime) String() string {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	ref := "now"
	if pt.reference != nil {
		ref = pt.reference.Format(time.RFC3339)
	}
	return fmt.Sprintf("prettytime.PrettyTime{reference=%s, locale=%s}", ref, pt.lang)
}

// localizeUnits fans the language out to each unit, O(number of units).
func (pt *PrettyTime) localizeUnits(lang language.Tag, units []Unit) error {
	var errs []error
	for _, u := range units {
		if err := u.SetLocale(lang); err != nil {
			if pt.logger != nil {
				pt.logger.Warn("prettytime: unit rejected language",
					slog.String("unit", u.String()),
					slog.String("language", lang.String()),
					slog.String("err", err.Error()))
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
