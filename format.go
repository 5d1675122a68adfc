// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders a Duration as locale specific phrase text.
type Format interface {
	// Format renders the duration with its quantity rounded: a remainder
	// covering more than half of the unit bumps the magnitude by one.
	Format(d Duration) string

	// FormatUnrounded renders the duration with its quantity truncated,
	// used for all but the last segment of a precise chain.
	FormatUnrounded(d Duration) string

	// Decorate wraps already rendered phrase text with tense wording,
	// e.g. "3 days" becomes "3 days ago" or "3 days from now".
	Decorate(d Duration, time string) string
}

// PhraseFormat is the built-in Format. It renders phrases through the
// package catalog using the message key it was constructed with, and
// implements LocaleAware so the owning unit can switch its language.
type PhraseFormat struct {
	mu      sync.RWMutex
	key     string
	fixed   bool
	lang    language.Tag
	printer *message.Printer
}

// NewFormat creates a quantity aware phrase format for the given catalog
// message key, e.g. "minute". Keys of custom units must be registered with
// RegisterTranslations before they render.
func NewFormat(key string, lang language.Tag) *PhraseFormat {
	f := &PhraseFormat{key: key}
	matched, _ := matchLanguage(lang)
	f.lang = matched
	f.printer = printerFor(matched)
	return f
}

// NewFixedFormat creates a phrase format that renders the same phrase
// regardless of quantity, used for threshold units such as "just now".
func NewFixedFormat(key string, lang language.Tag) *PhraseFormat {
	f := NewFormat(key, lang)
	f.fixed = true
	return f
}

// SetLocale switches the phrase language. The tag is matched against the
// catalog languages; a tag the matcher cannot associate with any catalog
// language is rejected and the previous language stays active.
func (f *PhraseFormat) SetLocale(lang language.Tag) error {
	matched, conf := matchLanguage(lang)
	if conf == language.No {
		return fmt.Errorf("%w: language %s not supported", Error, lang)
	}
	f.mu.Lock()
	f.lang = matched
	f.printer = printerFor(matched)
	f.mu.Unlock()
	return nil
}

// Locale returns the currently active phrase language.
func (f *PhraseFormat) Locale() language.Tag {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lang
}

func (f *PhraseFormat) Format(d Duration) string {
	return f.render(roundedQuantity(d))
}

func (f *PhraseFormat) FormatUnrounded(d Duration) string {
	return f.render(absMillis(d.Quantity()))
}

func (f *PhraseFormat) Decorate(d Duration, time string) string {
	key := "from_now"
	if d.IsInPast() {
		key = "ago"
	}
	f.mu.RLock()
	p := f.printer
	f.mu.RUnlock()
	return p.Sprintf(key, time)
}

func (f *PhraseFormat) render(quantity int64) string {
	f.mu.RLock()
	p := f.printer
	f.mu.RUnlock()
	if f.fixed {
		return p.Sprintf(f.key)
	}
	return p.Sprintf(f.key, quantity)
}

// roundedQuantity bumps the quantity magnitude by one when the remainder
// covers more than half of the unit. Exactly half does not round.
func roundedQuantity(d Duration) int64 {
	q := absMillis(d.Quantity())
	if d.unit != nil && absMillis(d.Delta())*2 > absMillis(d.unit.MillisPerUnit()) {
		q++
	}
	return q
}
