// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Plural is a phrase with grammatical number variants. The quantity is
// passed as the first and only formatting argument.
type Plural struct {
	One   string
	Other string
}

// Built-in phrase data. Unit keys carry Plural values, decoration and fixed
// phrases are plain format strings taking the already rendered fragment.
var builtinTranslations = map[language.Tag]map[string]any{
	language.English: {
		"just_now":    "moments",
		"millisecond": Plural{"%d millisecond", "%d milliseconds"},
		"second":      Plural{"%d second", "%d seconds"},
		"minute":      Plural{"%d minute", "%d minutes"},
		"hour":        Plural{"%d hour", "%d hours"},
		"day":         Plural{"%d day", "%d days"},
		"week":        Plural{"%d week", "%d weeks"},
		"month":       Plural{"%d month", "%d months"},
		"year":        Plural{"%d year", "%d years"},
		"decade":      Plural{"%d decade", "%d decades"},
		"century":     Plural{"%d century", "%d centuries"},
		"millennium":  Plural{"%d millennium", "%d millennia"},
		"ago":         "%s ago",
		"from_now":    "%s from now",
	},
	language.German: {
		"just_now":    "einem Augenblick",
		"millisecond": Plural{"%d Millisekunde", "%d Millisekunden"},
		"second":      Plural{"%d Sekunde", "%d Sekunden"},
		"minute":      Plural{"%d Minute", "%d Minuten"},
		"hour":        Plural{"%d Stunde", "%d Stunden"},
		"day":         Plural{"%d Tag", "%d Tagen"},
		"week":        Plural{"%d Woche", "%d Wochen"},
		"month":       Plural{"%d Monat", "%d Monaten"},
		"year":        Plural{"%d Jahr", "%d Jahren"},
		"decade":      Plural{"%d Jahrzehnt", "%d Jahrzehnten"},
		"century":     Plural{"%d Jahrhundert", "%d Jahrhunderten"},
		"millennium":  Plural{"%d Jahrtausend", "%d Jahrtausenden"},
		"ago":         "vor %s",
		"from_now":    "in %s",
	},
	language.Estonian: {
		"just_now":    "mõni hetk",
		"millisecond": Plural{"%d millisekund", "%d millisekundit"},
		"second":      Plural{"%d sekund", "%d sekundit"},
		"minute":      Plural{"%d minut", "%d minutit"},
		"hour":        Plural{"%d tund", "%d tundi"},
		"day":         Plural{"%d päev", "%d päeva"},
		"week":        Plural{"%d nädal", "%d nädalat"},
		"month":       Plural{"%d kuu", "%d kuud"},
		"year":        Plural{"%d aasta", "%d aastat"},
		"decade":      Plural{"%d aastakümme", "%d aastakümmet"},
		"century":     Plural{"%d sajand", "%d sajandit"},
		"millennium":  Plural{"%d aastatuhat", "%d aastatuhandet"},
		"ago":         "%s tagasi",
		"from_now":    "%s pärast",
	},
}

var (
	catalogMu    sync.RWMutex
	msgCatalog   *catalog.Builder
	langs        []language.Tag
	langMatcher  language.Matcher
	printerCache map[language.Tag]*message.Printer
)

func init() {
	msgCatalog = catalog.NewBuilder(catalog.Fallback(language.English))
	printerCache = make(map[language.Tag]*message.Printer)

	// English first so the matcher falls back to it.
	langs = []language.Tag{language.English, language.German, language.Estonian}
	for _, lang := range langs {
		for key, value := range builtinTranslations[lang] {
			if err := setTranslation(lang, key, value); err != nil {
				panic(err)
			}
		}
	}
	langMatcher = language.NewMatcher(langs)
}

// RegisterTranslations adds or overrides relative time phrases for the given
// language, making it available to SetLocale on any PrettyTime instance.
// Unit phrase values must be of type Plural; decoration phrases ("ago",
// "from_now") and the "just_now" phrase are plain strings formatting the
// already rendered fragment.
func RegisterTranslations(lang language.Tag, translations map[string]any) error {
	catalogMu.Lock()
	defer catalogMu.Unlock()

	for key, value := range translations {
		if err := setTranslation(lang, key, value); err != nil {
			return err
		}
	}
	if !slices.Contains(langs, lang) {
		langs = append(langs, lang)
		langMatcher = language.NewMatcher(langs)
	}
	// translations changed, drop cached printers
	printerCache = make(map[language.Tag]*message.Printer)
	return nil
}

// SupportedLanguages returns the languages currently known to the phrase
// catalog, fallback language first.
func SupportedLanguages() []language.Tag {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return slices.Clone(langs)
}

func setTranslation(lang language.Tag, key string, value any) error {
	switch v := value.(type) {
	case string:
		return msgCatalog.SetString(lang, key, v)
	case Plural:
		return msgCatalog.Set(lang, key, plural.Selectf(1, "%d",
			"one", v.One,
			"other", v.Other,
		))
	default:
		return fmt.Errorf("%w: translation %s(%s): unsupported value type %T", Error, lang, key, value)
	}
}

// matchLanguage resolves an arbitrary tag against the catalog languages.
func matchLanguage(lang language.Tag) (language.Tag, language.Confidence) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	_, i, conf := langMatcher.Match(lang)
	return langs[i], conf
}

func printerFor(lang language.Tag) *message.Printer {
	catalogMu.RLock()
	if p, ok := printerCache[lang]; ok {
		catalogMu.RUnlock()
		return p
	}
	catalogMu.RUnlock()

	catalogMu.Lock()
	defer catalogMu.Unlock()
	p, ok := printerCache[lang]
	if !ok {
		p = message.NewPrinter(lang, message.Catalog(msgCatalog))
		printerCache[lang] = p
	}
	return p
}
