// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package prettytime

import (
	"fmt"

	"github.com/happy-sdk/happy/pkg/settings"
	"golang.org/x/text/language"
)

// Settings is the configuration blueprint for embedding prettytime into a
// Happy SDK application: the phrase language and whether timestamps render
// as single approximate phrases or full precise chains.
type Settings struct {
	Language settings.String `key:"language,save" default:"en" mutation:"mutable"`
	Precise  settings.Bool   `key:"precise" default:"false" mutation:"mutable"`
}

func (s Settings) Blueprint() (*settings.Blueprint, error) {
	b, err := settings.New(s)
	if err != nil {
		return nil, err
	}

	b.Describe("language", language.English, "Language used for relative time phrases")
	b.Describe("precise", language.English, "Render full precise duration chains instead of approximate phrases")
	b.AddValidator("language", "Validate language tag", func(s settings.Setting) error {
		lang, err := language.Parse(s.String())
		if err != nil {
			return fmt.Errorf("%w: %s", Error, err.Error())
		}
		if _, conf := matchLanguage(lang); conf == language.No {
			return fmt.Errorf("%w: language %s not supported", Error, lang)
		}
		return nil
	})
	return b, nil
}
