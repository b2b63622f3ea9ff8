/*
Copyright 2026 Polyglot Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package locale

import (
	"errors"

	"golang.org/x/text/language"
)

// Errors returned by the golang.org/x/text/language bridge.
var (
	ErrInvalidLocale = errors.New("the invalid locale has no language.Tag form")
	ErrWildcardTag   = errors.New("the wildcard locale has no language.Tag form")
)

// FromTag converts a golang.org/x/text/language Tag into a Locale.
//
// Only the subtags actually present in the tag are carried over; no likely
// subtags are inferred. A tag without a concrete language base, such as
// language.Und, converts to the invalid Locale.
func FromTag(t language.Tag) Locale {
	base, script, region := t.Raw()
	lang := base.String()
	if lang == "" || lang == "und" {
		return Invalid()
	}
	loc := Locale{language: lang, valid: true}
	// Raw reports placeholder codes for unspecified subtags.
	if s := script.String(); s != "Zzzz" {
		loc.script = s
	}
	if r := region.String(); r != "ZZ" {
		loc.region = r
	}
	return loc
}

// Tag converts the Locale into a golang.org/x/text/language Tag for use with
// the wider x/text ecosystem. The invalid and wildcard locales have no tag
// form and return an error.
func (l Locale) Tag() (language.Tag, error) {
	if !l.valid {
		return language.Und, ErrInvalidLocale
	}
	if l.IsWildcard() {
		return language.Und, ErrWildcardTag
	}
	return language.Parse(l.String())
}
