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

// Package locale provides lightweight parsing and matching of BCP 47-style
// locale tags, decomposed into language, script, and region subtags.
//
// Unlike a full RFC 5646 implementation, this package classifies subtags
// purely by their character shape (a four-letter segment is a script, a
// two-letter or three-digit segment is a region) and performs no registry
// validation. Malformed input never fails hard: parsing an unrecognizable
// tag yields an invalid Locale, and unrecognized segments such as variants
// or extensions are skipped so that future tag forms keep parsing.
//
// The special tag "*" denotes the wildcard locale, which matches every
// concrete locale during support checks.
package locale

import (
	"encoding/json"
	"strings"
)

// wildcardTag is the textual form of the wildcard locale. It is stored in
// the language subtag, mirroring its position in a tag string.
const wildcardTag = "*"

// Locale is an immutable language/script/region triple produced by FromBCP47.
// The zero value is the invalid Locale. Locales are plain values and may be
// freely copied.
type Locale struct {
	language string
	script   string
	region   string
	valid    bool
}

// Invalid returns the canonical invalid Locale. All accessors on it return
// the empty string and IsValid reports false.
func Invalid() Locale {
	return Locale{}
}

// FromBCP47 parses a BCP 47-style tag into a Locale.
//
// The tag is split on hyphens. The first segment must have the shape of an
// ISO 639 language code (two or three letters) or be the wildcard "*";
// otherwise the whole parse yields the invalid Locale. Every following
// segment is classified by shape alone: four letters is a script, two
// letters or three digits is a region, and anything else (variants,
// extensions, private use) is ignored. The first segment of each kind wins.
//
// Input is case-insensitive. Subtags are normalized at parse time: language
// lowercase, script title case, region uppercase. FromBCP47 never panics and
// always returns a Locale; check IsValid before matching.
func FromBCP47(tag string) Locale {
	parts := strings.Split(tag, "-")
	if !isLanguageSubtag(parts[0]) {
		return Invalid()
	}
	loc := Locale{language: strings.ToLower(parts[0]), valid: true}
	for _, part := range parts[1:] {
		switch {
		case loc.script == "" && isScriptSubtag(part):
			loc.script = titleCase(part)
		case loc.region == "" && isRegionSubtag(part):
			loc.region = strings.ToUpper(part)
		}
	}
	return loc
}

// Language returns the normalized language subtag, "*" for the wildcard
// locale, or the empty string if the Locale is invalid.
func (l Locale) Language() string {
	return l.language
}

// Script returns the normalized script subtag, or the empty string if the
// tag carried none or the Locale is invalid.
func (l Locale) Script() string {
	return l.script
}

// Region returns the normalized region subtag, or the empty string if the
// tag carried none or the Locale is invalid.
func (l Locale) Region() string {
	return l.region
}

// IsValid reports whether the Locale was parsed successfully.
func (l Locale) IsValid() bool {
	return l.valid
}

// IsWildcard reports whether the Locale is the wildcard locale "*".
func (l Locale) IsWildcard() bool {
	return l.language == wildcardTag
}

// Equal reports whether two Locales have identical subtags. Two invalid
// Locales compare equal; an invalid Locale never equals a valid one.
func (l Locale) Equal(other Locale) bool {
	return l == other
}

// String reconstructs the normalized tag, e.g. "zh-Hant-TW". It returns the
// empty string for the invalid Locale. String implements fmt.Stringer.
func (l Locale) String() string {
	if !l.valid {
		return ""
	}
	var b strings.Builder
	b.Grow(len(l.language) + len(l.script) + len(l.region) + 2)
	b.WriteString(l.language)
	if l.script != "" {
		b.WriteByte('-')
		b.WriteString(l.script)
	}
	if l.region != "" {
		b.WriteByte('-')
		b.WriteString(l.region)
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface. The Locale is
// marshaled as its normalized tag string; the invalid Locale marshals as "".
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. An empty or
// unrecognizable tag string yields the invalid Locale rather than an error,
// matching FromBCP47's degrade-don't-reject contract.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = FromBCP47(s)
	return nil
}
