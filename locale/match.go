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

import "strings"

// IsLocaleSupported reports whether loc matches any entry of supported.
//
// A supported entry matches when each of its populated subtags equals the
// corresponding subtag of loc; an empty script or region in the supported
// entry acts as a wildcard for that subtag, and the "*" language matches
// any language. Matching is therefore direction-sensitive: a request for
// "en-UK" matches a supported "en", but a request for "en" does not match
// a supported "en-US".
//
// If loc is invalid the check yields defaultValue. Invalid entries in
// supported are skipped.
func IsLocaleSupported(loc Locale, supported []Locale, defaultValue bool) bool {
	if !loc.IsValid() {
		return defaultValue
	}
	for _, s := range supported {
		if !s.IsValid() {
			continue
		}
		languageMatches := s.language == "" ||
			s.language == wildcardTag ||
			s.language == loc.language
		scriptMatches := s.script == "" || s.script == loc.script
		regionMatches := s.region == "" || s.region == loc.region
		if languageMatches && scriptMatches && regionMatches {
			return true
		}
	}
	return false
}

// IsAnyLocaleSupported reports whether any element of locales matches any
// element of supported under the IsLocaleSupported rule.
//
// If locales is empty the check short-circuits to defaultValue without
// inspecting supported; callers decide whether "no locale specified" means
// allow or deny. An empty supported set likewise yields defaultValue.
func IsAnyLocaleSupported(locales, supported []Locale, defaultValue bool) bool {
	if len(locales) == 0 {
		return defaultValue
	}
	if len(supported) == 0 {
		return defaultValue
	}
	for _, loc := range locales {
		if IsLocaleSupported(loc, supported, defaultValue) {
			return true
		}
	}
	return false
}

// FromList parses a comma-separated list of BCP 47 tags, such as the locale
// lists carried in model metadata, into one Locale per element. Surrounding
// whitespace is trimmed. Elements that fail to parse are retained as invalid
// Locales so that positions are preserved; an empty input yields nil.
func FromList(tags string) []Locale {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	locales := make([]Locale, 0, len(parts))
	for _, part := range parts {
		locales = append(locales, FromBCP47(strings.TrimSpace(part)))
	}
	return locales
}
