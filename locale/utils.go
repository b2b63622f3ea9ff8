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

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphabetic checks if a string contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isNumeric checks if a string contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// titleCase returns an ASCII string in title case (e.g., "Hant").
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// isLanguageSubtag reports whether a segment has the shape of an ISO 639
// language code (two or three letters) or is the wildcard.
func isLanguageSubtag(s string) bool {
	if s == wildcardTag {
		return true
	}
	return (len(s) == 2 || len(s) == 3) && isAlphabetic(s)
}

// isScriptSubtag reports whether a segment has the shape of an ISO 15924
// script code (four letters).
func isScriptSubtag(s string) bool {
	return len(s) == 4 && isAlphabetic(s)
}

// isRegionSubtag reports whether a segment has the shape of an ISO 3166-1
// alpha-2 region code (two letters) or a UN M.49 numeric code (three digits).
func isRegionSubtag(s string) bool {
	if len(s) == 2 && isAlphabetic(s) {
		return true
	}
	return len(s) == 3 && isNumeric(s)
}
