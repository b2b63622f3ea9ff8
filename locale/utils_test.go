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

//nolint:testpackage // This is a white-box test file for the locale package.
package locale

import "testing"

// TestShapePredicates tests the subtag shape classifiers against the
// boundary lengths of each subtag kind.
func TestShapePredicates(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		language bool
		script   bool
		region   bool
	}{
		{name: "Two letters", in: "en", language: true, region: true},
		{name: "Three letters", in: "yue", language: true},
		{name: "Four letters", in: "Hant", script: true},
		{name: "Three digits", in: "419", region: true},
		{name: "Wildcard", in: "*", language: true},
		{name: "Empty", in: ""},
		{name: "One letter", in: "e"},
		{name: "Five letters", in: "abcde"},
		{name: "Two digits", in: "12"},
		{name: "Mixed alphanumeric", in: "a1"},
		{name: "Four mixed", in: "Ha1t"},
		{name: "Non ASCII", in: "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLanguageSubtag(tt.in); got != tt.language {
				t.Errorf("isLanguageSubtag(%q) = %v, want %v", tt.in, got, tt.language)
			}
			if got := isScriptSubtag(tt.in); got != tt.script {
				t.Errorf("isScriptSubtag(%q) = %v, want %v", tt.in, got, tt.script)
			}
			if got := isRegionSubtag(tt.in); got != tt.region {
				t.Errorf("isRegionSubtag(%q) = %v, want %v", tt.in, got, tt.region)
			}
		})
	}
}

// TestTitleCase tests ASCII title casing used for script subtags.
func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "hant", want: "Hant"},
		{in: "HANT", want: "Hant"},
		{in: "hANT", want: "Hant"},
		{in: "Latn", want: "Latn"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := titleCase(tt.in); got != tt.want {
				t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
