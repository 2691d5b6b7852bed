// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rules

import (
	"regexp"
)

// 🔄 Rule represents a single deprecated-call rewrite
type Rule struct {
	Name     string         // Short identifier for logging
	Pattern  *regexp.Regexp // Deprecated call form to match
	Template string         // Replacement, with ${1} holding the captured type argument
}

// 🗺️ catalog is the ordered rewrite table for the Unity FindObject migration.
// Order is significant: each rule runs over the output of the previous one.
//
// The `[^>]+` capture is a deliberate heuristic, not a balanced-bracket
// parser: a nested generic type argument (e.g. List<Foo>) can never match,
// because the capture stops before the inner '>' and the rest of the pattern
// then fails. Such calls are left untouched rather than half-rewritten.
var catalog = []Rule{
	{
		Name:     "find-single",
		Pattern:  regexp.MustCompile(`FindObjectOfType<([^>]+)>\(\)`),
		Template: `FindFirstObjectByType<${1}>()`,
	},
	{
		Name:     "find-single-inactive",
		Pattern:  regexp.MustCompile(`FindObjectOfType<([^>]+)>\(true\)`),
		Template: `FindFirstObjectByType<${1}>(FindObjectsInactive.Include)`,
	},
	{
		Name:     "find-single-active-only",
		Pattern:  regexp.MustCompile(`FindObjectOfType<([^>]+)>\(false\)`),
		Template: `FindFirstObjectByType<${1}>()`,
	},
	{
		Name:     "find-single-typeof",
		Pattern:  regexp.MustCompile(`FindObjectOfType\(typeof\(([^)]+)\)\)`),
		Template: `FindFirstObjectByType(typeof(${1}))`,
	},
	{
		Name:     "find-many",
		Pattern:  regexp.MustCompile(`FindObjectsOfType<([^>]+)>\(\)`),
		Template: `FindObjectsByType<${1}>(FindObjectsSortMode.None)`,
	},
	{
		Name:     "find-many-inactive",
		Pattern:  regexp.MustCompile(`FindObjectsOfType<([^>]+)>\(true\)`),
		Template: `FindObjectsByType<${1}>(FindObjectsInactive.Include, FindObjectsSortMode.None)`,
	},
	{
		Name:     "find-many-active-only",
		Pattern:  regexp.MustCompile(`FindObjectsOfType<([^>]+)>\(false\)`),
		Template: `FindObjectsByType<${1}>(FindObjectsSortMode.None)`,
	},
}

// 🎯 Catalog returns the ordered rewrite table. Callers must not reorder or
// mutate the returned slice.
func Catalog() []Rule {
	return catalog
}
