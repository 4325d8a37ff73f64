// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SUBCOMP.
//
//  SUBCOMP is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SUBCOMP is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SUBCOMP.  If not, see <https://www.gnu.org/licenses/>.

package annot

// EmptyValue marks a grammatical category that could not be
// resolved (or a record where no clause pair was found at all).
const EmptyValue = "-"

// canonicalValues maps raw tag spellings coming from the parser
// (UD-style, e.g. "Past", "Sing") and from the analyzer
// (OpenCorpora-style, e.g. "pres", "impf") onto the single canonical
// vocabulary used in the published tables. The table is exhaustive
// and must stay byte-for-byte compatible with previously annotated
// corpora. Unknown values pass through unchanged.
var canonicalValues = map[string]string{
	"Past":   "past",
	"pres":   "present",
	"Pres":   "present",
	"futr":   "future",
	"Fut":    "future",
	"First":  "first",
	"Second": "second",
	"Third":  "third",
	"Sing":   "singular",
	"Plur":   "plural",
	"perf":   "pf",
	"impf":   "ipf",
	"":       EmptyValue,
}

// NormalizeValue translates a single raw tag value into the
// canonical vocabulary. The function is idempotent - canonical
// values are not present as keys and pass through.
func NormalizeValue(v string) string {
	if mapped, ok := canonicalValues[v]; ok {
		return mapped
	}
	return v
}
