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

import "context"

// WordAnalysis is a single context-free morphological reading
// of a surface word form as provided by an external analyzer.
// The analyzer and the dependency parser are independent models
// and may disagree; for tense and aspect the analyzer proved
// more reliable on our data, so both values are exposed here.
type WordAnalysis struct {

	// NormalForm is the dictionary form suggested by the analyzer.
	// Not necessarily equal to the parser's lemma.
	NormalForm string `json:"normalForm"`

	Tense string `json:"tense"`

	Aspect string `json:"aspect"`
}

// WordAnalyzer provides ranked context-free morphological analyses
// of a single word form. Implementations are expected to be safe
// for concurrent use. SUBCOMP always works with the top-ranked
// analysis only.
type WordAnalyzer interface {
	AnalyzeWord(ctx context.Context, word string) ([]WordAnalysis, error)
}
