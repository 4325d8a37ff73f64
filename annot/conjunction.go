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

import "github.com/czcorpus/cnc-gokit/collections"

// conjunctionLemmas is the closed set of lemmas accepted as
// a clause-linking conjunction when neither POS nor deprel gives
// the connection away. The set is a catalogued linguistic constant;
// any change breaks comparability with corpora annotated earlier.
var conjunctionLemmas = []string{
	"что", "чтобы", "будто", "но", "как", "какой", "когда",
}

// FindConjunction finds the conjunction connecting the main and
// the subordinate predicate. It walks tokens in linear order
// starting right after main and stopping at sub (or the end of the
// sentence). Syntactic labels alone proved unreliable on this
// corpus, so the linear scan combines them with surface cues:
// a CSUBJ token or a `mark` dependent wins immediately, then
// membership in the closed conjunction set.
func FindConjunction(sent *Sentence, main, sub *Token) string {
	for i := main.Idx + 1; i < len(sent.Tokens); i++ {
		tok := sent.Tokens[i]
		if tok == sub {
			break
		}
		if tok.UPOS == "CSUBJ" || tok.Deprel == "mark" {
			return tok.Lemma
		}
		if collections.SliceContains(conjunctionLemmas, tok.Lemma) {
			return tok.Lemma
		}
	}
	return EmptyValue
}
