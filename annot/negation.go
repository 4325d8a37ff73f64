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

const (
	// negationParticle is the only negation marker we look for.
	// Other means of negating a clause (никогда, нет, ...) attach
	// elsewhere in the tree and are out of scope.
	negationParticle = "не"

	NegationValueYes = "negation"
	NegationValueNo  = "no"
)

// CheckNegation reports whether the target verb is directly negated,
// i.e. whether a direct dependent with the lemma "не" exists.
// Negation expressed anywhere else in the clause is not detected.
func CheckNegation(sent *Sentence, target *Token) string {
	for _, tok := range sent.Tokens {
		if tok != target && sent.HeadOf(tok) == target && tok.Lemma == negationParticle {
			return NegationValueYes
		}
	}
	return NegationValueNo
}
