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

import (
	"context"

	"github.com/czcorpus/cnc-gokit/collections"
)

// ClausePair is a located target verb together with the head
// of its subordinate clause.
type ClausePair struct {
	Target *Token
	Sub    *Token
}

// clauseTiers is the priority cascade for finding the head of the
// clause subordinate to the target verb. Tiers are tried in order,
// each one scans the whole sentence left to right and the first
// match within a tier wins. The ordering encodes how probable each
// configuration turned out to be on manually checked data:
//
//  1. a direct dependent labeled ccomp, xcomp or conj
//  2. a direct dependent labeled advcl, acl or parataxis
//  3. a nominal direct dependent (obj/obl) - subordinate clauses
//     lacking an overt verb
//  4. the target itself depends on its partner with parataxis
//     (frequent with 1st person forms like "думаю")
//  5. a two-hop rescue: the subordinate predicate got misattached
//     under an obl dependent of the target
var clauseTiers = []func(sent *Sentence, target *Token) *Token{
	func(sent *Sentence, target *Token) *Token {
		for _, t2 := range sent.Tokens {
			if collections.SliceContains([]string{"ccomp", "xcomp", "conj"}, t2.Deprel) &&
				sent.HeadOf(t2) == target && t2 != target {
				return t2
			}
		}
		return nil
	},
	func(sent *Sentence, target *Token) *Token {
		for _, t2 := range sent.Tokens {
			if collections.SliceContains([]string{"advcl", "acl", "parataxis"}, t2.Deprel) &&
				sent.HeadOf(t2) == target && t2 != target {
				return t2
			}
		}
		return nil
	},
	func(sent *Sentence, target *Token) *Token {
		for _, t2 := range sent.Tokens {
			if collections.SliceContains([]string{"obj", "obl"}, t2.Deprel) &&
				collections.SliceContains([]string{"NOUN", "ADJ"}, t2.UPOS) &&
				sent.HeadOf(t2) == target && t2 != target {
				return t2
			}
		}
		return nil
	},
	func(sent *Sentence, target *Token) *Token {
		if target.Deprel == "parataxis" && !sent.IsRoot(target) {
			return sent.HeadOf(target)
		}
		return nil
	},
	func(sent *Sentence, target *Token) *Token {
		for _, t2 := range sent.Tokens {
			head := sent.HeadOf(t2)
			if sent.HeadOf(head) == target && head != target &&
				collections.SliceContains(
					[]string{"ccomp", "advcl", "xcomp", "parataxis", "conj", "acl"}, t2.Deprel) &&
				head.Deprel == "obl" {
				return t2
			}
		}
		return nil
	},
}

// findTargetToken returns the first token whose lemma matches
// verbLemma. Parser lemmas and analyzer normal forms sometimes
// disagree (e.g. with reflexive verbs), so if the parser lemma does
// not match, the analyzer's top-ranked normal form of the surface
// form is consulted as well.
func (a *Annotator) findTargetToken(
	ctx context.Context,
	sent *Sentence,
	verbLemma string,
) (*Token, error) {
	for _, tok := range sent.Tokens {
		if tok.Lemma == verbLemma {
			return tok, nil
		}
		analyses, err := a.analyzer.AnalyzeWord(ctx, tok.Form)
		if err != nil {
			return nil, err
		}
		if len(analyses) > 0 && analyses[0].NormalForm == verbLemma {
			return tok, nil
		}
	}
	return nil, nil
}

// LocateClausePair finds the target verb and the head of its
// subordinate clause. The second return value reports whether
// a pair was found at all - a sentence without the target verb
// or without any detectable subordinate clause is a regular,
// non-error outcome.
func (a *Annotator) LocateClausePair(
	ctx context.Context,
	sent *Sentence,
	verbLemma string,
) (ClausePair, bool, error) {
	target, err := a.findTargetToken(ctx, sent, verbLemma)
	if err != nil {
		return ClausePair{}, false, err
	}
	if target == nil {
		return ClausePair{}, false, nil
	}
	for _, tier := range clauseTiers {
		if sub := tier(sent, target); sub != nil {
			return ClausePair{Target: target, Sub: sub}, true, nil
		}
	}
	return ClausePair{}, false, nil
}
