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
	"strings"
)

// Features is the set of grammatical category values resolved for
// a single predicate. Values are raw tag spellings as they come
// from the parser or the analyzer; canonicalization happens later
// via NormalizeValue. A category that could not be resolved
// holds EmptyValue.
type Features struct {
	Tense  string `json:"tense"`
	Person string `json:"person"`
	Number string `json:"number"`
	Aspect string `json:"aspect"`
}

const (
	dfltPerson = "Third"

	posVerb = "VERB"
	posNoun = "NOUN"
	posPron = "PRON"
)

// ResolveFeatures resolves tense, person, number and aspect for
// a predicate token.
//
// For verbs, tense and aspect come from the analyzer's top reading
// of the surface form (the parser's morphology was found less
// reliable for these two categories on our data), person and number
// from the parser. A verb unmarked for person triggers a
// subject-agreement fallback: the sentence is scanned for subject
// tokens and their person/number (or those of the target itself when
// the target hangs under one of the subject's ancestors) are adopted.
// The fallback intentionally keeps the behavior where a later
// qualifying subject overwrites an earlier one.
//
// Nouns and pronouns carry neither tense nor aspect; person defaults
// to third. Any other POS means the parser picked a wrong head and
// only a directly dependent subject can still tell us person/number.
func (a *Annotator) ResolveFeatures(
	ctx context.Context,
	sent *Sentence,
	target *Token,
) (Features, error) {
	var tense, person, number, aspect string

	switch {
	case target.UPOS == posVerb:
		analyses, err := a.analyzer.AnalyzeWord(ctx, target.Form)
		if err != nil {
			return Features{}, err
		}
		if len(analyses) > 0 {
			tense = analyses[0].Tense
			aspect = analyses[0].Aspect
		}
		person = target.FirstFeat("Person", "")
		number = target.FirstFeat("Number", "")
		if person == "" {
			for _, tok := range sent.Tokens {
				if !strings.Contains(tok.Deprel, "subj") {
					continue
				}
				if sent.HeadOf(tok) == target {
					person = tok.FirstFeat("Person", dfltPerson)
					number = tok.FirstFeat("Number", "")
				}
				for _, anc := range sent.AncestorsOf(tok) {
					for _, child := range sent.ChildrenOf(anc) {
						if child == target {
							person = target.FirstFeat("Person", dfltPerson)
							number = target.FirstFeat("Number", "")
						}
					}
				}
			}
		}

	case target.UPOS == posNoun || target.UPOS == posPron:
		person = target.FirstFeat("Person", dfltPerson)
		number = target.FirstFeat("Number", "")

	default:
		for _, tok := range sent.Tokens {
			if tok != target && sent.HeadOf(tok) == target && strings.Contains(tok.Deprel, "subj") {
				person = tok.FirstFeat("Person", dfltPerson)
				number = tok.FirstFeat("Number", "")
				break
			}
		}
	}

	return Features{
		Tense:  emptyToDash(tense),
		Person: emptyToDash(person),
		Number: emptyToDash(number),
		Aspect: emptyToDash(aspect),
	}, nil
}

func emptyToDash(v string) string {
	if v == "" {
		return EmptyValue
	}
	return v
}
