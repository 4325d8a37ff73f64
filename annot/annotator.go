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

// Package annot implements the heuristic analysis of the relation
// between a target verb and the predicate of its subordinate clause:
// locating the two predicates in the dependency tree, resolving
// their grammatical categories, detecting local negation and finding
// the linking conjunction.
package annot

import "context"

// Annotation is the derived part of one output record. Field values
// are raw until NormalizeValue (or Annotation.Normalized) is applied.
type Annotation struct {
	Found       bool     `json:"found"`
	Negation    string   `json:"negation"`
	Main        Features `json:"main"`
	Sub         Features `json:"sub"`
	Conjunction string   `json:"conjunction"`
}

// EmptyAnnotation is the value emitted when no target verb or no
// subordinate clause was found. This is a regular outcome, not
// an error - note that even the negation field stays empty because
// there is no target token whose negation could be checked.
func EmptyAnnotation() Annotation {
	return Annotation{
		Negation:    EmptyValue,
		Main:        Features{EmptyValue, EmptyValue, EmptyValue, EmptyValue},
		Sub:         Features{EmptyValue, EmptyValue, EmptyValue, EmptyValue},
		Conjunction: EmptyValue,
	}
}

// Normalized returns a copy of the annotation with every derived
// grammatical value translated into the canonical vocabulary.
// The negation field already uses its final vocabulary and is kept
// as is.
func (ann Annotation) Normalized() Annotation {
	ans := ann
	ans.Main = ann.Main.normalized()
	ans.Sub = ann.Sub.normalized()
	ans.Conjunction = NormalizeValue(ann.Conjunction)
	return ans
}

func (f Features) normalized() Features {
	return Features{
		Tense:  NormalizeValue(f.Tense),
		Person: NormalizeValue(f.Person),
		Number: NormalizeValue(f.Number),
		Aspect: NormalizeValue(f.Aspect),
	}
}

// Annotator runs the per-sentence analysis. The external
// morphological analyzer is injected explicitly so tests can
// substitute a fake one; Annotator itself holds no mutable state
// and may be shared by concurrent workers.
type Annotator struct {
	analyzer WordAnalyzer
}

func NewAnnotator(analyzer WordAnalyzer) *Annotator {
	return &Annotator{analyzer: analyzer}
}

// Annotate analyzes a parsed sentence with respect to the target
// verb lemma. A sentence without the target verb or without any
// detectable subordinate clause yields EmptyAnnotation. An error
// is returned only on upstream analyzer failure.
func (a *Annotator) Annotate(
	ctx context.Context,
	sent *Sentence,
	verbLemma string,
) (Annotation, error) {
	pair, found, err := a.LocateClausePair(ctx, sent, verbLemma)
	if err != nil {
		return Annotation{}, err
	}
	if !found {
		return EmptyAnnotation(), nil
	}
	mainFeats, err := a.ResolveFeatures(ctx, sent, pair.Target)
	if err != nil {
		return Annotation{}, err
	}
	subFeats, err := a.ResolveFeatures(ctx, sent, pair.Sub)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{
		Found:       true,
		Negation:    CheckNegation(sent, pair.Target),
		Main:        mainFeats,
		Sub:         subFeats,
		Conjunction: FindConjunction(sent, pair.Target, pair.Sub),
	}, nil
}
