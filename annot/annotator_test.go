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
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{
		analyses: map[string][]WordAnalysis{
			"думаю":  {{NormalForm: "думать", Tense: "pres", Aspect: "impf"}},
			"придёт": {{NormalForm: "прийти", Tense: "futr", Aspect: "perf"}},
		},
	}
}

// Я думаю, что он придёт (optionally with "не" before the main verb)
func thinkSentence(negated bool) *Sentence {
	sent := mkSent(
		tok(0, "Я", "я", "PRON", "nsubj", 1),
		withFeats(
			tok(1, "думаю", "думать", "VERB", "root", 1),
			map[string][]string{"Person": {"First"}, "Number": {"Sing"}},
		),
		tok(2, ",", ",", "PUNCT", "punct", 1),
		tok(3, "что", "что", "SCONJ", "mark", 5),
		withFeats(
			tok(4, "он", "он", "PRON", "nsubj", 5),
			map[string][]string{"Person": {"Third"}, "Number": {"Sing"}},
		),
		withFeats(
			tok(5, "придёт", "прийти", "VERB", "ccomp", 1),
			map[string][]string{"Person": {"Third"}, "Number": {"Sing"}},
		),
	)
	if negated {
		sent.Tokens = append(sent.Tokens, tok(6, "не", "не", "PART", "advmod", 1))
	}
	return sent
}

func TestAnnotateFullSentence(t *testing.T) {
	a := NewAnnotator(testAnalyzer())
	ann, err := a.Annotate(context.Background(), thinkSentence(false), "думать")
	assert.NoError(t, err)
	assert.True(t, ann.Found)

	ann = ann.Normalized()
	assert.Equal(t, NegationValueNo, ann.Negation)
	assert.Equal(t, Features{Tense: "present", Person: "first", Number: "singular", Aspect: "ipf"}, ann.Main)
	assert.Equal(t, Features{Tense: "future", Person: "third", Number: "singular", Aspect: "pf"}, ann.Sub)
	assert.Equal(t, "что", ann.Conjunction)
}

func TestAnnotateNegatedTarget(t *testing.T) {
	a := NewAnnotator(testAnalyzer())
	ann, err := a.Annotate(context.Background(), thinkSentence(true), "думать")
	assert.NoError(t, err)
	assert.Equal(t, NegationValueYes, ann.Negation)
}

func TestAnnotateNoTargetYieldsEmpty(t *testing.T) {
	a := NewAnnotator(testAnalyzer())
	ann, err := a.Annotate(context.Background(), thinkSentence(false), "знать")
	assert.NoError(t, err)
	assert.False(t, ann.Found)
	assert.Equal(t, EmptyAnnotation(), ann)
}

func TestEmptyAnnotationIsAllDashes(t *testing.T) {
	ann := EmptyAnnotation()
	assert.Equal(t, EmptyValue, ann.Negation)
	assert.Equal(t, EmptyValue, ann.Conjunction)
	assert.Equal(t, Features{EmptyValue, EmptyValue, EmptyValue, EmptyValue}, ann.Main)
	assert.Equal(t, Features{EmptyValue, EmptyValue, EmptyValue, EmptyValue}, ann.Sub)
}

func TestNormalizedKeepsNegationVocabulary(t *testing.T) {
	ann := Annotation{
		Found:       true,
		Negation:    NegationValueNo,
		Main:        Features{Tense: "pres", Person: "First", Number: "Sing", Aspect: "impf"},
		Sub:         Features{Tense: "Past", Person: "Third", Number: "Plur", Aspect: "perf"},
		Conjunction: "что",
	}
	norm := ann.Normalized()
	assert.Equal(t, NegationValueNo, norm.Negation)
	assert.Equal(t, "present", norm.Main.Tense)
	assert.Equal(t, "past", norm.Sub.Tense)
	// the original value stays untouched
	assert.Equal(t, "pres", ann.Main.Tense)
}
