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

// fakeAnalyzer serves canned morphological analyses to avoid
// a running linguistic service in tests.
type fakeAnalyzer struct {
	analyses map[string][]WordAnalysis
}

func (fa *fakeAnalyzer) AnalyzeWord(ctx context.Context, word string) ([]WordAnalysis, error) {
	return fa.analyses[word], nil
}

func tok(idx int, form, lemma, upos, deprel string, head int) *Token {
	return &Token{
		Idx:    idx,
		Form:   form,
		Lemma:  lemma,
		UPOS:   upos,
		Deprel: deprel,
		Head:   head,
	}
}

func mkSent(tokens ...*Token) *Sentence {
	return &Sentence{Tokens: tokens}
}

func TestLocateClausePairCcomp(t *testing.T) {
	// Я думаю, что он придёт
	sent := mkSent(
		tok(0, "Я", "я", "PRON", "nsubj", 1),
		tok(1, "думаю", "думать", "VERB", "root", 1),
		tok(2, ",", ",", "PUNCT", "punct", 1),
		tok(3, "что", "что", "SCONJ", "mark", 5),
		tok(4, "он", "он", "PRON", "nsubj", 5),
		tok(5, "придёт", "прийти", "VERB", "ccomp", 1),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "думать")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "думаю", pair.Target.Form)
	assert.Equal(t, "придёт", pair.Sub.Form)
}

func TestLocateClausePairTierPriority(t *testing.T) {
	// advcl comes earlier in the token order but ccomp belongs
	// to a higher tier and must win
	sent := mkSent(
		tok(0, "скажет", "сказать", "VERB", "root", 0),
		tok(1, "уйдя", "уйти", "VERB", "advcl", 0),
		tok(2, "правду", "правда", "NOUN", "obj", 0),
		tok(3, "соврал", "соврать", "VERB", "ccomp", 0),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "сказать")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "соврал", pair.Sub.Form)
}

func TestLocateClausePairNominal(t *testing.T) {
	// no clausal dependent at all - a nominal obj stands in
	sent := mkSent(
		tok(0, "он", "он", "PRON", "nsubj", 1),
		tok(1, "знает", "знать", "VERB", "root", 1),
		tok(2, "ответ", "ответ", "NOUN", "obj", 1),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "знать")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ответ", pair.Sub.Form)
}

func TestLocateClausePairTargetIsParataxis(t *testing.T) {
	// он придёт, думаю - the target hangs under its partner
	sent := mkSent(
		tok(0, "он", "он", "PRON", "nsubj", 1),
		tok(1, "придёт", "прийти", "VERB", "root", 1),
		tok(2, ",", ",", "PUNCT", "punct", 1),
		tok(3, "думаю", "думать", "VERB", "parataxis", 1),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "думать")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "думаю", pair.Target.Form)
	assert.Equal(t, "придёт", pair.Sub.Form)
}

func TestLocateClausePairRootParataxisDoesNotSelfPair(t *testing.T) {
	sent := mkSent(
		tok(0, "думаю", "думать", "VERB", "parataxis", 0),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	_, found, err := a.LocateClausePair(context.Background(), sent, "думать")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLocateClausePairTwoHopRescue(t *testing.T) {
	// the subordinate predicate got misattached under an obl
	// dependent of the target
	sent := mkSent(
		tok(0, "сомневаюсь", "сомневаться", "VERB", "root", 0),
		tok(1, "в", "в", "ADP", "case", 2),
		tok(2, "том", "тот", "PRON", "obl", 0),
		tok(3, "что", "что", "SCONJ", "mark", 4),
		tok(4, "успеет", "успеть", "VERB", "acl", 2),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "сомневаться")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "успеет", pair.Sub.Form)
}

func TestLocateClausePairNoTargetVerb(t *testing.T) {
	sent := mkSent(
		tok(0, "он", "он", "PRON", "nsubj", 1),
		tok(1, "спит", "спать", "VERB", "root", 1),
	)
	a := NewAnnotator(&fakeAnalyzer{})
	_, found, err := a.LocateClausePair(context.Background(), sent, "думать")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFindTargetTokenViaAnalyzer(t *testing.T) {
	// the parser lemmatized the reflexive form differently; the
	// analyzer's top normal form still identifies the target
	sent := mkSent(
		tok(0, "думается", "думается", "VERB", "root", 0),
		tok(1, "пришёл", "прийти", "VERB", "ccomp", 0),
	)
	a := NewAnnotator(&fakeAnalyzer{
		analyses: map[string][]WordAnalysis{
			"думается": {{NormalForm: "думаться", Tense: "pres", Aspect: "impf"}},
		},
	})
	pair, found, err := a.LocateClausePair(context.Background(), sent, "думаться")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "думается", pair.Target.Form)
}
