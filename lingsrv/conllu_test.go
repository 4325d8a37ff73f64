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

package lingsrv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const simpleConllu = "# sent_id = 1\n" +
	"# text = Я думаю\n" +
	"1\tЯ\tя\tPRON\t_\tPerson=First|Number=Sing\t2\tnsubj\t_\t_\n" +
	"2\tдумаю\tдумать\tVERB\t_\tPerson=First|Number=Sing|Tense=Pres\t0\troot\t_\t_\n"

func TestDecodeConlluSimple(t *testing.T) {
	sent, err := DecodeConllu(simpleConllu, "Я думаю")
	assert.NoError(t, err)
	assert.Equal(t, "Я думаю", sent.Text)
	assert.Equal(t, 2, sent.Len())

	assert.Equal(t, "Я", sent.Tokens[0].Form)
	assert.Equal(t, "я", sent.Tokens[0].Lemma)
	assert.Equal(t, "PRON", sent.Tokens[0].UPOS)
	assert.Equal(t, "nsubj", sent.Tokens[0].Deprel)
	assert.Equal(t, 1, sent.Tokens[0].Head)
	assert.Equal(t, "First", sent.Tokens[0].FirstFeat("Person", ""))

	// the root points to itself
	assert.Equal(t, 1, sent.Tokens[1].Head)
	assert.True(t, sent.IsRoot(sent.Tokens[1]))
}

func TestDecodeConlluMergesSentences(t *testing.T) {
	data := "1\tОн\tон\tPRON\t_\t_\t2\tnsubj\t_\t_\n" +
		"2\tушёл\tуйти\tVERB\t_\t_\t0\troot\t_\t_\n" +
		"\n" +
		"1\tЯ\tя\tPRON\t_\t_\t2\tnsubj\t_\t_\n" +
		"2\tостался\tостаться\tVERB\t_\t_\t0\troot\t_\t_\n"
	sent, err := DecodeConllu(data, "Он ушёл. Я остался")
	assert.NoError(t, err)
	assert.Equal(t, 4, sent.Len())
	// indices continue across the merged parts and each partial
	// root keeps pointing to itself
	assert.Equal(t, 2, sent.Tokens[2].Idx)
	assert.Equal(t, 3, sent.Tokens[2].Head)
	assert.Equal(t, 3, sent.Tokens[3].Head)
	assert.True(t, sent.IsRoot(sent.Tokens[1]))
	assert.True(t, sent.IsRoot(sent.Tokens[3]))
}

func TestDecodeConlluSkipsRangesAndEmptyNodes(t *testing.T) {
	data := "1-2\tдумается\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tдумает\tдумать\tVERB\t_\t_\t0\troot\t_\t_\n" +
		"2\tся\tся\tPART\t_\t_\t1\tadvmod\t_\t_\n" +
		"2.1\tничто\tничто\tPRON\t_\t_\t1\tnsubj\t_\t_\n"
	sent, err := DecodeConllu(data, "думается")
	assert.NoError(t, err)
	assert.Equal(t, 2, sent.Len())
	assert.Equal(t, "думает", sent.Tokens[0].Form)
	assert.Equal(t, "ся", sent.Tokens[1].Form)
}

func TestDecodeConlluFeatsWithMultipleValues(t *testing.T) {
	data := "1\tкакой\tкакой\tDET\t_\tCase=Nom,Acc|Number=Sing\t1\tdet\t_\t_\n"
	sent, err := DecodeConllu(data, "какой")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Nom", "Acc"}, sent.Tokens[0].Feat("Case"))
	assert.Equal(t, "Nom", sent.Tokens[0].FirstFeat("Case", ""))
}

func TestDecodeConlluUnderscoreFeats(t *testing.T) {
	data := "1\tи\tи\tCCONJ\t_\t_\t0\troot\t_\t_\n"
	sent, err := DecodeConllu(data, "и")
	assert.NoError(t, err)
	assert.Nil(t, sent.Tokens[0].Feats)
}

func TestDecodeConlluRejectsMalformedLine(t *testing.T) {
	_, err := DecodeConllu("1\tслово\tслово\n", "слово")
	assert.Error(t, err)
}

func TestDecodeConlluRejectsHeadOutOfRange(t *testing.T) {
	data := "1\tслово\tслово\tNOUN\t_\t_\t5\tobj\t_\t_\n"
	_, err := DecodeConllu(data, "слово")
	assert.Error(t, err)
}

func TestDecodeConlluRejectsEmptyDocument(t *testing.T) {
	_, err := DecodeConllu("# text = nothing\n\n", "nothing")
	assert.Error(t, err)
}
