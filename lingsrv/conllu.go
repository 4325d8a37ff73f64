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
	"fmt"
	"strconv"
	"strings"

	"subcomp/annot"
)

const numConlluColumns = 10

// conlluRow is a raw CoNLL-U word line before head indices are
// rewired to the merged token arena.
type conlluRow struct {
	form   string
	lemma  string
	upos   string
	deprel string
	head   int // 1-based within its CoNLL-U sentence, 0 = root
	feats  map[string][]string
}

// DecodeConllu decodes a CoNLL-U document into a single Sentence.
// The input examples are single sentences, but the upstream
// tokenizer occasionally splits one into several CoNLL-U sentences;
// those are merged into one token arena with continuous indices
// (each partial root keeps pointing to itself), which is what the
// downstream tree heuristics expect.
//
// Comment lines, multiword-token ranges (1-2) and empty nodes (5.1)
// are skipped; head indices refer to regular word lines only.
func DecodeConllu(data, text string) (*annot.Sentence, error) {
	sent := &annot.Sentence{Text: text}
	var pending []conlluRow
	flush := func() error {
		base := len(sent.Tokens)
		for i, row := range pending {
			if row.head > len(pending) {
				return fmt.Errorf("CoNLL-U head index out of range: %d", row.head)
			}
			head := base + i
			if row.head > 0 {
				head = base + row.head - 1
			}
			sent.Tokens = append(sent.Tokens, &annot.Token{
				Idx:    base + i,
				Form:   row.form,
				Lemma:  row.lemma,
				UPOS:   row.upos,
				Deprel: row.deprel,
				Head:   head,
				Feats:  row.feats,
			})
		}
		pending = nil
		return nil
	}
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != numConlluColumns {
			return nil, fmt.Errorf(
				"malformed CoNLL-U line: expected %d columns, got %d", numConlluColumns, len(cols))
		}
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}
		head, err := strconv.Atoi(cols[6])
		if err != nil || head < 0 {
			return nil, fmt.Errorf("malformed CoNLL-U head index: %s", cols[6])
		}
		pending = append(pending, conlluRow{
			form:   cols[1],
			lemma:  cols[2],
			upos:   cols[3],
			deprel: cols[7],
			head:   head,
			feats:  parseFeats(cols[5]),
		})
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(sent.Tokens) == 0 {
		return nil, fmt.Errorf("CoNLL-U document contains no tokens")
	}
	return sent, nil
}

func parseFeats(raw string) map[string][]string {
	if raw == "" || raw == "_" {
		return nil
	}
	ans := make(map[string][]string)
	for _, item := range strings.Split(raw, "|") {
		name, vals, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		ans[name] = strings.Split(vals, ",")
	}
	return ans
}
