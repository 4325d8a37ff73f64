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

package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"subcomp/annot"
)

func writeCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	w := csv.NewWriter(f)
	assert.NoError(t, w.WriteAll(rows))
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	writeCSV(t, path, [][]string{
		{"Source", "Verb", "PreContext", "Target", "PostContext"},
		{"doc1", "думать", "...", "Я думаю, что он придёт", "..."},
		{"doc2", "знать", "", "Он знает ответ", ""},
	})
	records, err := ReadInput(path)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "думать", records[0].Verb)
	assert.Equal(t, "Он знает ответ", records[1].Target)
}

func TestReadInputToleratesExtraAndReorderedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	writeCSV(t, path, [][]string{
		{"Target", "Note", "Verb", "Source", "PreContext", "PostContext"},
		{"Я думаю, что он придёт", "checked", "думать", "doc1", "", ""},
	})
	records, err := ReadInput(path)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "doc1", records[0].Source)
	assert.Equal(t, "думать", records[0].Verb)
}

func TestReadInputMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	writeCSV(t, path, [][]string{
		{"Source", "Verb", "Target"},
		{"doc1", "думать", "Я думаю"},
	})
	_, err := ReadInput(path)
	assert.ErrorContains(t, err, "PreContext")
}

func TestReadInputEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	writeCSV(t, path, nil)
	records, err := ReadInput(path)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteOutputRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	records := []OutputRecord{
		{
			InputRecord: InputRecord{
				Source: "doc1", Verb: "думать",
				PreContext: "a", Target: "Я думаю, что он придёт", PostContext: "b",
			},
			Embedding:   "no",
			Main:        annot.Features{Tense: "present", Person: "first", Number: "singular", Aspect: "ipf"},
			Sub:         annot.Features{Tense: "future", Person: "third", Number: "singular", Aspect: "pf"},
			Conjunction: "что",
		},
	}
	assert.NoError(t, WriteOutput(path, records))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Source", "Verb", "Embedding", "PreContext", "Target", "PostContext",
		"MatTense", "MatSubjPers", "MatSubjNum", "MatAspect",
		"SubTense", "SubSubjPers", "SubSubjNum", "SubAspect",
		"Conjunction",
	}, rows[0])
	assert.Equal(t, []string{
		"doc1", "думать", "no", "a", "Я думаю, что он придёт", "b",
		"present", "first", "singular", "ipf",
		"future", "third", "singular", "pf",
		"что",
	}, rows[1])
}
