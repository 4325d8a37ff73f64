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

// Package tabular reads and writes the CSV tables SUBCOMP operates
// on. The input/output column sets are fixed by downstream analysis
// scripts and must not change.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"

	"subcomp/annot"
)

// InputRecord is one corpus example to annotate. Everything except
// Verb and Target is opaque provenance carried over to the output.
type InputRecord struct {
	Source      string
	Verb        string
	PreContext  string
	Target      string
	PostContext string
}

// OutputRecord is one annotated corpus example. The Embedding column
// holds the negation status of the target verb ("negation", "no" or
// "-" when no clause pair was found).
type OutputRecord struct {
	InputRecord
	Embedding   string
	Main        annot.Features
	Sub         annot.Features
	Conjunction string
}

var inputColumns = []string{
	"Source", "Verb", "PreContext", "Target", "PostContext",
}

var outputColumns = []string{
	"Source", "Verb", "Embedding", "PreContext", "Target", "PostContext",
	"MatTense", "MatSubjPers", "MatSubjNum", "MatAspect",
	"SubTense", "SubSubjPers", "SubSubjNum", "SubAspect",
	"Conjunction",
}

// ReadInput loads the whole input table. The header row is matched
// by name so extra columns and reordered columns are tolerated.
func ReadInput(path string) ([]InputRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input table: %w", err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read input table: %w", err)
	}
	if len(rows) == 0 {
		return []InputRecord{}, nil
	}
	colIdx := make(map[string]int)
	for i, name := range rows[0] {
		colIdx[name] = i
	}
	for _, name := range inputColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("input table misses required column %s", name)
		}
	}
	ans := make([]InputRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		ans = append(ans, InputRecord{
			Source:      row[colIdx["Source"]],
			Verb:        row[colIdx["Verb"]],
			PreContext:  row[colIdx["PreContext"]],
			Target:      row[colIdx["Target"]],
			PostContext: row[colIdx["PostContext"]],
		})
	}
	return ans, nil
}

// WriteOutput stores the annotated table, one row per input record
// in the original order.
func WriteOutput(path string, records []OutputRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write output table: %w", err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if err := writer.Write(outputColumns); err != nil {
		return fmt.Errorf("failed to write output table: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Source, rec.Verb, rec.Embedding,
			rec.PreContext, rec.Target, rec.PostContext,
			rec.Main.Tense, rec.Main.Person, rec.Main.Number, rec.Main.Aspect,
			rec.Sub.Tense, rec.Sub.Person, rec.Sub.Number, rec.Sub.Aspect,
			rec.Conjunction,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write output table: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
