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

// Package pipeline runs the batch annotation: every input record is
// parsed and annotated independently (records share no state), so
// the work is spread over a bounded pool of goroutines. Results are
// stored by record index which restores the input order no matter
// how the pool interleaves - required for reproducible output
// tables, not for the correctness of individual rows.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"subcomp/annot"
	"subcomp/lingsrv"
	"subcomp/merror"
	"subcomp/tabular"
)

const dfltNumWorkers = 4

// Conf configures the batch mode.
type Conf struct {
	NumWorkers int `json:"numWorkers"`
}

func (conf *Conf) ValidateAndDefaults() {
	if conf.NumWorkers <= 0 {
		conf.NumWorkers = dfltNumWorkers
		log.Warn().
			Int("numWorkers", conf.NumWorkers).
			Msg("batch numWorkers not specified, using default")
	}
}

// Pipeline annotates batches of input records.
type Pipeline struct {
	service    lingsrv.Service
	annotator  *annot.Annotator
	numWorkers int
}

// Run annotates all records and returns output records in input
// order. A failure of the linguistic service aborts the whole batch
// (an individual sentence without the target verb or without a
// subordinate clause is NOT a failure - it yields a row of empty
// values). The optional onProgress callback is invoked once per
// finished record, from worker goroutines.
func (p *Pipeline) Run(
	ctx context.Context,
	records []tabular.InputRecord,
	onProgress func(),
) ([]tabular.OutputRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ans := make([]tabular.OutputRecord, len(records))
	jobs := make(chan int)
	errs := make(chan error, p.numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rec, err := p.processRecord(ctx, records[idx])
				if err != nil {
					errs <- fmt.Errorf("failed to process record %d: %w", idx, err)
					cancel()
					return
				}
				ans[idx] = rec
				if onProgress != nil {
					onProgress()
				}
			}
		}()
	}

	for idx := range records {
		select {
		case jobs <- idx:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range ans {
		normalizeRecord(&ans[i])
	}
	return ans, nil
}

func (p *Pipeline) processRecord(
	ctx context.Context,
	rec tabular.InputRecord,
) (ans tabular.OutputRecord, ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
		}
	}()
	sent, err := p.service.ParseSentence(ctx, rec.Target)
	if err != nil {
		return tabular.OutputRecord{}, err
	}
	ann, err := p.annotator.Annotate(ctx, sent, rec.Verb)
	if err != nil {
		return tabular.OutputRecord{}, err
	}
	return tabular.OutputRecord{
		InputRecord: rec,
		Embedding:   ann.Negation,
		Main:        ann.Main,
		Sub:         ann.Sub,
		Conjunction: ann.Conjunction,
	}, nil
}

// normalizeRecord maps all derived grammatical values of a finished
// record onto the canonical vocabulary. It runs after the whole
// batch is built, as a uniform final pass.
func normalizeRecord(rec *tabular.OutputRecord) {
	rec.Main.Tense = annot.NormalizeValue(rec.Main.Tense)
	rec.Main.Person = annot.NormalizeValue(rec.Main.Person)
	rec.Main.Number = annot.NormalizeValue(rec.Main.Number)
	rec.Main.Aspect = annot.NormalizeValue(rec.Main.Aspect)
	rec.Sub.Tense = annot.NormalizeValue(rec.Sub.Tense)
	rec.Sub.Person = annot.NormalizeValue(rec.Sub.Person)
	rec.Sub.Number = annot.NormalizeValue(rec.Sub.Number)
	rec.Sub.Aspect = annot.NormalizeValue(rec.Sub.Aspect)
	rec.Conjunction = annot.NormalizeValue(rec.Conjunction)
}

func NewPipeline(service lingsrv.Service, conf *Conf) *Pipeline {
	return &Pipeline{
		service:    service,
		annotator:  annot.NewAnnotator(service),
		numWorkers: conf.NumWorkers,
	}
}
