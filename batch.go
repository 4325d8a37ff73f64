// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"

	"subcomp/cnf"
	"subcomp/lingsrv"
	"subcomp/pipeline"
	"subcomp/tabular"
)

// runBatch annotates a whole CSV table in a single process, without
// Redis or any other server infrastructure.
func runBatch(conf *cnf.Conf, inputPath, outputPath string) {
	if inputPath == "" || outputPath == "" {
		log.Fatal().Msg("batch action requires input and output file arguments")
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := tabular.ReadInput(inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load input table")
		return
	}
	log.Info().
		Int("numRecords", len(records)).
		Int("numWorkers", conf.Batch.NumWorkers).
		Str("input", inputPath).
		Msg("starting batch annotation")

	pp := pipeline.NewPipeline(lingsrv.NewClient(conf.LingSrv), conf.Batch)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(records))
	bar.AppendCompleted()
	bar.PrependElapsed()

	t0 := time.Now()
	ans, err := pp.Run(ctx, records, func() { bar.Incr() })
	uiprogress.Stop()
	if err != nil {
		log.Fatal().Err(err).Msg("batch annotation failed")
		return
	}
	if err := tabular.WriteOutput(outputPath, ans); err != nil {
		log.Fatal().Err(err).Msg("failed to write output table")
		return
	}
	log.Info().
		Int("numRecords", len(ans)).
		Dur("procTime", time.Since(t0)).
		Str("output", outputPath).
		Msg("batch annotation finished")
}
