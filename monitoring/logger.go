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

package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"

	"subcomp/results"
)

const (
	staleWorkerLoadTTL  = time.Hour * 24
	loadReportInterval  = 5 * time.Minute
	cleanupTickInterval = time.Hour
	recentLogSize       = 100
)

// WorkerJobLogger aggregates finished job records of a worker
// process. It keeps per-worker load counters plus a fixed-size log
// of the most recent jobs, reports a load summary in regular
// intervals and forwards each record to the configured StatusWriter.
type WorkerJobLogger struct {
	loadData     WorkersLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[results.JobLog]
	tz           *time.Location
	statusWriter StatusWriter
}

func (w *WorkerJobLogger) Write(rec results.JobLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	entry, ok := w.loadData[rec.WorkerID]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumJobs++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.TimeSpent().Seconds()
	w.loadData[rec.WorkerID] = entry
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *WorkerJobLogger) TotalLoad() WorkerLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.loadData.SumLoad()
}

func (w *WorkerJobLogger) RecentLoad() WorkerLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans WorkerLoad
	workers := collections.NewSet[string]()
	w.recentLog.ForEach(func(i int, item results.JobLog) bool {
		workers.Add(item.WorkerID)
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumJobs++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	ans.NumWorkers = workers.Size()
	return ans
}

// cleanOldRecords drops per-worker counters with no update within
// staleWorkerLoadTTL. Must be called with dataLock held.
func (w *WorkerJobLogger) cleanOldRecords() {
	limit := time.Now().In(w.tz).Add(-staleWorkerLoadTTL)
	for workerID, entry := range w.loadData {
		if entry.LastUpdate.Before(limit) {
			delete(w.loadData, workerID)
		}
	}
}

func (w *WorkerJobLogger) reportLoad() {
	recent := w.RecentLoad()
	if recent.NumJobs == 0 {
		return
	}
	log.Info().
		Interface("recentLoad", recent).
		Interface("totalLoad", w.TotalLoad()).
		Msg("worker load report")
}

func (w *WorkerJobLogger) Start(ctx context.Context) {
	w.loadData = make(WorkersLoad)
	w.recentLog = collections.NewCircularList[results.JobLog](recentLogSize)
	log.Info().Msg("starting worker job logger")
	go func() {
		reportTicker := time.NewTicker(loadReportInterval)
		defer reportTicker.Stop()
		cleanupTicker := time.NewTicker(cleanupTickInterval)
		defer cleanupTicker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("requesting worker job logger stop")
				return
			case <-reportTicker.C:
				w.reportLoad()
			case <-cleanupTicker.C:
				w.dataLock.Lock()
				w.cleanOldRecords()
				w.dataLock.Unlock()
			}
		}
	}()
}

func (w *WorkerJobLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down worker job logger")
	return w.statusWriter.Stop(ctx)
}

func NewWorkerJobLogger(
	statusWriter StatusWriter,
	tz *time.Location,
) *WorkerJobLogger {
	return &WorkerJobLogger{
		statusWriter: statusWriter,
		tz:           tz,
	}
}
