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

// Package worker implements a queue consumer process performing
// the actual sentence annotation against the linguistic service.
// Any number of workers may run concurrently - jobs are independent
// and workers keep no cross-job state.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"subcomp/annot"
	"subcomp/lingsrv"
	"subcomp/merror"
	"subcomp/rdb"
	"subcomp/results"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Write(rec results.JobLog)
}

type recoveredError struct {
	error
}

type Worker struct {
	ID         string
	messages   <-chan *redis.Message
	radapter   *rdb.Adapter
	service    lingsrv.Service
	annotator  *annot.Annotator
	ticker     *time.Ticker
	jobLogger  jobLogger
	currJobLog *results.JobLog
}

func (w *Worker) publishResult(res rdb.FuncResult, channel string) error {
	ans, err := rdb.CreateWorkerResult(channel, res)
	if err != nil {
		return err
	}
	w.closeJobLog(res, ans)
	return w.radapter.PublishResult(channel, ans)
}

// closeJobLog stamps the result envelope with the processing times
// and hands the finished job record over to the job logger. The job
// may already be closed when publishResult is re-entered to report
// a failed publish; such a call only stamps the end time.
func (w *Worker) closeJobLog(res rdb.FuncResult, ans *rdb.WorkerResult) {
	ans.ProcEnd = time.Now()
	if w.currJobLog == nil {
		return
	}
	ans.ProcBegin = w.currJobLog.Begin
	w.currJobLog.End = ans.ProcEnd
	w.currJobLog.Err = res.Err()
	w.jobLogger.Write(*w.currJobLog)
	w.currJobLog = nil
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	res := results.ErrorResult{Func: query.Func, Error: err.Error()}
	if err := w.publishResult(res, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func (w *Worker) runQueryProtected(ctx context.Context, query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = recoveredError{merror.PanicValueToErr(r)}
		}
	}()
	switch query.Func {
	case "annotateSentence":
		var args rdb.AnnotateSentenceArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.annotateSentence(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	case "analyzeWord":
		var args rdb.AnalyzeWordArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			return err
		}
		ans := w.analyzeWord(ctx, args)
		if err := w.publishResult(ans, query.Channel); err != nil {
			w.sendPublishingErr(query, err)
			return err
		}
	default:
		ans := results.ErrorResult{
			Func:  query.Func,
			Error: fmt.Sprintf("unknown query function: %s", query.Func),
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) tryNextQuery(ctx context.Context) error {
	// a little desync so concurrent workers don't hammer
	// the queue in lockstep
	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &results.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(ctx, query)
	var rcvErr recoveredError
	if errors.As(err, &rcvErr) {
		ans := results.ErrorResult{
			Func:      query.Func,
			Error:     fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
			ErrorType: merror.TypeRecovered,
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker exiting")
			return
		case <-w.ticker.C:
			w.tryNextQuery(ctx)
		case msg := <-w.messages:
			if msg.Payload == rdb.MsgNewQuery {
				w.tryNextQuery(ctx)
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	go w.listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	w.ticker.Stop()
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	service lingsrv.Service,
	messages <-chan *redis.Message,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		service:   service,
		annotator: annot.NewAnnotator(service),
		messages:  messages,
		ticker:    time.NewTicker(DefaultTickerInterval),
		jobLogger: jobLogger,
	}
}
