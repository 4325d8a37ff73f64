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

package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"subcomp/rdb"
	"subcomp/results"
)

type fakeJobLogger struct {
	records []results.JobLog
}

func (fl *fakeJobLogger) Write(rec results.JobLog) {
	fl.records = append(fl.records, rec)
}

func TestCloseJobLogFinishesCurrentJob(t *testing.T) {
	logger := &fakeJobLogger{}
	w := &Worker{ID: "w1", jobLogger: logger}
	begin := time.Now().Add(-time.Second)
	w.currJobLog = &results.JobLog{
		WorkerID: "w1",
		Func:     "annotateSentence",
		Begin:    begin,
	}

	ans := &rdb.WorkerResult{}
	w.closeJobLog(results.ErrorResult{Func: "annotateSentence", Error: "failed"}, ans)

	assert.Equal(t, begin, ans.ProcBegin)
	assert.False(t, ans.ProcEnd.IsZero())
	assert.Len(t, logger.records, 1)
	assert.Error(t, logger.records[0].Err)
	assert.Nil(t, w.currJobLog)
}

func TestCloseJobLogWithoutCurrentJob(t *testing.T) {
	// publishResult re-enters via sendPublishingErr after the job
	// log was already closed - this must not panic and must not
	// produce a second job record
	logger := &fakeJobLogger{}
	w := &Worker{ID: "w1", jobLogger: logger}

	ans := &rdb.WorkerResult{}
	assert.NotPanics(t, func() {
		w.closeJobLog(results.ErrorResult{Func: "annotateSentence", Error: "failed"}, ans)
	})
	assert.False(t, ans.ProcEnd.IsZero())
	assert.True(t, ans.ProcBegin.IsZero())
	assert.Empty(t, logger.records)
}
