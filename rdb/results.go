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

package rdb

import (
	"encoding/json"
	"time"

	"github.com/bytedance/sonic"
)

const (
	ResultTypeSentenceAnnotation ResultType = "sentenceAnnotation"
	ResultTypeWordAnalyses       ResultType = "wordAnalyses"
	ResultTypeError              ResultType = "error"
)

type ResultType string

func (rt ResultType) String() string {
	return string(rt)
}

// FuncResult is any value a worker can produce as an answer
// to a queued job.
type FuncResult interface {
	Err() error
	Type() ResultType
}

// WorkerResult is the envelope carrying a serialized FuncResult
// through Redis back to the publisher of the job.
type WorkerResult struct {
	ID         string          `json:"id"`
	ResultType ResultType      `json:"resultType"`
	Value      json.RawMessage `json:"value"`
	ProcBegin  time.Time       `json:"procBegin"`
	ProcEnd    time.Time       `json:"procEnd"`
}

func CreateWorkerResult(id string, res FuncResult) (*WorkerResult, error) {
	value, err := sonic.Marshal(res)
	if err != nil {
		return nil, err
	}
	return &WorkerResult{
		ID:         id,
		ResultType: res.Type(),
		Value:      value,
	}, nil
}

// --------

// AnnotateSentenceArgs is the payload of the `annotateSentence` job.
type AnnotateSentenceArgs struct {
	Verb string `json:"verb"`
	Text string `json:"text"`
}

// AnalyzeWordArgs is the payload of the `analyzeWord` job.
type AnalyzeWordArgs struct {
	Word string `json:"word"`
}
