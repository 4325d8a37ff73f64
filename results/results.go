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

// Package results defines the concrete answers workers produce
// for queued jobs, plus a generic deserializer for the consuming
// (API) side.
package results

import (
	"fmt"

	"github.com/bytedance/sonic"

	"subcomp/annot"
	"subcomp/merror"
	"subcomp/rdb"
)

// SentenceAnnotation is the result of the `annotateSentence` job.
type SentenceAnnotation struct {
	Verb       string           `json:"verb"`
	Text       string           `json:"text"`
	Annotation annot.Annotation `json:"annotation"`
	Error      string           `json:"error,omitempty"`
}

func (res SentenceAnnotation) Err() error {
	if res.Error != "" {
		return merror.InternalError{Msg: res.Error}
	}
	return nil
}

func (res SentenceAnnotation) Type() rdb.ResultType {
	return rdb.ResultTypeSentenceAnnotation
}

// --------

// WordAnalyses is the result of the `analyzeWord` job.
type WordAnalyses struct {
	Word     string               `json:"word"`
	Analyses []annot.WordAnalysis `json:"analyses"`
	Error    string               `json:"error,omitempty"`
}

func (res WordAnalyses) Err() error {
	if res.Error != "" {
		return merror.InternalError{Msg: res.Error}
	}
	return nil
}

func (res WordAnalyses) Type() rdb.ResultType {
	return rdb.ResultTypeWordAnalyses
}

// --------

// ErrorResult is the generic answer for a job which could not be
// processed at all (unknown function, panic, publishing failure,
// timed-out wait). ErrorType preserves the merror type across the
// queue so the API side can map the failure to a proper HTTP status.
type ErrorResult struct {
	Func      string `json:"func"`
	Error     string `json:"error"`
	ErrorType string `json:"errorType,omitempty"`
}

func (res ErrorResult) Err() error {
	if res.Error != "" {
		return merror.FromType(res.ErrorType, res.Error)
	}
	return nil
}

func (res ErrorResult) Type() rdb.ResultType {
	return rdb.ResultTypeError
}

// --------

// Deserialize decodes a WorkerResult envelope into a concrete
// result type. An error-typed envelope is turned into a plain
// error regardless of the requested type.
func Deserialize[T rdb.FuncResult](w *rdb.WorkerResult) (T, error) {
	var ans T
	if w.ResultType == rdb.ResultTypeError {
		var errRes ErrorResult
		if err := sonic.Unmarshal(w.Value, &errRes); err != nil {
			return ans, fmt.Errorf("failed to deserialize error result: %w", err)
		}
		return ans, errRes.Err()
	}
	if w.ResultType != ans.Type() {
		return ans, fmt.Errorf(
			"unexpected result type %s (expected %s)", w.ResultType, ans.Type())
	}
	if err := sonic.Unmarshal(w.Value, &ans); err != nil {
		return ans, fmt.Errorf("failed to deserialize %s result: %w", ans.Type(), err)
	}
	return ans, nil
}
