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

// Package handlers provides HTTP actions of the API server. Each
// action translates its URL arguments into a job for the worker
// queue and waits for the answer.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"subcomp/merror"
	"subcomp/rdb"
	"subcomp/results"
)

type Actions struct {
	radapter *rdb.Adapter
}

func errStatus(err error) int {
	var errTimeout merror.TimeoutError
	var errInput merror.InputError
	if errors.As(err, &errTimeout) {
		return http.StatusGatewayTimeout

	} else if errors.As(err, &errInput) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// AnnotateSentence parses the `text` argument and annotates the
// relation between the verb given by the `verb` lemma argument and
// the predicate of its subordinate clause.
func (a *Actions) AnnotateSentence(ctx *gin.Context) {
	verb := ctx.Query("verb")
	text := ctx.Query("text")
	if verb == "" || text == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing `verb` or `text` argument"),
			http.StatusBadRequest,
		)
		return
	}
	args, err := json.Marshal(rdb.AnnotateSentenceArgs{
		Verb: verb,
		Text: text,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.PublishQuery(rdb.Query{
		Func: "annotateSentence",
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	result, err := results.Deserialize[results.SentenceAnnotation](rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	if err := result.Err(); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

// AnalyzeWord provides morphological analyses of the `word` argument
// as returned by the backing linguistic service.
func (a *Actions) AnalyzeWord(ctx *gin.Context) {
	word := ctx.Query("word")
	if word == "" {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("missing `word` argument"),
			http.StatusBadRequest,
		)
		return
	}
	args, err := json.Marshal(rdb.AnalyzeWordArgs{Word: word})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	wait, err := a.radapter.PublishQuery(rdb.Query{
		Func: "analyzeWord",
		Args: args,
	})
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	rawResult := <-wait
	result, err := results.Deserialize[results.WordAnalyses](rawResult)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	if err := result.Err(); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, result)
}

func NewActions(radapter *rdb.Adapter) *Actions {
	return &Actions{radapter: radapter}
}
