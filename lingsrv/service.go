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

// Package lingsrv talks to the external linguistic annotation
// service - a UDPipe-style tokenizer+tagger+parser plus a
// context-free morphological analyzer. The service is initialized
// once at startup and treated as a read-only, thread-safe resource;
// all its calls are ordinary (possibly slow) blocking calls.
package lingsrv

import (
	"context"

	"subcomp/annot"
)

// Service is the consumed interface of the linguistic annotation
// service. ParseSentence turns a raw sentence string into a parsed
// Sentence; AnalyzeWord returns ranked context-free morphological
// analyses of a single word form (callers use the top-ranked one).
type Service interface {
	annot.WordAnalyzer

	ParseSentence(ctx context.Context, text string) (*annot.Sentence, error)
}

// Conf configures access to the linguistic annotation service.
type Conf struct {
	URL                 string `json:"url"`
	RequestTimeoutSecs  int    `json:"requestTimeoutSecs"`
	IdleConnTimeoutSecs int    `json:"idleConnTimeoutSecs"`
}
