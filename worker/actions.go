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
	"context"

	"subcomp/rdb"
	"subcomp/results"
)

func (w *Worker) annotateSentence(
	ctx context.Context,
	args rdb.AnnotateSentenceArgs,
) results.SentenceAnnotation {
	ans := results.SentenceAnnotation{Verb: args.Verb, Text: args.Text}
	if args.Verb == "" || args.Text == "" {
		ans.Error = "both verb and text must be specified"
		return ans
	}
	sent, err := w.service.ParseSentence(ctx, args.Text)
	if err != nil {
		ans.Error = err.Error()
		return ans
	}
	annotation, err := w.annotator.Annotate(ctx, sent, args.Verb)
	if err != nil {
		ans.Error = err.Error()
		return ans
	}
	ans.Annotation = annotation.Normalized()
	return ans
}

func (w *Worker) analyzeWord(
	ctx context.Context,
	args rdb.AnalyzeWordArgs,
) results.WordAnalyses {
	ans := results.WordAnalyses{Word: args.Word}
	if args.Word == "" {
		ans.Error = "word must be specified"
		return ans
	}
	analyses, err := w.service.AnalyzeWord(ctx, args.Word)
	if err != nil {
		ans.Error = err.Error()
		return ans
	}
	ans.Analyses = analyses
	return ans
}
