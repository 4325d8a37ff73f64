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

package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"subcomp/annot"
	"subcomp/merror"
	"subcomp/rdb"
)

func TestDeserializeRoundtrip(t *testing.T) {
	orig := SentenceAnnotation{
		Verb: "думать",
		Text: "Я думаю, что он придёт",
		Annotation: annot.Annotation{
			Found:       true,
			Negation:    annot.NegationValueNo,
			Main:        annot.Features{Tense: "present", Person: "first", Number: "singular", Aspect: "ipf"},
			Sub:         annot.Features{Tense: "future", Person: "third", Number: "singular", Aspect: "pf"},
			Conjunction: "что",
		},
	}
	envelope, err := rdb.CreateWorkerResult("job1", orig)
	assert.NoError(t, err)
	assert.Equal(t, rdb.ResultTypeSentenceAnnotation, envelope.ResultType)

	ans, err := Deserialize[SentenceAnnotation](envelope)
	assert.NoError(t, err)
	assert.Equal(t, orig, ans)
}

func TestDeserializeTypeMismatch(t *testing.T) {
	envelope, err := rdb.CreateWorkerResult("job1", WordAnalyses{Word: "придёт"})
	assert.NoError(t, err)
	_, err = Deserialize[SentenceAnnotation](envelope)
	assert.Error(t, err)
}

func TestDeserializeErrorEnvelopeKeepsErrorType(t *testing.T) {
	// a timed-out wait must surface as a TimeoutError on the API
	// side, not as a generic internal failure
	envelope, err := rdb.CreateWorkerResult(
		"job1", ErrorResult{
			Func:      "annotateSentence",
			Error:     "timed out waiting for annotateSentence result",
			ErrorType: merror.TypeTimeout,
		})
	assert.NoError(t, err)
	_, err = Deserialize[SentenceAnnotation](envelope)
	var errTimeout merror.TimeoutError
	assert.ErrorAs(t, err, &errTimeout)
}

func TestDeserializeErrorEnvelope(t *testing.T) {
	envelope, err := rdb.CreateWorkerResult(
		"job1", ErrorResult{Func: "annotateSentence", Error: "worker panicked"})
	assert.NoError(t, err)
	_, err = Deserialize[SentenceAnnotation](envelope)
	assert.ErrorContains(t, err, "worker panicked")
}

func TestResultErrValues(t *testing.T) {
	assert.NoError(t, SentenceAnnotation{}.Err())
	assert.Error(t, SentenceAnnotation{Error: "failed"}.Err())
	assert.NoError(t, WordAnalyses{}.Err())
	assert.Error(t, ErrorResult{Error: "failed"}.Err())
}
