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

// Package merror defines error types which keep their meaning when
// serialized and sent across the job queue. The concrete type tells
// the API side which HTTP status fits the failure.
package merror

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type identifiers carried in queue result envelopes so the concrete
// error type survives serialization.
const (
	TypeInput     = "input"
	TypeInternal  = "internal"
	TypeRecovered = "recovered"
	TypeTimeout   = "timeout"
)

// TypeOf returns the queue type identifier of an error. Errors
// outside the merror vocabulary are reported as internal.
func TypeOf(err error) string {
	var (
		errInput     InputError
		errRecovered RecoveredError
		errTimeout   TimeoutError
	)
	switch {
	case errors.As(err, &errInput):
		return TypeInput
	case errors.As(err, &errRecovered):
		return TypeRecovered
	case errors.As(err, &errTimeout):
		return TypeTimeout
	}
	return TypeInternal
}

// FromType restores a typed error from its queue type identifier.
// An unknown identifier yields InternalError.
func FromType(typ, msg string) error {
	switch typ {
	case TypeInput:
		return InputError{Msg: msg}
	case TypeRecovered:
		return RecoveredError{Msg: msg}
	case TypeTimeout:
		return TimeoutError{Msg: msg}
	}
	return InternalError{Msg: msg}
}

func marshalMsg(msg string) ([]byte, error) {
	if msg != "" {
		return json.Marshal(msg)
	}
	return json.Marshal(nil)
}

// InputError signals an invalid user input (bad argument,
// malformed record).
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ----------------------------

// InternalError signals a failure not caused by the user - typically
// a failing upstream service or a broken resource.
type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ---------------------------

// RecoveredError wraps a panic recovered inside a worker.
type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

func (err RecoveredError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// ---------------------------

// TimeoutError signals that waiting for a queued job result
// took too long.
type TimeoutError struct {
	Msg string
}

func (err TimeoutError) Error() string {
	return err.Msg
}

func (err TimeoutError) MarshalJSON() ([]byte, error) {
	return marshalMsg(err.Msg)
}

// -----------------

// PanicValueToErr converts an arbitrary recovered panic value
// into an error.
func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
