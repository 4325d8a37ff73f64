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

// Package monitoring collects per-job statistics from workers,
// keeps an in-memory worker load overview and (if configured)
// writes the stats to TimescaleDB.
package monitoring

import (
	"context"

	"github.com/czcorpus/hltscl"

	"subcomp/results"
)

type Conf struct {
	DB hltscl.PgConf `json:"db"`
}

// StatusWriter is a sink for finished job records.
type StatusWriter interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Write(rec results.JobLog)
}

// NullWriter is used when no monitoring database is configured.
type NullWriter struct{}

func (n *NullWriter) Start(ctx context.Context) {}

func (n *NullWriter) Stop(ctx context.Context) error { return nil }

func (n *NullWriter) Write(rec results.JobLog) {}
