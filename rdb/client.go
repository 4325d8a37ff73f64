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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"subcomp/merror"
)

const (
	MsgNewQuery                = "newQuery"
	DefaultQueueKey            = "subcompQueue"
	DefaultResultChannelPrefix = "subcompResults"
	DefaultQueryChannel        = "subcompQueries"
	DefaultResultExpiration    = 10 * time.Minute
	DefaultResultWaitTimeout   = 5 * time.Minute
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

// Query is a single job pushed to the worker queue.
type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// Adapter provides access to the Redis-backed job queue. Jobs are
// pushed to a list, workers are woken up via pub/sub and each job
// gets a unique result channel the publisher subscribes to.
type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	queueKey            string
	channelQuery        string
	channelResultPrefix string
}

// SomeoneListens tests whether the party which published a query
// still waits for the answer.
func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery pushes a new job to the queue and returns a channel
// providing the (single) result once a worker is done with the job.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	if err := a.c.LPush(a.ctx, a.queueKey, msg).Err(); err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	ans := make(chan *WorkerResult)

	go func() {
		defer sub.Close()
		defer close(ans)
		var result *WorkerResult
		select {
		case item := <-sub.Channel():
			result = new(WorkerResult)
			cmd := a.c.Get(a.ctx, item.Payload)
			if cmd.Err() != nil {
				result = errorWorkerResult(query.Func, cmd.Err())

			} else if err := json.Unmarshal([]byte(cmd.Val()), result); err != nil {
				result = errorWorkerResult(query.Func, err)
			}
		case <-time.After(DefaultResultWaitTimeout):
			result = errorWorkerResult(query.Func, merror.TimeoutError{
				Msg: fmt.Sprintf("timed out waiting for %s result", query.Func)})
		case <-a.ctx.Done():
			result = errorWorkerResult(query.Func, a.ctx.Err())
		}
		ans <- result
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func errorWorkerResult(fn string, err error) *WorkerResult {
	value, _ := json.Marshal(map[string]string{
		"func":      fn,
		"error":     err.Error(),
		"errorType": merror.TypeOf(err),
	})
	return &WorkerResult{
		ResultType: ResultTypeError,
		Value:      value,
	}
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, a.queueKey)
	if errors.Is(cmd.Err(), redis.Nil) {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	a.c.Set(a.ctx, channelName, string(data), DefaultResultExpiration)
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

// Subscribe provides a channel with worker wake-up notifications.
func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

// TestConnection pings Redis repeatedly until it responds or
// the timeout is over.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var err error
	for time.Now().Before(deadline) {
		if err = a.c.Ping(a.ctx).Err(); err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("waiting for Redis connection")
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("failed to connect to Redis: %w", err)
}

func NewAdapter(ctx context.Context, conf *Conf) *Adapter {
	queueKey := conf.QueueKey
	if queueKey == "" {
		queueKey = DefaultQueueKey
		log.Warn().
			Str("queue", queueKey).
			Msg("Redis queue key not specified, using default")
	}
	chRes := conf.ChannelResultPrefix
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	chQuery := conf.ChannelQuery
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		queueKey:            queueKey,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
	}
}
