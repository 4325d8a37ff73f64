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

package lingsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/httpclient"

	"subcomp/annot"
	"subcomp/merror"
)

const (
	dfltRequestTimeoutSecs  = 60
	dfltIdleConnTimeoutSecs = 60
)

// Client is an HTTP client of the linguistic annotation service.
// It expects a UDPipe-style `/process` endpoint producing CoNLL-U
// and an `/analyze` endpoint producing ranked morphological analyses
// of a single word form. A Client is safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// parseResponse mirrors the UDPipe REST wrapper - the CoNLL-U
// document comes wrapped in a JSON envelope.
type parseResponse struct {
	Result string `json:"result"`
}

type analyzeResponse struct {
	Analyses []annot.WordAnalysis `json:"analyses"`
}

// ParseSentence sends a raw sentence to the service and decodes
// the returned CoNLL-U into a Sentence.
func (c *Client) ParseSentence(ctx context.Context, text string) (*annot.Sentence, error) {
	form := url.Values{}
	form.Set("data", text)
	form.Set("tokenizer", "")
	form.Set("tagger", "")
	form.Set("parser", "")
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/process", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sentence: %w", err)
	}
	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode parse response: %w", err)
	}
	ans, err := DecodeConllu(resp.Result, text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode parse response: %w", err)
	}
	return ans, nil
}

// AnalyzeWord returns ranked context-free morphological analyses
// of a single word form.
func (c *Client) AnalyzeWord(ctx context.Context, word string) ([]annot.WordAnalysis, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/analyze", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyze request: %w", err)
	}
	q := req.URL.Query()
	q.Add("word", word)
	req.URL.RawQuery = q.Encode()
	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze word: %w", err)
	}
	var resp analyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode analyze response: %w", err)
	}
	return resp.Analyses, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, merror.InternalError{
			Msg: fmt.Sprintf("linguistic service returned status %d", resp.StatusCode)}
	}
	return body, nil
}

func NewClient(conf *Conf) *Client {
	requestTimeout := conf.RequestTimeoutSecs
	if requestTimeout == 0 {
		requestTimeout = dfltRequestTimeoutSecs
	}
	idleConnTimeout := conf.IdleConnTimeoutSecs
	if idleConnTimeout == 0 {
		idleConnTimeout = dfltIdleConnTimeoutSecs
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = time.Duration(idleConnTimeout) * time.Second
	return &Client{
		baseURL: strings.TrimRight(conf.URL, "/"),
		client: &http.Client{
			Timeout:   time.Duration(requestTimeout) * time.Second,
			Transport: transport,
		},
	}
}
