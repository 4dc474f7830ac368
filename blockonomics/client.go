// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// body returned to the caller when the processor could not be reached
const (
	transportErrorName    = "Transport Error"
	transportErrorMessage = "An internal error occurred, or the server did not respond to the request."
	transportErrorStatus  = 500
)

// Params - request parameters, values must be scalars
type Params map[string]interface{}

// Query - URL encoded form, keys sorted
func (p Params) Query() string {
	values := url.Values{}
	for k, v := range p {
		values.Set(k, scalar(v))
	}
	return values.Encode()
}

// Keys - sorted parameter names
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scalar(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		if s {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// Client - authenticated access to the processor
//
// holds no mutable state so a single client may be shared
type Client struct {
	url    string
	apiKey string
	http   *http.Client
	log    *logger.L
}

// New - create a client from a configuration
func New(configuration *Configuration, log *logger.L) (*Client, error) {
	if nil == configuration || "" == configuration.APIKey {
		return nil, fault.ErrMissingAPIKey
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	connectTimeout := configuration.connectTimeout()

	tlsConfiguration := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: configuration.InsecureTLS,
	}
	if configuration.InsecureTLS {
		log.Warn("TLS certificate and hostname verification disabled")
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     tlsConfiguration,
		TLSHandshakeTimeout: connectTimeout,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		url:    strings.TrimRight(configuration.url(), "/"),
		apiKey: configuration.APIKey,
		http: &http.Client{
			Transport: transport,
			Timeout:   configuration.requestTimeout(),
		},
		log: log,
	}, nil
}

// Request - send a request to the processor
//
// GET and DELETE send params as a query string, all other methods
// send them as a JSON body
func (c *Client) Request(ctx context.Context, route string, method string, params Params) *Response {
	method = strings.ToUpper(method)
	target := c.url + "/" + strings.TrimLeft(route, "/")

	var body io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if len(params) > 0 {
			separator := "?"
			if strings.Contains(target, "?") {
				separator = "&"
			}
			target += separator + params.Query()
		}
	default:
		if nil == params {
			params = Params{}
		}
		b, err := json.Marshal(params)
		if nil != err {
			return c.failure(method, target, err)
		}
		body = bytes.NewReader(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if nil != err {
		return c.failure(method, target, err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Accept", "application/json")
	if nil != body {
		request.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("request: %s %s  params: %v", method, target, params.Keys())

	response, err := c.http.Do(request)
	if nil != err {
		return c.failure(method, target, err)
	}
	defer response.Body.Close()

	raw, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return c.failure(method, target, err)
	}

	c.log.Debugf("response: %s %s  http status: %d  body: %s", method, target, response.StatusCode, raw)

	return NewResponse(raw)
}

// log the error and synthesise an error body
func (c *Client) failure(method string, target string, err error) *Response {
	c.log.Errorf("%s %s  error: %s", method, target, err)

	b, _ := json.Marshal(map[string]interface{}{
		"error":   transportErrorName,
		"message": transportErrorMessage,
		"status":  transportErrorStatus,
	})
	return NewResponse(b)
}
