// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// defaults applied while normalising a response body
const (
	DefaultStatus  = 200             // payload carries no status field
	EmptyStatus    = 400             // payload is empty or could not be decoded
	ErrorThreshold = 400             // any status at or above this carries errors
	UnknownError   = "Unknown error" // payload carries no usable message
)

// Response - the normalised result of one API call
//
// immutable after construction
type Response struct {
	raw    []byte
	parsed interface{}
	status int
	errors []string
}

// NewResponse - normalise a raw body
func NewResponse(raw []byte) *Response {
	r := &Response{
		raw: append([]byte{}, raw...),
	}

	r.parsed = decode(r.raw)
	r.status = statusOf(r.parsed)
	if isEmpty(r.parsed) {
		r.status = EmptyStatus
	}

	r.errors = []string{}
	if r.status >= ErrorThreshold {
		r.errors = append(r.errors, messageOf(r.parsed))
	}
	return r
}

// Status - the normalised status
func (r *Response) Status() int {
	return r.status
}

// Raw - copy of the unmodified body
func (r *Response) Raw() []byte {
	return append([]byte{}, r.raw...)
}

// Parsed - the decoded payload or nil if the body was not JSON
//
// numbers are json.Number, the value must not be modified
func (r *Response) Parsed() interface{} {
	return r.parsed
}

// Errors - copy of the error list, empty unless Status() >= 400
func (r *Response) Errors() []string {
	return append([]string{}, r.errors...)
}

// OK - true if no errors were derived
func (r *Response) OK() bool {
	return 0 == len(r.errors)
}

// Decode - unmarshal the raw body into an endpoint specific structure
func (r *Response) Decode(v interface{}) error {
	if nil == r.parsed {
		return fault.ErrEmptyResponse
	}
	return json.Unmarshal(r.raw, v)
}

// String - top level field as a string or the default
func (r *Response) String(key string, defaultValue string) string {
	value, ok := field(r.parsed, key)
	if !ok {
		return defaultValue
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return defaultValue
	}
}

// Int - top level field as an integer or the default
func (r *Response) Int(key string, defaultValue int) int {
	value, ok := field(r.parsed, key)
	if !ok {
		return defaultValue
	}
	if n, ok := toInt(value); ok {
		return n
	}
	return defaultValue
}

// decode the body, trailing data is treated as malformed
func decode(raw []byte) interface{} {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var v interface{}
	if err := decoder.Decode(&v); nil != err {
		return nil
	}
	if _, err := decoder.Token(); io.EOF != err {
		return nil
	}
	return v
}

func field(parsed interface{}, key string) (interface{}, bool) {
	m, ok := parsed.(map[string]interface{})
	if !ok {
		return nil, false
	}
	value, ok := m[key]
	if !ok || nil == value {
		return nil, false
	}
	return value, true
}

func statusOf(parsed interface{}) int {
	value, ok := field(parsed, "status")
	if !ok {
		return DefaultStatus
	}
	if n, ok := toInt(value); ok {
		return n
	}
	return DefaultStatus
}

func messageOf(parsed interface{}) string {
	value, ok := field(parsed, "message")
	if !ok {
		return UnknownError
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return UnknownError
}

// numbers and numeric strings are accepted
func toInt(value interface{}) (int, bool) {
	var n json.Number
	switch v := value.(type) {
	case json.Number:
		n = v
	case string:
		n = json.Number(strings.TrimSpace(v))
	default:
		return 0, false
	}
	if i, err := n.Int64(); nil == err {
		return int(i), true
	}
	if f, err := n.Float64(); nil == err {
		return int(f), true
	}
	return 0, false
}

// values treated as an absent payload
func isEmpty(parsed interface{}) bool {
	switch v := parsed.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return "" == v || "0" == v
	case json.Number:
		f, err := v.Float64()
		return nil == err && 0 == f
	case []interface{}:
		return 0 == len(v)
	default: // objects are never empty, even {}
		return false
	}
}

