// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, code int, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

// selected errors
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// classify a fault into an HTTP status
func sendFault(w http.ResponseWriter, err error) {
	switch {
	case fault.ErrRateLimiting == err:
		sendError(w, err.Error(), http.StatusTooManyRequests)
	case fault.IsErrInvalid(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	case fault.IsErrNotFound(err):
		sendError(w, err.Error(), http.StatusNotFound)
	case fault.IsErrUnsupported(err):
		sendError(w, err.Error(), http.StatusNotImplemented)
	case fault.IsErrProcess(err):
		sendError(w, err.Error(), http.StatusBadGateway)
	default:
		sendInternalServerError(w)
	}
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
