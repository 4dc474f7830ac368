// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
)

type responseReply struct {
	Status int         `json:"status"`
	Errors []string    `json:"errors,omitempty"`
	Data   interface{} `json:"data"`
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// print the normalised response and fail if it carries errors
func printResponse(m *metadata, response *blockonomics.Response) error {
	reply := responseReply{
		Status: response.Status(),
		Errors: response.Errors(),
		Data:   response.Parsed(),
	}
	if nil == reply.Data {
		reply.Data = string(response.Raw())
	}

	if m.verbose {
		fmt.Fprintf(m.e, "raw: %s\n", response.Raw())
	}

	if err := printJson(m.w, reply); nil != err {
		return err
	}
	if !response.OK() {
		return ErrRequestFailed
	}
	return nil
}
