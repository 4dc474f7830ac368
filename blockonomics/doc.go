// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockonomics - client for the Blockonomics REST API
//
// Every call makes a single attempt and always returns a *Response,
// transport failures are converted into a synthetic 500 response so
// callers only ever have to inspect Response.Errors()
package blockonomics
