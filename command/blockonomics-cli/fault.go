// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/blockonomicsd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredAddress   = fault.InvalidError("address is required")
	ErrRequiredName      = fault.InvalidError("name is required")
	ErrRequiredOrderID   = fault.InvalidError("order uuid is required")
	ErrRequiredParentUID = fault.InvalidError("parent uid is required")
	ErrRequiredTxId      = fault.InvalidError("transaction id is required")
	ErrRequiredValue     = fault.InvalidError("value is required")
	ErrRequiredWalletID  = fault.InvalidError("wallet id is required")
	ErrRequiredXpub      = fault.InvalidError("xpub is required")
	ErrInvalidParameter  = fault.InvalidError("parameter must be KEY=VALUE")
	ErrRequestFailed     = fault.ProcessError("request failed")
)
