// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"github.com/bitmark-inc/blockonomicsd/extradata"
)

// Status - billing state of a payment
type Status string

// transaction states understood by the billing platform
const (
	StatusApproved   Status = "approved"
	StatusDeclined   Status = "declined"
	StatusVoid       Status = "void"
	StatusPending    Status = "pending"
	StatusReconciled Status = "reconciled"
	StatusRefunded   Status = "refunded"
	StatusReturned   Status = "returned"
)

// Transaction - result of validating a processor order
type Transaction struct {
	OrderID             string              `json:"order_id"`
	ClientID            string              `json:"client_id"`
	Amount              string              `json:"amount"`
	Currency            string              `json:"currency"`
	Invoices            []extradata.Invoice `json:"invoices"`
	Status              Status              `json:"status"`
	ReferenceID         string              `json:"reference_id"`
	TransactionID       string              `json:"transaction_id"`
	ParentTransactionID string              `json:"parent_transaction_id"`
	ProcessorStatus     int                 `json:"processor_status"`
}

// IsFinal - true once the state can no longer change
func (t *Transaction) IsFinal() bool {
	return StatusPending != t.Status
}
