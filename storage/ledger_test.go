// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/extradata"
	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/storage"
)

func newTestLedger(t *testing.T) *storage.Ledger {
	l, err := storage.NewLedger(logger.New(category))
	if nil != err {
		t.Fatalf("new ledger error: %s", err)
	}
	return l
}

func transaction(orderID string, status gateway.Status) *gateway.Transaction {
	return &gateway.Transaction{
		OrderID:  orderID,
		ClientID: "42",
		Amount:   "19.99",
		Currency: "USD",
		Invoices: []extradata.Invoice{
			{ID: "1001", Amount: "19.99"},
		},
		Status:        status,
		ReferenceID:   "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
		TransactionID: "abc123",
	}
}

func TestLedgerPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	l := newTestLedger(t)

	_, err := l.Get("ORD-1")
	assert.Equal(t, fault.ErrTransactionNotFound, err, "not found")
	assert.True(t, fault.IsErrNotFound(err), "classified")

	tx := transaction("ORD-1", gateway.StatusPending)
	stored, changed, err := l.Put(tx)
	assert.Nil(t, err, "put")
	assert.True(t, changed, "new record")
	assert.Equal(t, tx, stored, "stored")

	actual, err := l.Get("ORD-1")
	assert.Nil(t, err, "get")
	assert.Equal(t, tx, actual, "round trip")

	_, changed, err = l.Put(transaction("ORD-1", gateway.StatusPending))
	assert.Nil(t, err, "put again")
	assert.False(t, changed, "same status")

	stored, changed, err = l.Put(transaction("ORD-1", gateway.StatusApproved))
	assert.Nil(t, err, "approve")
	assert.True(t, changed, "approved")
	assert.Equal(t, gateway.StatusApproved, stored.Status, "approved status")
}

func TestLedgerNeverDowngradesApproved(t *testing.T) {
	setup(t)
	defer teardown(t)

	l := newTestLedger(t)

	_, _, err := l.Put(transaction("ORD-2", gateway.StatusApproved))
	assert.Nil(t, err, "approve")

	for _, status := range []gateway.Status{gateway.StatusPending, gateway.StatusDeclined} {
		stored, changed, err := l.Put(transaction("ORD-2", status))
		assert.Nil(t, err, "put: %s", status)
		assert.False(t, changed, "changed: %s", status)
		assert.Equal(t, gateway.StatusApproved, stored.Status, "kept: %s", status)
	}

	actual, err := l.Get("ORD-2")
	assert.Nil(t, err, "get")
	assert.Equal(t, gateway.StatusApproved, actual.Status, "still approved")
}

func TestLedgerPendingDoesNotReplaceFinal(t *testing.T) {
	setup(t)
	defer teardown(t)

	l := newTestLedger(t)

	_, _, err := l.Put(transaction("ORD-3", gateway.StatusDeclined))
	assert.Nil(t, err, "decline")

	stored, changed, err := l.Put(transaction("ORD-3", gateway.StatusPending))
	assert.Nil(t, err, "pending")
	assert.False(t, changed, "not changed")
	assert.Equal(t, gateway.StatusDeclined, stored.Status, "declined kept")

	stored, changed, err = l.Put(transaction("ORD-3", gateway.StatusApproved))
	assert.Nil(t, err, "approve")
	assert.True(t, changed, "changed")
	assert.Equal(t, gateway.StatusApproved, stored.Status, "approved after decline")
}

func TestLedgerPending(t *testing.T) {
	setup(t)
	defer teardown(t)

	l := newTestLedger(t)

	for _, tx := range []*gateway.Transaction{
		transaction("ORD-A", gateway.StatusPending),
		transaction("ORD-B", gateway.StatusApproved),
		transaction("ORD-C", gateway.StatusPending),
		transaction("ORD-D", gateway.StatusDeclined),
	} {
		_, _, err := l.Put(tx)
		assert.Nil(t, err, "put: %s", tx.OrderID)
	}

	pending, err := l.Pending()
	assert.Nil(t, err, "pending")

	ids := make([]string, 0, len(pending))
	for _, tx := range pending {
		ids = append(ids, tx.OrderID)
	}
	assert.Equal(t, []string{"ORD-A", "ORD-C"}, ids, "pending orders")
}

func TestLedgerErrors(t *testing.T) {
	_, err := storage.NewLedger(nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	setup(t)
	defer teardown(t)

	l := newTestLedger(t)

	_, _, err = l.Put(nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil transaction")

	_, _, err = l.Put(transaction(" ", gateway.StatusPending))
	assert.Equal(t, fault.ErrMissingOrderID, err, "blank order id")

	_, err = l.Get("")
	assert.Equal(t, fault.ErrMissingOrderID, err, "get blank order id")
}
