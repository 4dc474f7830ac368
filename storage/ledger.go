// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

// Ledger - latest known state of each processor order
type Ledger struct {
	sync.Mutex

	log  *logger.L
	pool *PoolHandle
}

// NewLedger - ledger over the transactions pool
//
// storage must already be initialised
func NewLedger(log *logger.L) (*Ledger, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == Pool.Transactions {
		return nil, fault.ErrNotInitialised
	}
	return &Ledger{
		log:  log,
		pool: Pool.Transactions,
	}, nil
}

// Put - record a transaction
//
// returns the stored state and whether it changed; an approved
// transaction is kept in preference to any other state and a pending
// one never replaces a final state
func (l *Ledger) Put(tx *gateway.Transaction) (*gateway.Transaction, bool, error) {
	if nil == tx {
		return nil, false, fault.ErrMissingParameters
	}
	orderID := strings.TrimSpace(tx.OrderID)
	if "" == orderID {
		return nil, false, fault.ErrMissingOrderID
	}

	l.Lock()
	defer l.Unlock()

	existing, err := l.get(orderID)
	if nil != err && fault.ErrTransactionNotFound != err {
		return nil, false, err
	}

	if nil != existing {
		if gateway.StatusApproved == existing.Status && gateway.StatusApproved != tx.Status {
			l.log.Warnf("order: %s  keep: %s  ignore: %s", orderID, existing.Status, tx.Status)
			return existing, false, nil
		}
		if existing.IsFinal() && !tx.IsFinal() {
			l.log.Warnf("order: %s  keep: %s  ignore: %s", orderID, existing.Status, tx.Status)
			return existing, false, nil
		}
	}

	value, err := json.Marshal(tx)
	if nil != err {
		return nil, false, err
	}

	err = l.pool.Put([]byte(orderID), value)
	if nil != err {
		l.log.Errorf("order: %s  put error: %s", orderID, err)
		return nil, false, err
	}

	changed := nil == existing || existing.Status != tx.Status
	l.log.Infof("order: %s  status: %s  changed: %t", orderID, tx.Status, changed)

	stored := *tx
	return &stored, changed, nil
}

// Get - fetch the stored state of an order
func (l *Ledger) Get(orderID string) (*gateway.Transaction, error) {
	return l.get(strings.TrimSpace(orderID))
}

func (l *Ledger) get(orderID string) (*gateway.Transaction, error) {
	if "" == orderID {
		return nil, fault.ErrMissingOrderID
	}

	value, err := l.pool.Get([]byte(orderID))
	if nil != err {
		return nil, err
	}
	if nil == value {
		return nil, fault.ErrTransactionNotFound
	}

	var tx gateway.Transaction
	err = json.Unmarshal(value, &tx)
	if nil != err {
		l.log.Errorf("order: %s  corrupt record: %s", orderID, err)
		return nil, err
	}
	return &tx, nil
}

// Pending - all transactions still waiting for confirmation
func (l *Ledger) Pending() ([]*gateway.Transaction, error) {
	elements, err := l.pool.Elements()
	if nil != err {
		return nil, err
	}

	pending := make([]*gateway.Transaction, 0)
	for _, e := range elements {
		var tx gateway.Transaction
		err := json.Unmarshal(e.Value, &tx)
		if nil != err {
			l.log.Errorf("order: %s  corrupt record: %s", e.Key, err)
			continue
		}
		if !tx.IsFinal() {
			pending = append(pending, &tx)
		}
	}
	return pending, nil
}
