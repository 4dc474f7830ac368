// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package poller - periodically re-validate orders that are still
// waiting for confirmations
//
// the processor only calls back on some state changes so pending
// orders are fetched again until they reach a final state
package poller

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

// defaults
const (
	DefaultInterval = 2 * time.Minute
	DefaultTimeout  = 30 * time.Second
)

// Configuration - poller settings, times in seconds, zero selects the default
type Configuration struct {
	Interval int `gluamapper:"interval" json:"interval"`
	Timeout  int `gluamapper:"timeout" json:"timeout"`
}

// Validator - fetch the current state of an order
type Validator interface {
	ValidateOrder(ctx context.Context, orderID string) (*gateway.Transaction, error)
}

// Ledger - storage of transaction states
type Ledger interface {
	Put(tx *gateway.Transaction) (*gateway.Transaction, bool, error)
	Pending() ([]*gateway.Transaction, error)
}

// Poller - background process checking pending orders
type Poller struct {
	log       *logger.L
	validator Validator
	ledger    Ledger
	interval  time.Duration
	timeout   time.Duration
}

// New - create a poller
func New(configuration *Configuration, validator Validator, ledger Ledger, log *logger.L) (*Poller, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == validator || nil == ledger {
		return nil, fault.ErrMissingParameters
	}

	interval := DefaultInterval
	timeout := DefaultTimeout
	if nil != configuration {
		if configuration.Interval < 0 || configuration.Timeout < 0 {
			return nil, fault.ErrInvalidCount
		}
		if configuration.Interval > 0 {
			interval = time.Duration(configuration.Interval) * time.Second
		}
		if configuration.Timeout > 0 {
			timeout = time.Duration(configuration.Timeout) * time.Second
		}
	}

	return &Poller{
		log:       log,
		validator: validator,
		ledger:    ledger,
		interval:  interval,
		timeout:   timeout,
	}, nil
}

// Run - background process loop
func (p *Poller) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log

	log.Infof("starting…  interval: %s", p.interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-timer.C:
			checked, updated := p.Poll(ctx)
			log.Debugf("checked: %d  updated: %d", checked, updated)
			timer.Reset(p.interval)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}

// Poll - validate each pending order once
//
// returns the number of orders checked and the number whose state changed
func (p *Poller) Poll(ctx context.Context) (int, int) {
	log := p.log

	pending, err := p.ledger.Pending()
	if nil != err {
		log.Errorf("list pending: error: %s", err)
		return 0, 0
	}

	checked := 0
	updated := 0
	for _, item := range pending {
		if nil != ctx.Err() {
			break
		}
		checked += 1

		tx, err := p.validate(ctx, item.OrderID)
		if nil != err {
			log.Warnf("order: %s  validate error: %s", item.OrderID, err)
			continue
		}

		_, changed, err := p.ledger.Put(tx)
		if nil != err {
			log.Errorf("order: %s  store error: %s", item.OrderID, err)
			continue
		}
		if changed {
			updated += 1
			log.Infof("order: %s  status: %s → %s", item.OrderID, item.Status, tx.Status)
		}
	}
	return checked, updated
}

func (p *Poller) validate(ctx context.Context, orderID string) (*gateway.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.validator.ValidateOrder(ctx, orderID)
}
