// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/currency"
	"github.com/bitmark-inc/blockonomicsd/fault"
)

// fields the billing platform stores encrypted
var encryptableFields = []string{apiKeyField}

// Configuration - gateway settings read from the configuration file
type Configuration struct {
	Company  string `gluamapper:"company" json:"company"`
	Currency string `gluamapper:"currency" json:"currency"`
	Meta     Meta   `gluamapper:"meta" json:"meta"`
}

// Gateway - non-merchant payment gateway backed by the processor
type Gateway struct {
	sync.RWMutex

	log       *logger.L
	company   string
	currency  string
	meta      Meta
	factory   ProcessorFactory
	processor Processor
}

// New - create a gateway
func New(configuration *Configuration, factory ProcessorFactory, log *logger.L) (*Gateway, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == configuration || nil == factory {
		return nil, fault.ErrMissingParameters
	}

	code := configuration.Currency
	if "" == code {
		code = defaultCurrency
	}
	code, err := currency.Normalise(code)
	if nil != err {
		return nil, err
	}

	g := &Gateway{
		log:      log,
		company:  configuration.Company,
		currency: code,
		factory:  factory,
	}
	if err := g.SetMeta(configuration.Meta); nil != err {
		return nil, err
	}
	return g, nil
}

// SetMeta - replace the settings and rebuild the processor
func (g *Gateway) SetMeta(meta Meta) error {
	processor, err := g.factory(meta.APIKey)
	if nil != err {
		g.log.Errorf("processor for new settings: error: %s", err)
		return err
	}

	g.Lock()
	defer g.Unlock()

	g.meta = meta
	g.processor = processor
	return nil
}

// Meta - current settings
func (g *Gateway) Meta() Meta {
	g.RLock()
	defer g.RUnlock()
	return g.meta
}

// SetCurrency - select the currency for subsequent checkouts
func (g *Gateway) SetCurrency(code string) error {
	code, err := currency.Normalise(code)
	if nil != err {
		return err
	}

	g.Lock()
	g.currency = code
	g.Unlock()
	return nil
}

// Currency - the currently selected currency
func (g *Gateway) Currency() string {
	g.RLock()
	defer g.RUnlock()
	return g.currency
}

// WithCurrency - a copy of the gateway sharing its processor but
// using a different currency
func (g *Gateway) WithCurrency(code string) (*Gateway, error) {
	code, err := currency.Normalise(code)
	if nil != err {
		return nil, err
	}

	g.RLock()
	defer g.RUnlock()

	return &Gateway{
		log:       g.log,
		company:   g.company,
		currency:  code,
		meta:      g.meta,
		factory:   g.factory,
		processor: g.processor,
	}, nil
}

// EncryptableFields - settings that must be stored encrypted
func (g *Gateway) EncryptableFields() []string {
	fields := make([]string, len(encryptableFields))
	copy(fields, encryptableFields)
	return fields
}

// ValidateAPIKey - check a candidate key by fetching the USD price
func (g *Gateway) ValidateAPIKey(ctx context.Context, apiKey string) bool {
	processor, err := g.factory(apiKey)
	if nil != err {
		g.log.Warnf("validate api key: error: %s", err)
		return false
	}

	response := processor.Price(ctx, validationCurrency)
	if !response.OK() || nil == response.Parsed() {
		g.log.Warnf("validate api key: status: %d  errors: %v", response.Status(), response.Errors())
		return false
	}
	return true
}

// EditSettings - accept new settings only if their key is valid
func (g *Gateway) EditSettings(ctx context.Context, meta Meta) (Meta, error) {
	if !g.ValidateAPIKey(ctx, meta.APIKey) {
		return meta, fault.ErrInvalidAPIKey
	}
	return meta, nil
}

// snapshot of the state needed by one operation
func (g *Gateway) current() (Processor, Meta, string) {
	g.RLock()
	defer g.RUnlock()
	return g.processor, g.meta, g.currency
}
