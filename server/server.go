// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - HTTP interface between the billing platform, the
// buyer and the processor callbacks
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

// defaults
const (
	defaultCallbackRate  = 10
	defaultCallbackBurst = 20

	maximumBodySize = 1 << 20
)

// Configuration - configuration file data for the server
type Configuration struct {
	Listen        []string `gluamapper:"listen" json:"listen"`
	Certificate   string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey    string   `gluamapper:"private_key" json:"private_key"`
	CallbackRate  float64  `gluamapper:"callback_rate" json:"callback_rate"`
	CallbackBurst int      `gluamapper:"callback_burst" json:"callback_burst"`
}

// Ledger - storage of transaction states
type Ledger interface {
	Put(tx *gateway.Transaction) (*gateway.Transaction, bool, error)
	Get(orderID string) (*gateway.Transaction, error)
}

// MetaSaver - persist accepted gateway settings
type MetaSaver func(meta gateway.Meta) error

// Server - the request handlers
type Server struct {
	log      *logger.L
	gateway  *gateway.Gateway
	ledger   Ledger
	saveMeta MetaSaver
	limiter  *rate.Limiter
	router   chi.Router
}

// New - create the handlers
func New(configuration *Configuration, g *gateway.Gateway, ledger Ledger, saveMeta MetaSaver, log *logger.L) (*Server, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == configuration || nil == g || nil == ledger || nil == saveMeta {
		return nil, fault.ErrMissingParameters
	}

	callbackRate := configuration.CallbackRate
	if callbackRate < 0 || configuration.CallbackBurst < 0 {
		return nil, fault.ErrInvalidCount
	}
	if 0 == callbackRate {
		callbackRate = defaultCallbackRate
	}
	callbackBurst := configuration.CallbackBurst
	if 0 == callbackBurst {
		callbackBurst = defaultCallbackBurst
	}

	s := &Server{
		log:      log,
		gateway:  g,
		ledger:   ledger,
		saveMeta: saveMeta,
		limiter:  rate.NewLimiter(rate.Limit(callbackRate), callbackBurst),
	}

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		sendNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		sendMethodNotAllowed(w)
	})

	r.Get("/-/live", s.live)
	r.Post("/checkout", s.checkout)
	r.Get("/callback", s.callback)
	r.Get("/success", s.success)
	r.Put("/settings", s.settings)
	r.Route("/transactions/{orderID}", func(r chi.Router) {
		r.Get("/", s.transaction)
		r.Post("/refund", s.refund)
		r.Post("/void", s.void)
	})

	s.router = r

	return s, nil
}

// ServeHTTP - dispatch to the routes
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
