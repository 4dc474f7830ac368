// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blockonomicsd/extradata"
	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

func (s *Server) live(w http.ResponseWriter, _ *http.Request) {
	sendReply(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type checkoutRequest struct {
	ClientID    string              `json:"client_id"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Email       string              `json:"email"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    string              `json:"currency"`
	Description string              `json:"description"`
	ReturnURL   string              `json:"return_url"`
	Invoices    []extradata.Invoice `json:"invoices"`
	Recur       *gateway.Recur      `json:"recur"`
}

// create the temporary product for a payment
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var request checkoutRequest
	if !s.decode(w, r, &request) {
		return
	}

	g := s.gateway
	if "" != request.Currency {
		var err error
		g, err = s.gateway.WithCurrency(request.Currency)
		if nil != err {
			sendFault(w, err)
			return
		}
	}

	contact := gateway.Contact{
		ClientID:  request.ClientID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	}
	options := gateway.Options{
		Description: request.Description,
		ReturnURL:   request.ReturnURL,
		Recur:       request.Recur,
	}

	checkout, err := g.BuildProcess(r.Context(), contact, request.Amount, request.Invoices, options)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, http.StatusOK, checkout)
}

// processor callback
func (s *Server) callback(w http.ResponseWriter, r *http.Request) {
	if err := limit(r.Context(), s.limiter); nil != err {
		s.log.Warnf("callback from: %s  error: %s", r.RemoteAddr, err)
		sendFault(w, err)
		return
	}

	tx, err := s.gateway.Validate(r.Context(), r.URL.Query())
	if nil != err {
		sendFault(w, err)
		return
	}

	stored, _, err := s.ledger.Put(tx)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, http.StatusOK, stored)
}

// buyer returned from the processor
func (s *Server) success(w http.ResponseWriter, r *http.Request) {
	sendReply(w, http.StatusOK, s.gateway.Success(r.URL.Query()))
}

func (s *Server) transaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.ledger.Get(chi.URLParam(r, "orderID"))
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, http.StatusOK, tx)
}

type adjustRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

func (s *Server) refund(w http.ResponseWriter, r *http.Request) {
	var request adjustRequest
	if !s.decode(w, r, &request) {
		return
	}

	tx, err := s.stored(r)
	if nil != err {
		sendFault(w, err)
		return
	}

	refunded, err := s.gateway.Refund(r.Context(), tx.ReferenceID, tx.TransactionID, request.Amount, request.Notes)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, http.StatusOK, refunded)
}

func (s *Server) void(w http.ResponseWriter, r *http.Request) {
	var request adjustRequest
	if !s.decode(w, r, &request) {
		return
	}

	tx, err := s.stored(r)
	if nil != err {
		sendFault(w, err)
		return
	}

	voided, err := s.gateway.Void(r.Context(), tx.ReferenceID, tx.TransactionID, request.Notes)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, http.StatusOK, voided)
}

type settingsReply struct {
	Currencies        []string `json:"currencies"`
	EncryptableFields []string `json:"encryptable_fields"`
}

// replace the gateway settings from flat platform fields
func (s *Server) settings(w http.ResponseWriter, r *http.Request) {
	fields := make(map[string]string)
	if !s.decode(w, r, &fields) {
		return
	}

	meta, err := s.gateway.EditSettings(r.Context(), gateway.MetaFromFields(fields))
	if nil != err {
		sendFault(w, err)
		return
	}

	err = s.saveMeta(meta)
	if nil != err {
		s.log.Errorf("save settings: error: %s", err)
		sendInternalServerError(w)
		return
	}

	err = s.gateway.SetMeta(meta)
	if nil != err {
		sendFault(w, err)
		return
	}

	sendReply(w, http.StatusOK, settingsReply{
		Currencies:        meta.Currencies(),
		EncryptableFields: s.gateway.EncryptableFields(),
	})
}

// the ledger entry named in the route
func (s *Server) stored(r *http.Request) (*gateway.Transaction, error) {
	tx, err := s.ledger.Get(chi.URLParam(r, "orderID"))
	if nil != err {
		return nil, err
	}
	if "" == tx.TransactionID {
		return nil, fault.ErrMissingTransactionID
	}
	return tx, nil
}

// decode a JSON request body, an error reply is sent on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maximumBodySize)
	err := json.NewDecoder(r.Body).Decode(v)
	if nil != err {
		s.log.Warnf("%s %s  decode error: %s", r.Method, r.URL.Path, err)
		sendError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
