// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
	"github.com/bitmark-inc/blockonomicsd/currency"
	"github.com/bitmark-inc/blockonomicsd/extradata"
	"github.com/bitmark-inc/blockonomicsd/fault"
)

// Contact - the billing client making the payment
type Contact struct {
	ClientID  string `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Recur - recurring part of a payment
type Recur struct {
	Amount decimal.Decimal `json:"amount"`
	Term   int             `json:"term"`
	Period string          `json:"period"`
}

// Options - checkout options
type Options struct {
	Description string `json:"description"`
	ReturnURL   string `json:"return_url"`
	Recur       *Recur `json:"recur,omitempty"`
}

// Checkout - a temporary product ready for the buyer
type Checkout struct {
	UID       string          `json:"uid"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	ExtraData string          `json:"extra_data"`
	ReturnURL string          `json:"return_url,omitempty"`
	Recur     *Recur          `json:"recur,omitempty"`
}

// BuildProcess - create the temporary product the buyer pays for
func (g *Gateway) BuildProcess(ctx context.Context, contact Contact, amount decimal.Decimal, invoices []extradata.Invoice, options Options) (*Checkout, error) {
	processor, meta, code := g.current()

	if "" == contact.ClientID {
		return nil, fault.ErrMissingClientID
	}

	amount = currency.Round(amount, code)
	if !amount.IsPositive() {
		return nil, fault.ErrInvalidAmount
	}

	var recur *Recur
	if nil != options.Recur {
		recur = &Recur{
			Amount: currency.Round(options.Recur.Amount, code),
			Term:   options.Recur.Term,
			Period: options.Recur.Period,
		}
	}

	parentUID := meta.ParentUID(code)
	if "" == parentUID {
		g.log.Errorf("build process: no parent product for currency: %s", code)
		return nil, fault.ErrMissingParentUID
	}

	data := extradata.Encode(extradata.ExtraData{
		ClientID: contact.ClientID,
		Amount:   currency.Format(amount, code),
		Currency: code,
		Invoices: invoices,
	})

	product := blockonomics.Product{
		Name:        g.company,
		Description: options.Description,
		Value:       amount,
		ExtraData:   data,
	}
	g.log.Infof("build process: parent: %q  product: %+v", parentUID, product)

	response := processor.CreateTemporaryProduct(ctx, parentUID, product)
	g.log.Infof("build process: status: %d  reply: %s", response.Status(), response.Raw())

	if !response.OK() {
		g.log.Errorf("build process: errors: %v", response.Errors())
		return nil, fault.ErrOrderCreationFailed
	}

	var reply blockonomics.TemporaryProduct
	if err := response.Decode(&reply); nil != err || "" == reply.UID {
		g.log.Errorf("build process: no product uid in reply: %s", response.Raw())
		return nil, fault.ErrOrderCreationFailed
	}

	return &Checkout{
		UID:       reply.UID,
		Amount:    amount,
		Currency:  code,
		ExtraData: data,
		ReturnURL: options.ReturnURL,
		Recur:     recur,
	}, nil
}
