// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package extradata - encode billing context into the opaque string
// the processor echoes back with its callbacks
//
// format: clientId#amount#currency#id1=amt1|id2=amt2|...
package extradata

import (
	"strings"
)

// separators
const (
	fieldSeparator   = "#"
	invoiceSeparator = "|"
	pairSeparator    = "="

	fieldCount = 4
)

// Invoice - amount of a payment applied to one invoice
type Invoice struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

// ExtraData - the decoded context
type ExtraData struct {
	ClientID string    `json:"client_id"`
	Amount   string    `json:"amount"`
	Currency string    `json:"currency"`
	Invoices []Invoice `json:"invoices"`
}

// Encode - pack the context
func Encode(data ExtraData) string {
	return strings.Join([]string{
		data.ClientID,
		data.Amount,
		data.Currency,
		SerializeInvoices(data.Invoices),
	}, fieldSeparator)
}

// Decode - unpack the context, missing fields are left empty
func Decode(s string) ExtraData {
	fields := strings.SplitN(s, fieldSeparator, fieldCount)
	for len(fields) < fieldCount {
		fields = append(fields, "")
	}

	return ExtraData{
		ClientID: strings.TrimSpace(fields[0]),
		Amount:   strings.TrimSpace(fields[1]),
		Currency: strings.TrimSpace(fields[2]),
		Invoices: UnserializeInvoices(strings.TrimSpace(fields[3])),
	}
}

// SerializeInvoices - id=amount pairs joined by |
func SerializeInvoices(invoices []Invoice) string {
	pairs := make([]string, len(invoices))
	for i, invoice := range invoices {
		pairs[i] = invoice.ID + pairSeparator + invoice.Amount
	}
	return strings.Join(pairs, invoiceSeparator)
}

// UnserializeInvoices - reverse of SerializeInvoices
//
// any segment without an = is skipped
func UnserializeInvoices(s string) []Invoice {
	invoices := []Invoice{}
	for _, segment := range strings.Split(s, invoiceSeparator) {
		pair := strings.SplitN(segment, pairSeparator, 2)
		if 2 != len(pair) {
			continue
		}
		invoices = append(invoices, Invoice{
			ID:     pair[0],
			Amount: pair[1],
		})
	}
	return invoices
}
