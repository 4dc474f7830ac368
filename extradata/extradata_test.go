// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package extradata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/extradata"
)

func TestInvoiceRoundTrip(t *testing.T) {
	lists := [][]extradata.Invoice{
		{},
		{{ID: "100", Amount: "9.99"}},
		{{ID: "100", Amount: "9.99"}, {ID: "101", Amount: "10.00"}},
		{{ID: "3", Amount: "1"}, {ID: "1", Amount: "2"}, {ID: "2", Amount: "3"}},
	}

	for i, invoices := range lists {
		s := extradata.SerializeInvoices(invoices)
		assert.Equal(t, invoices, extradata.UnserializeInvoices(s), "%d: round trip of %q", i, s)
	}
}

func TestSerializeInvoices(t *testing.T) {
	s := extradata.SerializeInvoices([]extradata.Invoice{
		{ID: "100", Amount: "9.99"},
		{ID: "101", Amount: "10.00"},
	})
	assert.Equal(t, "100=9.99|101=10.00", s, "serialised")
	assert.Equal(t, "", extradata.SerializeInvoices(nil), "empty list")
}

func TestMalformedSegmentsAreSkipped(t *testing.T) {
	tests := []struct {
		in       string
		expected []extradata.Invoice
	}{
		{"", []extradata.Invoice{}},
		{"garbage", []extradata.Invoice{}},
		{"100=9.99|broken|101=10.00", []extradata.Invoice{{ID: "100", Amount: "9.99"}, {ID: "101", Amount: "10.00"}}},
		{"|100=9.99||", []extradata.Invoice{{ID: "100", Amount: "9.99"}}},
		{"100=9.99=1", []extradata.Invoice{{ID: "100", Amount: "9.99=1"}}},
		{"=5", []extradata.Invoice{{ID: "", Amount: "5"}}},
	}

	for i, test := range tests {
		assert.Equal(t, test.expected, extradata.UnserializeInvoices(test.in), "%d: %q", i, test.in)
	}
}

func TestDecode(t *testing.T) {
	data := extradata.Decode("42#19.99#USD#100=9.99|101=10.00")

	assert.Equal(t, "42", data.ClientID, "client id")
	assert.Equal(t, "19.99", data.Amount, "amount")
	assert.Equal(t, "USD", data.Currency, "currency")
	assert.Equal(t, []extradata.Invoice{
		{ID: "100", Amount: "9.99"},
		{ID: "101", Amount: "10.00"},
	}, data.Invoices, "invoices")
}

func TestDecodeShortAndPadded(t *testing.T) {
	data := extradata.Decode(" 7 # 5.00 ")
	assert.Equal(t, "7", data.ClientID, "client id")
	assert.Equal(t, "5.00", data.Amount, "amount")
	assert.Equal(t, "", data.Currency, "currency")
	assert.Empty(t, data.Invoices, "invoices")

	empty := extradata.Decode("")
	assert.Equal(t, extradata.ExtraData{Invoices: []extradata.Invoice{}}, empty, "empty")
}

func TestEncodeDecode(t *testing.T) {
	data := extradata.ExtraData{
		ClientID: "9",
		Amount:   "1500",
		Currency: "JPY",
		Invoices: []extradata.Invoice{{ID: "55", Amount: "1500"}},
	}
	s := extradata.Encode(data)
	assert.Equal(t, "9#1500#JPY#55=1500", s, "encoded")
	assert.Equal(t, data, extradata.Decode(s), "decoded")
}
