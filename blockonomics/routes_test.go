// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
)

func TestRoutes(t *testing.T) {
	client, r, done := newTestClient(t, `{"ok": true}`)
	defer done()

	ctx := context.Background()

	type expected struct {
		method string
		path   string
		query  string
		body   map[string]interface{}
	}

	tests := []struct {
		name     string
		call     func() *blockonomics.Response
		expected expected
	}{
		{
			name: "balance",
			call: func() *blockonomics.Response { return client.Balance(ctx, []string{"1abc", "xpub6C"}) },
			expected: expected{
				method: http.MethodPost,
				path:   "/api/balance",
				body:   map[string]interface{}{"addr": "1abc xpub6C"},
			},
		},
		{
			name: "history",
			call: func() *blockonomics.Response { return client.TransactionHistory(ctx, []string{"1abc"}) },
			expected: expected{
				method: http.MethodPost,
				path:   "/api/searchhistory",
				body:   map[string]interface{}{"addr": "1abc"},
			},
		},
		{
			name: "transaction detail",
			call: func() *blockonomics.Response { return client.TransactionDetail(ctx, "deadbeef") },
			expected: expected{
				method: http.MethodGet,
				path:   "/api/tx_detail",
				query:  "txid=deadbeef",
			},
		},
		{
			name: "transaction receipt",
			call: func() *blockonomics.Response { return client.TransactionReceipt(ctx, "deadbeef", "1abc") },
			expected: expected{
				method: http.MethodGet,
				path:   "/api/tx",
				query:  "addr=1abc&txid=deadbeef",
			},
		},
		{
			name: "order",
			call: func() *blockonomics.Response { return client.Order(ctx, "c0ffee") },
			expected: expected{
				method: http.MethodGet,
				path:   "/api/merchant_order/c0ffee",
			},
		},
		{
			name: "create wallet",
			call: func() *blockonomics.Response { return client.CreateWallet(ctx, "shop", "xpub6C") },
			expected: expected{
				method: http.MethodPost,
				path:   "/api/v2/wallets",
				body:   map[string]interface{}{"name": "shop", "address": "xpub6C", "crypto": "BTC"},
			},
		},
		{
			name: "update wallet",
			call: func() *blockonomics.Response { return client.UpdateWallet(ctx, 7, "shop2", 50) },
			expected: expected{
				method: http.MethodPost,
				path:   "/api/v2/wallets/7",
				body:   map[string]interface{}{"name": "shop2", "gap_limit": json.Number("50")},
			},
		},
		{
			name: "delete wallet",
			call: func() *blockonomics.Response { return client.DeleteWallet(ctx, 7) },
			expected: expected{
				method: http.MethodDelete,
				path:   "/api/v2/wallets/7",
			},
		},
		{
			name: "new address with reset",
			call: func() *blockonomics.Response {
				return client.NewAddress(ctx, true, blockonomics.Params{"match_account": "xpub6C"})
			},
			expected: expected{
				method: http.MethodPost,
				path:   "/api/new_address",
				query:  "match_account=xpub6C&reset=1",
				body:   map[string]interface{}{},
			},
		},
		{
			name: "price",
			call: func() *blockonomics.Response { return client.Price(ctx, "JPY") },
			expected: expected{
				method: http.MethodGet,
				path:   "/api/price",
				query:  "currency=JPY",
			},
		},
	}

	for _, test := range tests {
		response := test.call()
		assert.True(t, response.OK(), "%s: response not ok", test.name)
		assert.Equal(t, test.expected.method, r.method, "%s: method", test.name)
		assert.Equal(t, test.expected.path, r.path, "%s: path", test.name)
		assert.Equal(t, test.expected.query, r.query, "%s: query", test.name)
		if nil == test.expected.body {
			assert.Empty(t, r.body, "%s: body", test.name)
		} else {
			assert.Equal(t, test.expected.body, decodeBody(t, r.body), "%s: body", test.name)
		}
	}
}
