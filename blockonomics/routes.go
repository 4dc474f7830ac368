// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// processor routes
const (
	balanceRoute          = "/balance"
	historyRoute          = "/searchhistory"
	transactionRoute      = "/tx_detail"
	receiptRoute          = "/tx"
	merchantOrderRoute    = "/merchant_order/"
	walletsRoute          = "/v2/wallets"
	newAddressRoute       = "/new_address"
	priceRoute            = "/price"
	temporaryProductRoute = "/create_temp_product"

	walletCrypto = "BTC"
)

// Product - a temporary product representing a single checkout
type Product struct {
	Name        string
	Description string
	Value       decimal.Decimal
	ExtraData   string
}

// Balance - balances for a set of addresses or xpubs
func (c *Client) Balance(ctx context.Context, addresses []string) *Response {
	return c.Request(ctx, balanceRoute, http.MethodPost, Params{
		"addr": strings.Join(addresses, " "),
	})
}

// TransactionHistory - history for a set of addresses or xpubs
func (c *Client) TransactionHistory(ctx context.Context, addresses []string) *Response {
	return c.Request(ctx, historyRoute, http.MethodPost, Params{
		"addr": strings.Join(addresses, " "),
	})
}

// TransactionDetail - details of a single transaction
func (c *Client) TransactionDetail(ctx context.Context, txId string) *Response {
	return c.Request(ctx, transactionRoute, http.MethodGet, Params{
		"txid": txId,
	})
}

// TransactionReceipt - receipt for a transaction paying an address
func (c *Client) TransactionReceipt(ctx context.Context, txId string, address string) *Response {
	return c.Request(ctx, receiptRoute, http.MethodGet, Params{
		"txid": txId,
		"addr": address,
	})
}

// Order - a merchant order by its unique id
func (c *Client) Order(ctx context.Context, uuid string) *Response {
	return c.Request(ctx, merchantOrderRoute+url.PathEscape(uuid), http.MethodGet, nil)
}

// CreateWallet - register an xpub as a new wallet
func (c *Client) CreateWallet(ctx context.Context, name string, xpub string) *Response {
	return c.Request(ctx, walletsRoute, http.MethodPost, Params{
		"name":    name,
		"address": xpub,
		"crypto":  walletCrypto,
	})
}

// UpdateWallet - rename a wallet and change its gap limit
func (c *Client) UpdateWallet(ctx context.Context, id int, name string, gapLimit int) *Response {
	return c.Request(ctx, walletsRoute+"/"+strconv.Itoa(id), http.MethodPost, Params{
		"name":      name,
		"gap_limit": gapLimit,
	})
}

// DeleteWallet - remove a wallet
func (c *Client) DeleteWallet(ctx context.Context, id int) *Response {
	return c.Request(ctx, walletsRoute+"/"+strconv.Itoa(id), http.MethodDelete, nil)
}

// NewAddress - allocate a receiving address
//
// reset restarts the derivation index, params are any extra query
// items e.g. match_account
func (c *Client) NewAddress(ctx context.Context, reset bool, params Params) *Response {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, scalar(v))
	}
	if reset {
		values.Set("reset", "1")
	}

	route := newAddressRoute
	if len(values) > 0 {
		route += "?" + values.Encode()
	}
	return c.Request(ctx, route, http.MethodPost, nil)
}

// Price - current BTC price in a fiat currency
func (c *Client) Price(ctx context.Context, currency string) *Response {
	return c.Request(ctx, priceRoute, http.MethodGet, Params{
		"currency": currency,
	})
}

// CreateTemporaryProduct - create a priced child of a parent product
func (c *Client) CreateTemporaryProduct(ctx context.Context, parentUID string, product Product) *Response {
	return c.Request(ctx, temporaryProductRoute, http.MethodPost, Params{
		"parent_uid":          parentUID,
		"product_name":        product.Name,
		"product_description": product.Description,
		"value":               json.Number(product.Value.String()),
		"extra_data":          product.ExtraData,
	})
}
