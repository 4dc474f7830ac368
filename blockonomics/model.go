// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics

import (
	"github.com/shopspring/decimal"
)

// merchant order status values
const (
	OrderStatusPaymentError       = -1
	OrderStatusUnconfirmed        = 0
	OrderStatusPartiallyConfirmed = 1
	OrderStatusConfirmed          = 2
)

// Order - reply from the merchant order route
//
// Status is nil when the processor omitted it
type Order struct {
	Status  *int            `json:"status"`
	UUID    string          `json:"uuid"`
	Address string          `json:"address"`
	TxID    string          `json:"txid"`
	Value   decimal.Decimal `json:"value"`
	Data    OrderData       `json:"data"`
}

// OrderData - merchant supplied data echoed back
type OrderData struct {
	ExtraData string `json:"extradata"`
	Name      string `json:"name"`
	Email     string `json:"emailid"`
}

// Price - reply from the price route
type Price struct {
	Price decimal.Decimal `json:"price"`
}

// TemporaryProduct - reply from the temporary product route
type TemporaryProduct struct {
	UID string `json:"uid"`
}

// NewAddress - reply from the new address route
type NewAddress struct {
	Address string `json:"address"`
	Reset   int    `json:"reset"`
	Account string `json:"account"`
}

// Wallet - a wallet registered with the processor
type Wallet struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Crypto   string `json:"crypto"`
	GapLimit int    `json:"gap_limit"`
}

// AddressBalance - satoshi balances for one address
type AddressBalance struct {
	Address     string `json:"addr"`
	Confirmed   int64  `json:"confirmed"`
	Unconfirmed int64  `json:"unconfirmed"`
}

// BalanceReply - reply from the balance route
type BalanceReply struct {
	Response []AddressBalance `json:"response"`
}

// HistoryItem - one transaction from the search history route
type HistoryItem struct {
	Addresses []string `json:"addr"`
	TxID      string   `json:"txid"`
	Value     int64    `json:"value"`
	Time      int64    `json:"time"`
	Status    int      `json:"status,omitempty"`
}

// HistoryReply - reply from the search history route
type HistoryReply struct {
	Pending []HistoryItem `json:"pending"`
	History []HistoryItem `json:"history"`
}
