// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
	"github.com/bitmark-inc/blockonomicsd/extradata"
	"github.com/bitmark-inc/blockonomicsd/fault"
)

// callback query parameter carrying the order
const orderIDParameter = "order_id"

// Validate - check a processor callback against the order it names
func (g *Gateway) Validate(ctx context.Context, query url.Values) (*Transaction, error) {
	g.log.Infof("validate: query: %v", query)

	orderID := strings.TrimSpace(query.Get(orderIDParameter))
	if "" == orderID {
		return nil, fault.ErrMissingOrderID
	}
	return g.ValidateOrder(ctx, orderID)
}

// ValidateOrder - fetch an order and convert it to a transaction
func (g *Gateway) ValidateOrder(ctx context.Context, orderID string) (*Transaction, error) {
	processor, _, _ := g.current()

	response := processor.Order(ctx, orderID)
	g.log.Infof("validate: order: %s  status: %d  reply: %s", orderID, response.Status(), response.Raw())

	if !response.OK() {
		g.log.Errorf("validate: order: %s  errors: %v", orderID, response.Errors())
		return nil, fault.ErrOrderFetchFailed
	}

	var order blockonomics.Order
	if err := response.Decode(&order); nil != err {
		g.log.Errorf("validate: order: %s  decode error: %s", orderID, err)
		return nil, fault.ErrOrderFetchFailed
	}
	if nil == order.Status {
		g.log.Errorf("validate: order: %s  missing status", orderID)
		return nil, fault.ErrUnknownOrderStatus
	}

	status, err := statusOf(*order.Status)
	if nil != err {
		g.log.Errorf("validate: order: %s  processor status: %d", orderID, *order.Status)
		return nil, err
	}

	data := extradata.Decode(order.Data.ExtraData)
	tx := &Transaction{
		OrderID:         orderID,
		ClientID:        data.ClientID,
		Amount:          data.Amount,
		Currency:        data.Currency,
		Invoices:        data.Invoices,
		Status:          status,
		ReferenceID:     order.Address,
		TransactionID:   order.TxID,
		ProcessorStatus: *order.Status,
	}
	g.log.Infof("validate: order: %s  transaction: %+v", orderID, tx)
	return tx, nil
}

// map processor order status to billing state
func statusOf(processorStatus int) (Status, error) {
	switch processorStatus {
	case blockonomics.OrderStatusConfirmed:
		return StatusApproved, nil
	case blockonomics.OrderStatusUnconfirmed, blockonomics.OrderStatusPartiallyConfirmed:
		return StatusPending, nil
	case blockonomics.OrderStatusPaymentError:
		return StatusDeclined, nil
	default:
		return "", fault.ErrUnknownOrderStatus
	}
}

// Success - buyer returned from a completed checkout
func (g *Gateway) Success(query url.Values) *Transaction {
	return &Transaction{
		OrderID: strings.TrimSpace(query.Get(orderIDParameter)),
		Status:  StatusApproved,
	}
}

// Refund - not offered by the processor
func (g *Gateway) Refund(ctx context.Context, referenceID string, transactionID string, amount decimal.Decimal, notes string) (*Transaction, error) {
	g.log.Warnf("refund: reference: %s  transaction: %s  rejected", referenceID, transactionID)
	return nil, fault.ErrUnsupported
}

// Void - not offered by the processor
func (g *Gateway) Void(ctx context.Context, referenceID string, transactionID string, notes string) (*Transaction, error) {
	g.log.Warnf("void: reference: %s  transaction: %s  rejected", referenceID, transactionID)
	return nil, fault.ErrUnsupported
}
