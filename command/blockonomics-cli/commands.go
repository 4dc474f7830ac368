// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
)

func requestContext(m *metadata) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	addresses, err := checkAddresses(c.Args())
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.Balance(ctx, addresses))
}

func runHistory(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	addresses, err := checkAddresses(c.Args())
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.TransactionHistory(ctx, addresses))
}

func runTransactionDetail(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkRequired(c.String("txid"), ErrRequiredTxId)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.TransactionDetail(ctx, txId))
}

func runTransactionReceipt(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkRequired(c.String("txid"), ErrRequiredTxId)
	if nil != err {
		return err
	}
	address, err := checkRequired(c.String("address"), ErrRequiredAddress)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.TransactionReceipt(ctx, txId, address))
}

func runOrder(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	uuid, err := checkRequired(c.Args().First(), ErrRequiredOrderID)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.Order(ctx, uuid))
}

func runCreateWallet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired(c.String("name"), ErrRequiredName)
	if nil != err {
		return err
	}
	xpub, err := checkRequired(c.String("xpub"), ErrRequiredXpub)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.CreateWallet(ctx, name, xpub))
}

func runUpdateWallet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := c.Int("id")
	if id <= 0 {
		return ErrRequiredWalletID
	}
	name, err := checkRequired(c.String("name"), ErrRequiredName)
	if nil != err {
		return err
	}
	gapLimit := c.Int("gap-limit")
	if gapLimit <= 0 {
		return fmt.Errorf("invalid gap limit: %d", gapLimit)
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.UpdateWallet(ctx, id, name, gapLimit))
}

func runDeleteWallet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := c.Int("id")
	if id <= 0 {
		return ErrRequiredWalletID
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.DeleteWallet(ctx, id))
}

func runNewAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	params, err := parseParams(c.Args())
	if nil != err {
		return err
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.NewAddress(ctx, c.Bool("reset"), params))
}

func runPrice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	currency := strings.ToUpper(strings.TrimSpace(c.String("currency")))

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.Price(ctx, currency))
}

func runCreateProduct(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	parent, err := checkRequired(c.String("parent"), ErrRequiredParentUID)
	if nil != err {
		return err
	}
	name, err := checkRequired(c.String("name"), ErrRequiredName)
	if nil != err {
		return err
	}
	value, err := checkValue(c.String("value"))
	if nil != err {
		return err
	}

	product := blockonomics.Product{
		Name:        name,
		Description: c.String("description"),
		Value:       value,
		ExtraData:   c.String("extra-data"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "parent: %s\n", parent)
		fmt.Fprintf(m.e, "value: %s\n", value)
	}

	ctx, cancel := requestContext(m)
	defer cancel()

	return printResponse(m, m.client.CreateTemporaryProduct(ctx, parent, product))
}

// check for a non-blank argument
func checkRequired(s string, missing error) (string, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", missing
	}
	return s, nil
}

func checkAddresses(arguments []string) ([]string, error) {
	addresses := make([]string, 0, len(arguments))
	for _, a := range arguments {
		a = strings.TrimSpace(a)
		if "" != a {
			addresses = append(addresses, a)
		}
	}
	if 0 == len(addresses) {
		return nil, ErrRequiredAddress
	}
	return addresses, nil
}

func checkValue(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return decimal.Zero, ErrRequiredValue
	}
	value, err := decimal.NewFromString(s)
	if nil != err {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid value: %s", s)
	}
	return value, nil
}

// KEY=VALUE arguments to request parameters
func parseParams(arguments []string) (blockonomics.Params, error) {
	params := blockonomics.Params{}
	for _, a := range arguments {
		kv := strings.SplitN(a, "=", 2)
		if 2 != len(kv) || "" == strings.TrimSpace(kv[0]) {
			return nil, ErrInvalidParameter
		}
		params[strings.TrimSpace(kv[0])] = kv[1]
	}
	return params, nil
}
