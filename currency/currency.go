// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - ISO 4217 fiat currency handling for payment amounts
package currency

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// decimal places used for payment amounts
const (
	fractionalPlaces    = 2
	nonFractionalPlaces = 0
)

// currencies that have no minor unit
var nonFractional = map[string]struct{}{
	"BIF": {},
	"CLP": {},
	"DJF": {},
	"GNF": {},
	"JPY": {},
	"KMF": {},
	"KRW": {},
	"PYG": {},
	"RWF": {},
	"UGX": {},
	"VND": {},
	"VUV": {},
	"XAF": {},
	"XOF": {},
	"XPF": {},
}

// Normalise - check a currency code and convert it to upper case
func Normalise(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if 3 != len(code) {
		return "", fault.ErrInvalidCurrency
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return "", fault.ErrInvalidCurrency
		}
	}
	return code, nil
}

// IsNonFractional - true if the currency has no minor unit
func IsNonFractional(code string) bool {
	_, ok := nonFractional[strings.ToUpper(code)]
	return ok
}

// Places - number of decimal places for amounts in the currency
func Places(code string) int32 {
	if IsNonFractional(code) {
		return nonFractionalPlaces
	}
	return fractionalPlaces
}

// Round - round an amount to the precision of the currency
//
// always rounds to cents first, non-fractional currencies are then
// rounded again to whole units
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	amount = amount.Round(fractionalPlaces)
	if IsNonFractional(code) {
		amount = amount.Round(nonFractionalPlaces)
	}
	return amount
}

// Format - fixed point text of an amount rounded for the currency
func Format(amount decimal.Decimal, code string) string {
	return Round(amount, code).StringFixed(Places(code))
}
