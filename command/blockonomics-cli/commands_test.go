// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAddresses(t *testing.T) {
	addresses, err := checkAddresses([]string{" 1abc ", "", "xpub6C"})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, []string{"1abc", "xpub6C"}, addresses, "wrong addresses")

	_, err = checkAddresses([]string{" ", ""})
	assert.Equal(t, ErrRequiredAddress, err, "wrong error")
}

func TestCheckRequired(t *testing.T) {
	s, err := checkRequired("  abc\n", ErrRequiredTxId)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "abc", s, "wrong value")

	_, err = checkRequired(" ", ErrRequiredTxId)
	assert.Equal(t, ErrRequiredTxId, err, "wrong error")
}

func TestCheckValue(t *testing.T) {
	value, err := checkValue("12.50")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "12.5", value.String(), "wrong value")

	_, err = checkValue("")
	assert.Equal(t, ErrRequiredValue, err, "wrong error")

	for _, s := range []string{"0", "-1", "abc"} {
		_, err = checkValue(s)
		assert.NotNil(t, err, "expected error for: %q", s)
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"match_account=xpub6C", "note=a=b"})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "xpub6C", params["match_account"], "wrong match_account")
	assert.Equal(t, "a=b", params["note"], "wrong note")

	params, err = parseParams(nil)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 0, len(params), "expected no params")

	for _, a := range []string{"novalue", "=x"} {
		_, err = parseParams([]string{a})
		assert.Equal(t, ErrInvalidParameter, err, "wrong error for: %q", a)
	}
}
