// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/storage"
)

func TestMeta(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, found, err := storage.GetMeta()
	assert.Nil(t, err, "get empty")
	assert.False(t, found, "nothing stored")

	meta := gateway.Meta{
		APIKey: "secret",
		ParentUIDs: map[string]string{
			"USD": "parent-usd",
		},
	}
	err = storage.PutMeta(meta)
	assert.Nil(t, err, "put")

	actual, found, err := storage.GetMeta()
	assert.Nil(t, err, "get")
	assert.True(t, found, "stored")
	assert.Equal(t, meta, actual, "round trip")
}
