// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"

	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

var metaKey = []byte("meta")

// PutMeta - persist gateway settings
func PutMeta(meta gateway.Meta) error {
	if nil == Pool.Settings {
		return fault.ErrNotInitialised
	}
	value, err := json.Marshal(meta)
	if nil != err {
		return err
	}
	return Pool.Settings.Put(metaKey, value)
}

// GetMeta - fetch persisted gateway settings
//
// second result is false when nothing has been stored
func GetMeta() (gateway.Meta, bool, error) {
	meta := gateway.Meta{}
	if nil == Pool.Settings {
		return meta, false, fault.ErrNotInitialised
	}

	value, err := Pool.Settings.Get(metaKey)
	if nil != err || nil == value {
		return meta, false, err
	}

	err = json.Unmarshal(value, &meta)
	if nil != err {
		return meta, false, err
	}
	return meta, true, nil
}
