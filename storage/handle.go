// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix   byte
	limit    []byte
	readOnly bool
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	if p.readOnly {
		return fault.ErrReadOnly
	}

	prefixedKey := p.prefixKey(key)
	err := poolData.database.Put(prefixedKey, value, nil)
	if nil != err {
		return err
	}
	poolData.cache.Set(dbPut, string(prefixedKey), value)
	return nil
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	if p.readOnly {
		return fault.ErrReadOnly
	}

	prefixedKey := p.prefixKey(key)
	err := poolData.database.Delete(prefixedKey, nil)
	if nil != err {
		return err
	}
	poolData.cache.Set(dbDelete, string(prefixedKey), nil)
	return nil
}

// Get - read a value for a given key
//
// a nil value means the key was not found
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	prefixedKey := p.prefixKey(key)
	if value, cached := poolData.cache.Get(string(prefixedKey)); cached {
		return value, nil
	}

	value, err := poolData.database.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		poolData.cache.Set(dbDelete, string(prefixedKey), nil)
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	poolData.cache.Set(dbPut, string(prefixedKey), value)
	return value, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	value, err := p.Get(key)
	if nil != err {
		return false, err
	}
	return nil != value, nil
}

// Elements - all items in the pool in key order
func (p *PoolHandle) Elements() ([]Element, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	iter := poolData.database.NewIterator(&maxRange, nil)

	elements := make([]Element, 0)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		elements = append(elements, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return nil, err
	}
	return elements, nil
}
