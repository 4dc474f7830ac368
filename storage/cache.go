// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read cache in front of the database
//
// Get returns cached as true when the database need not be consulted,
// a nil value then means the key is known to be absent
type Cache interface {
	Get(string) (value []byte, cached bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data := obj.(cacheData)

	// deleted key is cached as absent
	if dbDelete == data.op {
		return nil, true
	}

	value := make([]byte, len(data.value))
	copy(value, data.value)
	return value, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: make([]byte, len(value)),
	}
	copy(cached.value, value)
	c.cache.Set(key, cached, defaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
