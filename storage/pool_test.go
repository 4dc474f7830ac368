// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

func TestPoolPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.Settings

	input := []stringElement{
		{"key-two", "data-two"},
		{"key-one", "data-one"},
		{"key-three", "data-three"},
	}
	for _, e := range input {
		err := p.Put([]byte(e.key), []byte(e.value))
		assert.Nil(t, err, "put: %s", e.key)
	}

	value, err := p.Get([]byte("key-one"))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("data-one"), value, "value")

	err = p.Put([]byte("key-one"), []byte("data-one(NEW)"))
	assert.Nil(t, err, "overwrite")

	value, err = p.Get([]byte("key-one"))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("data-one(NEW)"), value, "overwritten value")

	err = p.Delete([]byte("key-two"))
	assert.Nil(t, err, "delete")

	found, err := p.Has([]byte("key-two"))
	assert.Nil(t, err, "has")
	assert.False(t, found, "deleted key")

	value, err = p.Get([]byte("/nonexistent"))
	assert.Nil(t, err, "get missing")
	assert.Nil(t, value, "missing value")
}

func TestPoolElements(t *testing.T) {
	setup(t)
	defer teardown(t)

	for _, e := range []stringElement{
		{"key-c", "data-c"},
		{"key-a", "data-a"},
		{"key-b", "data-b"},
	} {
		err := storage.Pool.Settings.Put([]byte(e.key), []byte(e.value))
		assert.Nil(t, err, "put: %s", e.key)
	}

	// a different pool must not be visible
	err := storage.Pool.Transactions.Put([]byte("other"), []byte("other"))
	assert.Nil(t, err, "put other")

	elements, err := storage.Pool.Settings.Elements()
	assert.Nil(t, err, "elements")

	expected := []stringElement{
		{"key-a", "data-a"},
		{"key-b", "data-b"},
		{"key-c", "data-c"},
	}
	if len(expected) != len(elements) {
		t.Fatalf("element count: %d  expected: %d", len(elements), len(expected))
	}
	for i, e := range elements {
		if !bytes.Equal([]byte(expected[i].key), e.Key) {
			t.Errorf("%d: key: %q  expected: %q", i, e.Key, expected[i].key)
		}
		if !bytes.Equal([]byte(expected[i].value), e.Value) {
			t.Errorf("%d: value: %q  expected: %q", i, e.Value, expected[i].value)
		}
	}
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)

	err := storage.Pool.Settings.Put([]byte("persist"), []byte("value"))
	assert.Nil(t, err, "put")
	storage.Finalise()

	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only open")
	defer teardown(t)

	value, err := storage.Pool.Settings.Get([]byte("persist"))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("value"), value, "persisted value")

	err = storage.Pool.Settings.Put([]byte("persist"), []byte("changed"))
	assert.Equal(t, fault.ErrReadOnly, err, "read only put")
}

func TestAccessAfterFinalise(t *testing.T) {
	setup(t)
	teardown(t)

	_, err := storage.Pool.Settings.Get([]byte("key"))
	assert.Equal(t, fault.ErrNotInitialised, err, "get after finalise")
}
