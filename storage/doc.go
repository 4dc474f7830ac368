// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk payment ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. order id     = processor order uuid as text
// 4. *others*     = JSON encoded values
//
// Transactions:
//
//   T ++ order id              - latest known state of a payment
//                                data: JSON transaction
//
// Settings:
//
//   S ++ name                  - gateway settings
//                                data: JSON settings
package storage
