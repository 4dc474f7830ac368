// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - non-merchant Bitcoin payment gateway
//
// the buyer is sent to a temporary product created under a per
// currency parent product; the processor later calls back with the
// order id and the order is fetched to decide the payment state
package gateway
