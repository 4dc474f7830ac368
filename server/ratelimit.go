// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

// longest a request will be held before it is rejected
const maximumDelay = 2 * time.Second

// limiting for a single request
func limit(ctx context.Context, limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}

	delay := r.Delay()
	if 0 == delay {
		return nil
	}
	if delay > maximumDelay {
		r.Cancel()
		return fault.ErrRateLimiting
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return fault.ErrRateLimiting
	}
}
