// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

//go:generate mockgen -destination=mocks/processor.go -package=mocks github.com/bitmark-inc/blockonomicsd/gateway Processor

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
)

// Processor - processor operations used by the gateway
type Processor interface {
	Price(ctx context.Context, currency string) *blockonomics.Response
	CreateTemporaryProduct(ctx context.Context, parentUID string, product blockonomics.Product) *blockonomics.Response
	Order(ctx context.Context, uuid string) *blockonomics.Response
}

// ProcessorFactory - create a processor authenticated by an api key
type ProcessorFactory func(apiKey string) (Processor, error)

// NewProcessorFactory - factory for API clients that share one
// configuration and differ only in their key
func NewProcessorFactory(configuration blockonomics.Configuration, log *logger.L) ProcessorFactory {
	return func(apiKey string) (Processor, error) {
		return blockonomics.New(configuration.WithAPIKey(apiKey), log)
	}
}
