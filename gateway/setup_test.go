// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/gateway/mocks"
)

const (
	dir      = "testing"
	category = "testing"
	testKey  = "test-api-key"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func testConfiguration() *gateway.Configuration {
	return &gateway.Configuration{
		Company:  "Example Hosting",
		Currency: "USD",
		Meta: gateway.Meta{
			APIKey: testKey,
			ParentUIDs: map[string]string{
				"USD": "parent-usd",
				"JPY": "parent-jpy",
			},
		},
	}
}

// gateway whose every processor is the returned mock
func newTestGateway(t *testing.T) (*gateway.Gateway, *mocks.MockProcessor, *gomock.Controller) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockProcessor(ctl)

	factory := func(apiKey string) (gateway.Processor, error) {
		return m, nil
	}

	g, err := gateway.New(testConfiguration(), factory, logger.New(category))
	if nil != err {
		t.Fatalf("create gateway: error: %s", err)
	}
	return g, m, ctl
}

func reply(body string) *blockonomics.Response {
	return blockonomics.NewResponse([]byte(body))
}
