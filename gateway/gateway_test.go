// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
	"github.com/bitmark-inc/blockonomicsd/fault"
	"github.com/bitmark-inc/blockonomicsd/gateway"
)

func TestNew(t *testing.T) {
	log := logger.New(category)
	factory := func(apiKey string) (gateway.Processor, error) {
		return nil, nil
	}

	_, err := gateway.New(testConfiguration(), factory, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	_, err = gateway.New(nil, factory, log)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil configuration")

	c := testConfiguration()
	c.Currency = "dollars"
	_, err = gateway.New(c, factory, log)
	assert.Equal(t, fault.ErrInvalidCurrency, err, "bad currency")

	c.Currency = ""
	g, err := gateway.New(c, factory, log)
	assert.Nil(t, err, "default currency")
	assert.Equal(t, "USD", g.Currency(), "default currency")

	failing := func(apiKey string) (gateway.Processor, error) {
		return nil, fault.ErrMissingAPIKey
	}
	_, err = gateway.New(testConfiguration(), failing, log)
	assert.Equal(t, fault.ErrMissingAPIKey, err, "factory error")
}

func TestSetCurrency(t *testing.T) {
	g, _, ctl := newTestGateway(t)
	defer ctl.Finish()

	err := g.SetCurrency("jpy")
	assert.Nil(t, err, "set currency")
	assert.Equal(t, "JPY", g.Currency(), "normalised")

	err = g.SetCurrency("yen!")
	assert.Equal(t, fault.ErrInvalidCurrency, err, "invalid currency")
	assert.Equal(t, "JPY", g.Currency(), "unchanged")

	copied, err := g.WithCurrency("eur")
	assert.Nil(t, err, "with currency")
	assert.Equal(t, "EUR", copied.Currency(), "copy currency")
	assert.Equal(t, "JPY", g.Currency(), "source gateway unchanged")
}

func TestEncryptableFields(t *testing.T) {
	g, _, ctl := newTestGateway(t)
	defer ctl.Finish()

	fields := g.EncryptableFields()
	assert.Equal(t, []string{"api_key"}, fields, "fields")

	fields[0] = "changed"
	assert.Equal(t, []string{"api_key"}, g.EncryptableFields(), "copy returned")
}

func TestValidateAPIKey(t *testing.T) {
	g, m, ctl := newTestGateway(t)
	defer ctl.Finish()

	m.EXPECT().Price(gomock.Any(), "USD").Return(reply(`{"price":9500.12}`)).Times(1)
	assert.True(t, g.ValidateAPIKey(context.Background(), "good"), "good key")

	m.EXPECT().Price(gomock.Any(), "USD").Return(reply(`{"status":401,"message":"Unauthorized"}`)).Times(1)
	assert.False(t, g.ValidateAPIKey(context.Background(), "bad"), "rejected key")

	m.EXPECT().Price(gomock.Any(), "USD").Return(reply(``)).Times(1)
	assert.False(t, g.ValidateAPIKey(context.Background(), "empty"), "empty reply")
}

func TestValidateAPIKeyFactoryError(t *testing.T) {
	calls := 0
	factory := func(apiKey string) (gateway.Processor, error) {
		calls += 1
		if "" == apiKey {
			return nil, fault.ErrMissingAPIKey
		}
		return nil, nil
	}

	g, err := gateway.New(testConfiguration(), factory, logger.New(category))
	assert.Nil(t, err, "new")

	assert.False(t, g.ValidateAPIKey(context.Background(), ""), "empty key")
	assert.Equal(t, 2, calls, "factory calls")
}

// the real client against a fake processor
func TestValidateAPIKeyWithClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if "/api/price" != req.URL.Path || "USD" != req.URL.Query().Get("currency") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if "Bearer good-key" != req.Header.Get("Authorization") {
			_, _ = w.Write([]byte(`{"status":401,"message":"Unauthorized"}`))
			return
		}
		_, _ = w.Write([]byte(`{"price":9500.12}`))
	}))
	defer server.Close()

	log := logger.New(category)
	configuration := blockonomics.Configuration{
		URL: server.URL + "/api",
	}
	c := testConfiguration()
	c.Meta.APIKey = "good-key"

	g, err := gateway.New(c, gateway.NewProcessorFactory(configuration, log), log)
	assert.Nil(t, err, "new")

	ctx := context.Background()
	assert.True(t, g.ValidateAPIKey(ctx, "good-key"), "good key")
	assert.False(t, g.ValidateAPIKey(ctx, "bad-key"), "bad key")
	assert.False(t, g.ValidateAPIKey(ctx, ""), "empty key")
}

func TestEditSettings(t *testing.T) {
	g, m, ctl := newTestGateway(t)
	defer ctl.Finish()

	meta := gateway.Meta{
		APIKey: "candidate",
		ParentUIDs: map[string]string{
			"EUR": "parent-eur",
		},
	}

	m.EXPECT().Price(gomock.Any(), "USD").Return(reply(`{"price":1}`)).Times(1)
	actual, err := g.EditSettings(context.Background(), meta)
	assert.Nil(t, err, "valid key")
	assert.Equal(t, meta, actual, "meta unchanged")

	m.EXPECT().Price(gomock.Any(), "USD").Return(reply(`{"status":401}`)).Times(1)
	actual, err = g.EditSettings(context.Background(), meta)
	assert.Equal(t, fault.ErrInvalidAPIKey, err, "invalid key")
	assert.True(t, fault.IsErrInvalid(err), "classified")
	assert.True(t, errors.Is(err, fault.ErrInvalidAPIKey), "identity")
	assert.Equal(t, meta, actual, "meta returned")
}
