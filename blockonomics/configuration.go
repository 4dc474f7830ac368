// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockonomics

import (
	"time"
)

// defaults
const (
	DefaultURL            = "https://www.blockonomics.co/api"
	DefaultConnectTimeout = 30 * time.Second
	DefaultRequestTimeout = 60 * time.Second
)

// Configuration - client settings
//
// timeouts are in seconds, zero selects the default
type Configuration struct {
	URL            string `gluamapper:"url" json:"url"`
	APIKey         string `gluamapper:"api_key" json:"-"`
	InsecureTLS    bool   `gluamapper:"insecure_tls" json:"insecure_tls"`
	ConnectTimeout int    `gluamapper:"connect_timeout" json:"connect_timeout"`
	RequestTimeout int    `gluamapper:"request_timeout" json:"request_timeout"`
}

// WithAPIKey - copy of the configuration using a different key
func (c Configuration) WithAPIKey(apiKey string) *Configuration {
	c.APIKey = apiKey
	return &c
}

func (c *Configuration) url() string {
	if "" == c.URL {
		return DefaultURL
	}
	return c.URL
}

func (c *Configuration) connectTimeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return time.Duration(c.ConnectTimeout) * time.Second
}

func (c *Configuration) requestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeout) * time.Second
}
