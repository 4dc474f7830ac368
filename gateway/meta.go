// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/blockonomicsd/currency"
)

// meta field names as stored by the billing platform
const (
	apiKeyField        = "api_key"
	parentUIDPrefix    = "parent_uid_"
	defaultCurrency    = "USD"
	validationCurrency = "USD"
)

// Meta - gateway settings
type Meta struct {
	APIKey     string            `gluamapper:"api_key" json:"api_key"`
	ParentUIDs map[string]string `gluamapper:"parent_uid" json:"parent_uid"`
}

// MetaFromFields - build settings from flat platform fields
// e.g. {"api_key": "...", "parent_uid_USD": "..."}
func MetaFromFields(fields map[string]string) Meta {
	meta := Meta{
		ParentUIDs: make(map[string]string),
	}
	for k, v := range fields {
		switch {
		case apiKeyField == k:
			meta.APIKey = strings.TrimSpace(v)
		case strings.HasPrefix(k, parentUIDPrefix):
			code, err := currency.Normalise(strings.TrimPrefix(k, parentUIDPrefix))
			if nil != err {
				continue
			}
			meta.ParentUIDs[code] = strings.TrimSpace(v)
		}
	}
	return meta
}

// Fields - flatten settings for the billing platform
func (m Meta) Fields() map[string]string {
	fields := map[string]string{
		apiKeyField: m.APIKey,
	}
	for code, uid := range m.ParentUIDs {
		fields[parentUIDPrefix+strings.ToUpper(code)] = uid
	}
	return fields
}

// ParentUID - parent product configured for a currency
func (m Meta) ParentUID(code string) string {
	if nil == m.ParentUIDs {
		return ""
	}
	if uid, ok := m.ParentUIDs[code]; ok {
		return uid
	}
	return m.ParentUIDs[strings.ToUpper(code)]
}

// Currencies - sorted list of currencies having a parent product
func (m Meta) Currencies() []string {
	codes := make([]string, 0, len(m.ParentUIDs))
	for code, uid := range m.ParentUIDs {
		if "" != uid {
			codes = append(codes, strings.ToUpper(code))
		}
	}
	sort.Strings(codes)
	return codes
}
