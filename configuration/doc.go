// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items, e.g.
//
//   local M = {}
//   M.gateway = {
//       company = "Example Hosting",
//       meta = {
//           api_key = os.getenv("BLOCKONOMICS_API_KEY"),
//       },
//   }
//   return M
package configuration
