// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/blockonomicsd/configuration"
	"github.com/bitmark-inc/blockonomicsd/fault"
)

// certificate lifetime
const certificateValidity = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if configuration.FileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if configuration.FileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "blockonomicsd self signed cert for: " + name
	validUntil := time.Now().Add(certificateValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}
