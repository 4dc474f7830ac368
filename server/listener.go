// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/fault"
)

const (
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
)

// Listener - serve a handler on each configured address
type Listener struct {
	log       *logger.L
	addresses []string
	tlsConfig *tls.Config
	handler   http.Handler
}

// NewListener - validate addresses and load the certificate if one is configured
//
// no certificate means plain HTTP
func NewListener(configuration *Configuration, handler http.Handler, log *logger.L) (*Listener, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == configuration || nil == handler || 0 == len(configuration.Listen) {
		return nil, fault.ErrMissingParameters
	}

	addresses := make([]string, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		listen = strings.TrimSpace(listen)
		if strings.HasPrefix(listen, "*:") {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + listen[1:]
		}
		if _, _, err := net.SplitHostPort(listen); nil != err {
			log.Errorf("invalid listen address: %q  error: %s", listen, err)
			return nil, err
		}
		addresses = append(addresses, listen)
	}

	l := &Listener{
		log:       log,
		addresses: addresses,
		handler:   handler,
	}

	if "" == configuration.Certificate && "" == configuration.PrivateKey {
		log.Warn("no certificate: serving plain HTTP")
		return l, nil
	}

	tlsConfig, fingerprint, err := loadCertificate(log, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)
	l.tlsConfig = tlsConfig

	return l, nil
}

// load a certificate and key pair from files
func loadCertificate(log *logger.L, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("certificate: %q  error: %s", certificateFileName, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("private key: %q  error: %s", keyFileName, err)
		return nil, fin, err
	}

	keyPair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		log.Errorf("failed to load keypair: %v", err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
		NextProtos: []string{"http/1.1"},
	}

	fin = CertificateFingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// CertificateFingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in blockonomicsd.crt | sha3sum -a 256
func CertificateFingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Run - background process serving until shutdown
func (l *Listener) Run(args interface{}, shutdown <-chan struct{}) {
	log := l.log

	servers := make([]*http.Server, 0, len(l.addresses))
	var wg sync.WaitGroup

	for _, listen := range l.addresses {
		ln, err := net.Listen("tcp", listen)
		if nil != err {
			log.Errorf("listen on: %q  error: %s", listen, err)
			continue
		}
		if nil != l.tlsConfig {
			ln = tls.NewListener(ln, l.tlsConfig)
		}

		s := &http.Server{
			Addr:           listen,
			Handler:        l.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		servers = append(servers, s)

		log.Infof("starting server on: %q  tls: %t", listen, nil != l.tlsConfig)

		wg.Add(1)
		go func(s *http.Server, ln net.Listener) {
			defer wg.Done()
			err := s.Serve(ln)
			if nil != err && http.ErrServerClosed != err {
				log.Errorf("server on: %q  error: %s", s.Addr, err)
			}
		}(s, ln)
	}

	<-shutdown

	log.Info("shutting down…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(ctx); nil != err {
			log.Errorf("shutdown server on: %q  error: %s", s.Addr, err)
		}
	}
	wg.Wait()

	log.Info("stopped")
	log.Flush()
}
