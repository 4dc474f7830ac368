// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"
)

const requestIDHeader = "X-Request-Id"

// tag each request with an id and log its outcome
func requestLogger(log *logger.L) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set(requestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				if p := recover(); nil != p {
					log.Criticalf("request: %s  panic: %v", id, p)
					sendInternalServerError(ww)
				}
				log.Infof("request: %s  %s %s  from: %s  status: %d  bytes: %d  time: %s",
					id, r.Method, r.URL.Path, r.RemoteAddr, ww.Status(), ww.BytesWritten(), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
