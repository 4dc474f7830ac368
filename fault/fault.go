// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCertificateFileExists  = ExistsError("certificate file already exists")
	ErrEmptyResponse          = ProcessError("empty response")
	ErrInvalidAmount          = InvalidError("invalid amount")
	ErrInvalidAPIKey          = InvalidError("invalid api key")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCurrency        = InvalidError("invalid currency")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyFileExists          = ExistsError("key file already exists")
	ErrMissingAddress         = InvalidError("missing address")
	ErrMissingAPIKey          = InvalidError("missing api key")
	ErrMissingClientID        = InvalidError("missing client id")
	ErrMissingOrderID         = InvalidError("missing order id")
	ErrMissingParameters      = InvalidError("missing parameters")
	ErrMissingParentUID       = InvalidError("missing parent uid for currency")
	ErrMissingTransactionID   = InvalidError("missing transaction id")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrOrderCreationFailed    = ProcessError("order creation failed")
	ErrOrderFetchFailed       = ProcessError("order fetch failed")
	ErrRateLimiting           = ProcessError("rate limiting")
	ErrReadOnly               = ProcessError("database is read only")
	ErrTransactionNotFound    = NotFoundError("transaction not found")
	ErrUnknownOrderStatus     = ProcessError("unknown order status")
	ErrUnsupported            = UnsupportedError("operation is not supported by this gateway")
	ErrWrongNumberOfArguments = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool      { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool     { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool    { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool     { var t ProcessError; return errors.As(e, &t) }
func IsErrUnsupported(e error) bool { var t UnsupportedError; return errors.As(e, &t) }
