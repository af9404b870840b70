// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type IdentifierError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type ProcessError GenericError
type RangeError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCostOutOfRange        = RangeError("cost out of range: expected unsigned 56 bit integer")
	ErrDatabaseVersion       = InvalidError("database version is not supported")
	ErrDecayOutOfRange       = RangeError("decay rate out of range: expected unsigned 32 bit integer")
	ErrDuplicateURL          = ExistsError("url already present")
	ErrFieldOverflow         = OverflowError("integer field overflow")
	ErrHashMismatch          = ExistsError("data id already has a different hash")
	ErrInsufficientInputs    = ProcessError("not enough inputs for transaction")
	ErrInvalidAddress        = InvalidError("invalid address")
	ErrInvalidB40            = InvalidError("string has non base-40 characters")
	ErrInvalidChain          = InvalidError("invalid chain")
	ErrInvalidConfiguration  = InvalidError("configuration must return a table")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidDataDirectory  = InvalidError("data directory is not a valid directory")
	ErrInvalidDecayRate      = RangeError("invalid price decay rate")
	ErrInvalidExpiry         = InvalidError("invalid cache expiry duration")
	ErrInvalidFees           = RangeError("fees must be greater than zero")
	ErrInvalidFieldWidth     = InvalidError("invalid integer field width")
	ErrInvalidFileName       = InvalidError("file name must not contain a path")
	ErrInvalidHashFormat     = InvalidError("invalid data hash")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidMagicBytes     = InvalidError("invalid magic bytes")
	ErrInvalidOpcode         = InvalidError("invalid opcode")
	ErrInvalidPoolPrefix     = InvalidError("invalid pool prefix")
	ErrInvalidProfileName    = IdentifierError("invalid profile name")
	ErrInvalidScript         = InvalidError("invalid script")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidURL            = InvalidError("invalid url")
	ErrInvalidZonefile       = RecordError("invalid zonefile text")
	ErrMalformedKey          = RecordError("malformed mutable data key")
	ErrMissingConfiguration  = NotFoundError("configuration file is required")
	ErrMissingDataInfo       = InvalidError("missing data info")
	ErrMultipleDataPubkeys   = RecordError("multiple data public keys")
	ErrNamespaceIdCharacters = IdentifierError("namespace id has non-base-38 characters")
	ErrNamespaceIdLength     = IdentifierError("namespace id length is invalid")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotUserZonefile       = InvalidError("not a user zonefile")
	ErrPayloadTooLarge       = LengthError("payload exceeds data carrier size")
	ErrProfileNotFound       = NotFoundError("profile not found")
	ErrStaleVersion          = ExistsError("existing mutable data version is not older")
	ErrTransactionCommitted  = ProcessError("transaction already committed")
	ErrTruncatedPayload      = LengthError("truncated payload")
	ErrURLNotFound           = NotFoundError("url not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e IdentifierError) Error() string { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OverflowError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RangeError) Error() string      { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrIdentifier(e error) bool { _, ok := e.(IdentifierError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool   { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool      { _, ok := e.(RangeError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
