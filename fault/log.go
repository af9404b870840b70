// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before an abort
var log *logger.L

// Initialise - setup the abort channel, requires logger to be running
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("ABORT")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the abort channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted message prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	location := "?"
	if _, file, line, ok := runtime.Caller(1); ok {
		location = fmt.Sprintf("%s:%d", file, line)
	}
	emit("(%s) "+format, append([]interface{}{location}, arguments...)...)
}

// PanicIfError - abort when a storage or similar unrecoverable
// operation failed
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	emit("%s", s)
	time.Sleep(100 * time.Millisecond) // allow log output to complete
	panic(s)
}

// write to the log channel or to stdout if logging was never started
func emit(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
