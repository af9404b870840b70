// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"reflect"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/blockstack/blockstore/fault"
)

// interval between removals of expired items
const cleanupInterval = 5 * time.Minute

// Cache - the operations a read-through consumer needs
type Cache interface {
	Get(key string) (interface{}, bool)
	Put(key string, value interface{})
	Delete(key string)
}

type poolData struct {
	items        *gocache.Cache
	expiresAfter time.Duration
}

type pools struct {
	Zonefiles *poolData `exp:"1h"`
	DataInfo  *poolData `exp:"1h"`
}

type globalDataType struct {
	sync.Mutex
	initialised bool
}

// Pool is the interface to perform CRUD operations on objects stored in memory
var Pool pools
var globalData globalDataType

// Initialise must be called before any operations on Pool
//
// a non-zero expiry replaces the expiry tag of every pool
func Initialise(expiry time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i++ {
		exp := time.Duration(gocache.NoExpiration)

		fieldInfo := poolType.Field(i)
		expTag := fieldInfo.Tag.Get("exp")
		if len(expTag) > 0 {
			d, err := time.ParseDuration(expTag)
			if err != nil {
				return fault.ErrInvalidExpiry
			}
			exp = d
		}
		if expiry > 0 {
			exp = expiry
		}

		p := &poolData{
			items:        gocache.New(exp, cleanupInterval),
			expiresAfter: exp,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	globalData.initialised = true
	return nil
}

// Finalise discards all pools
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	poolValue := reflect.ValueOf(&Pool).Elem()
	for i := 0; i < poolValue.NumField(); i++ {
		p := poolValue.Field(i).Interface().(*poolData)
		p.items.Flush()
	}

	Pool = pools{}
	globalData.initialised = false
	return nil
}

// Put - store a value, replacing any previous value
func (p *poolData) Put(key string, value interface{}) {
	p.items.Set(key, value, gocache.DefaultExpiration)
}

// Get - value for a key if present and not expired
func (p *poolData) Get(key string) (interface{}, bool) {
	return p.items.Get(key)
}

// Delete - remove a key
func (p *poolData) Delete(key string) {
	p.items.Delete(key)
}

// Items - copy of every unexpired value
func (p *poolData) Items() map[string]interface{} {
	all := p.items.Items()
	m := make(map[string]interface{}, len(all))
	for k, v := range all {
		m[k] = v.Object
	}
	return m
}

// Size - count of unexpired values
func (p *poolData) Size() int {
	return len(p.items.Items())
}
