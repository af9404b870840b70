// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/blockstack/blockstore/fault"
)

// Transaction - writes to several pools applied together
type Transaction struct {
	sync.Mutex
	batch     *leveldb.Batch
	committed bool
}

// NewTransaction - start collecting writes
func NewTransaction() *Transaction {
	return &Transaction{
		batch: new(leveldb.Batch),
	}
}

// Put - queue a key/value pair for a pool
func (t *Transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.batch.Put(p.prefixKey(key), value)
}

// Delete - queue removal of a key from a pool
func (t *Transaction) Delete(p *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()
	t.batch.Delete(p.prefixKey(key))
}

// Commit - write all queued changes atomically
func (t *Transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.committed {
		return fault.ErrTransactionCommitted
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.ErrNotInitialised
	}

	err := poolData.db.Write(t.batch, nil)
	if nil != err {
		return err
	}
	t.committed = true
	return nil
}
