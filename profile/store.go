// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profile

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/blockstack/blockstore/b40"
	"github.com/blockstack/blockstore/cache"
	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/mutable"
	"github.com/blockstack/blockstore/storage"
	"github.com/blockstack/blockstore/zonefile"
)

// names fetched from the database in one cursor step
const namesPageSize = 64

// Store - read-through access to the profile pools
type Store struct {
	sync.Mutex
	log           *logger.L
	zonefiles     *storage.PoolHandle
	dataInfo      *storage.PoolHandle
	zonefileCache cache.Cache
	dataCache     cache.Cache
}

// New - create a store over a pair of pools and their caches
func New(log *logger.L, zonefiles *storage.PoolHandle, dataInfo *storage.PoolHandle, zonefileCache cache.Cache, dataCache cache.Cache) *Store {
	return &Store{
		log:           log,
		zonefiles:     zonefiles,
		dataInfo:      dataInfo,
		zonefileCache: zonefileCache,
		dataCache:     dataCache,
	}
}

func validName(name string) error {
	if "" == name || !b40.IsB40(name) {
		return fault.ErrInvalidProfileName
	}
	return nil
}

// fetch the stored bytes for a name, filling the cache on a miss
//
// the cache holds the encoded record so every load decodes a fresh
// value that the caller is free to modify
func (s *Store) fetch(p *storage.PoolHandle, c cache.Cache, name string) []byte {
	if v, ok := c.Get(name); ok {
		s.log.Debugf("cache hit: %q", name)
		return v.([]byte)
	}
	data := p.Get([]byte(name))
	if nil != data {
		c.Put(name, data)
	}
	return data
}

// LoadZonefile - the zonefile stored for a name
func (s *Store) LoadZonefile(name string) (*zonefile.Zonefile, error) {
	if err := validName(name); nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	data := s.fetch(s.zonefiles, s.zonefileCache, name)
	if nil == data {
		return nil, fault.ErrProfileNotFound
	}

	zf := &zonefile.Zonefile{}
	err := json.Unmarshal(data, zf)
	if nil != err {
		s.log.Errorf("stored zonefile: %q  error: %s", name, err)
		return nil, err
	}
	return zf, nil
}

// StoreZonefile - write the zonefile for a name
func (s *Store) StoreZonefile(name string, zf *zonefile.Zonefile) error {
	if err := validName(name); nil != err {
		return err
	}
	if nil == zf {
		return fault.ErrInvalidZonefile
	}

	data, err := json.Marshal(zf)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.zonefiles.Put([]byte(name), data)
	s.zonefileCache.Delete(name)
	return nil
}

// DeleteZonefile - remove the zonefile for a name
func (s *Store) DeleteZonefile(name string) error {
	if err := validName(name); nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	if !s.zonefiles.Has([]byte(name)) {
		return fault.ErrProfileNotFound
	}
	s.zonefiles.Delete([]byte(name))
	s.zonefileCache.Delete(name)
	return nil
}

// LoadDataInfo - the mutable data info for a name
//
// a name that never stored any mutable data has an empty data info
func (s *Store) LoadDataInfo(name string) (*mutable.DataInfo, error) {
	if err := validName(name); nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	data := s.fetch(s.dataInfo, s.dataCache, name)
	if nil == data {
		return mutable.NewDataInfo(), nil
	}

	info := mutable.NewDataInfo()
	err := json.Unmarshal(data, info)
	if nil != err {
		s.log.Errorf("stored data info: %q  error: %s", name, err)
		return nil, err
	}
	return info, nil
}

// StoreDataInfo - write the mutable data info for a name
func (s *Store) StoreDataInfo(name string, info *mutable.DataInfo) error {
	if err := validName(name); nil != err {
		return err
	}
	if nil == info {
		return fault.ErrMissingDataInfo
	}

	data, err := json.Marshal(info)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.dataInfo.Put([]byte(name), data)
	s.dataCache.Delete(name)
	return nil
}

// DeleteDataInfo - remove the mutable data info for a name
func (s *Store) DeleteDataInfo(name string) error {
	if err := validName(name); nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.dataInfo.Delete([]byte(name))
	s.dataCache.Delete(name)
	return nil
}

// Delete - remove both records of a name in one write
func (s *Store) Delete(name string) error {
	if err := validName(name); nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	key := []byte(name)
	tx := storage.NewTransaction()
	tx.Delete(s.zonefiles, key)
	tx.Delete(s.dataInfo, key)
	err := tx.Commit()
	if nil != err {
		fault.Criticalf("delete profile: %q  error: %s", name, err)
		return err
	}

	s.zonefileCache.Delete(name)
	s.dataCache.Delete(name)
	return nil
}

// Names - names with a stored zonefile in key order
//
// listing begins at the first name not before start and returns at
// most count names, a count of zero lists to the end
func (s *Store) Names(start string, count int) ([]string, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}

	s.Lock()
	defer s.Unlock()

	cursor := s.zonefiles.NewFetchCursor()
	if "" != start {
		cursor.Seek([]byte(start))
	}

	names := make([]string, 0, namesPageSize)
	for {
		n := namesPageSize
		if count > 0 && count-len(names) < n {
			n = count - len(names)
		}
		if 0 == n {
			break
		}

		elements, err := cursor.Fetch(n)
		if nil != err {
			return nil, err
		}
		for _, e := range elements {
			names = append(names, string(e.Key))
		}
		if len(elements) < n {
			break
		}
	}
	return names, nil
}
