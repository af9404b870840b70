// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutable

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/blockstack/blockstore/fault"
)

// Registry - mutable data entries of a data info
//
// the registry holds no state: every operation works on the data
// info passed in and callers serialise access to it
type Registry struct {
	log *logger.L
}

// NewRegistry - create a registry
func NewRegistry(log *logger.L) *Registry {
	return &Registry{
		log: log,
	}
}

// every key for the data id, and the one with the highest version
func (r *Registry) find(info *DataInfo, dataId string) ([]Key, Key, bool) {
	if nil == info {
		return nil, Key{}, false
	}

	keys := []Key(nil)
	latest := Key{}
	for k := range info.Data {
		if dataId != k.DataId {
			continue
		}
		if 0 == len(keys) || k.Version > latest.Version {
			latest = k
		}
		keys = append(keys, k)
	}

	if len(keys) > 1 {
		r.log.Warnf("data id: %q has %d entries, using version: %d", dataId, len(keys), latest.Version)
	}
	return keys, latest, len(keys) > 0
}

// Put - insert or replace the entry for a data id
//
// the version must be strictly greater than any existing version,
// otherwise ErrStaleVersion and the data info is unchanged
func (r *Registry) Put(info *DataInfo, dataId string, version uint64, links Links) error {
	if nil == info {
		return fault.ErrMissingDataInfo
	}
	if nil == info.Data {
		info.Data = make(map[Key]Links)
	}

	keys, existing, found := r.find(info, dataId)
	if found && existing.Version >= version {
		r.log.Debugf("will not put mutable data: %q  existing version %d >= %d", dataId, existing.Version, version)
		return fault.ErrStaleVersion
	}

	for _, k := range keys {
		delete(info.Data, k)
	}
	info.Data[Key{DataId: dataId, Version: version}] = links
	return nil
}

// Remove - delete the entry for a data id
//
// returns whether anything was removed
func (r *Registry) Remove(info *DataInfo, dataId string) bool {
	keys, _, found := r.find(info, dataId)
	for _, k := range keys {
		delete(info.Data, k)
	}
	return found
}

// Has - true if the data id has an entry
func (r *Registry) Has(info *DataInfo, dataId string) bool {
	_, _, found := r.find(info, dataId)
	return found
}

// Get - links of the data id's entry
func (r *Registry) Get(info *DataInfo, dataId string) (Links, bool) {
	links, _, found := r.GetEx(info, dataId)
	return links, found
}

// GetEx - links and key of the data id's entry
func (r *Registry) GetEx(info *DataInfo, dataId string) (Links, Key, bool) {
	_, k, found := r.find(info, dataId)
	if !found {
		return Links{}, Key{}, false
	}
	return info.Data[k], k, true
}

// Version - version of the data id's entry, zero if never written
func (r *Registry) Version(info *DataInfo, dataId string) uint64 {
	_, k, found := r.find(info, dataId)
	if !found {
		r.log.Debugf("no mutable data for: %q", dataId)
		return 0
	}
	return k.Version
}

// List - every entry key ordered by data id then version
func (r *Registry) List(info *DataInfo) []Key {
	if nil == info {
		return []Key{}
	}

	keys := make([]Key, 0, len(info.Data))
	for k := range info.Data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].DataId != keys[j].DataId {
			return keys[i].DataId < keys[j].DataId
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}
