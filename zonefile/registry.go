// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zonefile

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/hashing"
)

// MatchKind - how many hashes a data id resolved to
type MatchKind int

// possible matches
const (
	NoMatch MatchKind = iota
	SingleMatch
	MultipleMatch
)

// HashMatch - result of looking up the hash of a data id
//
// more than one hash for a data id is inconsistent but is reported
// rather than resolved
type HashMatch struct {
	Kind   MatchKind
	Hashes []string
}

// Hash - the hash of a single match
func (m HashMatch) Hash() (string, bool) {
	if SingleMatch != m.Kind {
		return "", false
	}
	return m.Hashes[0], true
}

// MarshalJSON - null, a string or a list of strings
func (m HashMatch) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case NoMatch:
		return []byte("null"), nil
	case SingleMatch:
		return json.Marshal(m.Hashes[0])
	default:
		return json.Marshal(m.Hashes)
	}
}

// Immutable - a data id and its content hash
type Immutable struct {
	DataId string `json:"data_id"`
	Hash   string `json:"hash"`
}

// Registry - immutable data records of a zonefile
//
// the registry holds no state: every operation works on the
// zonefile passed in and callers serialise access to it
type Registry struct {
	log   *logger.L
	valid hashing.Validator
}

// NewRegistry - create a registry, a nil validator means
// hashing.IsValidHash
func NewRegistry(log *logger.L, validator hashing.Validator) *Registry {
	if nil == validator {
		validator = hashing.IsValidHash
	}
	return &Registry{
		log:   log,
		valid: validator,
	}
}

// hash of a record, logging records that look immutable but are not
func (r *Registry) recordHash(rec TXTRecord) (string, bool) {
	if !strings.Contains(rec.Txt, immutableSeparator) {
		return "", false
	}
	hash, ok := hashFromTXT(rec.Txt, r.valid)
	if !ok {
		r.log.Errorf("invalid immutable data hash for: %q  txt: %q", rec.Name, rec.Txt)
		return "", false
	}
	return hash, true
}

// PutImmutable - add an immutable data record
//
// an existing record for the data id is authoritative: the same
// hash succeeds without change, any other hash is ErrHashMismatch
func (r *Registry) PutImmutable(zf *Zonefile, dataId string, hash string, urlHint string) error {
	if !IsUserZonefile(zf) {
		return fault.ErrNotUserZonefile
	}
	if !r.valid(hash) {
		return fault.ErrInvalidHashFormat
	}

	existing, err := r.GetImmutableHash(zf, dataId)
	if nil != err {
		return err
	}

	switch existing.Kind {
	case NoMatch:
	case SingleMatch:
		if hash == existing.Hashes[0] {
			return nil
		}
		return fault.ErrHashMismatch
	default:
		return fault.ErrHashMismatch
	}

	zf.TXT = append(zf.TXT, TXTRecord{
		Name: dataId,
		Txt:  MakeImmutableTXT(hash, urlHint),
	})
	return nil
}

// RemoveImmutable - remove the first record with the hash
func (r *Registry) RemoveImmutable(zf *Zonefile, hash string) (bool, error) {
	if !IsUserZonefile(zf) {
		return false, fault.ErrNotUserZonefile
	}
	if !r.valid(hash) {
		return false, fault.ErrInvalidHashFormat
	}

	index := -1
scan:
	for i, rec := range zf.TXT {
		h, ok := r.recordHash(rec)
		if ok && hash == h {
			index = i
			break scan
		}
	}
	if index < 0 {
		return false, nil
	}

	zf.TXT = append(zf.TXT[:index:index], zf.TXT[index+1:]...)
	return true, nil
}

// HasImmutable - true if any record has the hash
func (r *Registry) HasImmutable(zf *Zonefile, hash string) (bool, error) {
	if !IsUserZonefile(zf) {
		return false, fault.ErrNotUserZonefile
	}
	if !r.valid(hash) {
		return false, fault.ErrInvalidHashFormat
	}

	for _, rec := range zf.TXT {
		if h, ok := r.recordHash(rec); ok && hash == h {
			return true, nil
		}
	}
	return false, nil
}

// HasImmutableId - true if a valid record exists for the data id
func (r *Registry) HasImmutableId(zf *Zonefile, dataId string) (bool, error) {
	if !IsUserZonefile(zf) {
		return false, fault.ErrNotUserZonefile
	}

	for _, rec := range zf.TXT {
		if dataId != rec.Name {
			continue
		}
		if _, ok := r.recordHash(rec); ok {
			return true, nil
		}
	}
	return false, nil
}

// GetImmutableHash - every valid hash recorded for the data id
func (r *Registry) GetImmutableHash(zf *Zonefile, dataId string) (HashMatch, error) {
	if !IsUserZonefile(zf) {
		return HashMatch{}, fault.ErrNotUserZonefile
	}

	hashes := []string(nil)
	for _, rec := range zf.TXT {
		if dataId != rec.Name {
			continue
		}
		if h, ok := r.recordHash(rec); ok {
			hashes = append(hashes, h)
		}
	}

	switch len(hashes) {
	case 0:
		return HashMatch{Kind: NoMatch}, nil
	case 1:
		return HashMatch{Kind: SingleMatch, Hashes: hashes}, nil
	default:
		r.log.Warnf("data id: %q has %d hashes", dataId, len(hashes))
		return HashMatch{Kind: MultipleMatch, Hashes: hashes}, nil
	}
}

// GetImmutableURL - url hint of the first record with the hash
//
// false if no record has the hash or the record has no hint
func (r *Registry) GetImmutableURL(zf *Zonefile, hash string) (string, bool, error) {
	if !IsUserZonefile(zf) {
		return "", false, fault.ErrNotUserZonefile
	}

	for _, rec := range zf.TXT {
		h, ok := r.recordHash(rec)
		if !ok || hash != h {
			continue
		}
		u, ok := URLFromTXT(rec.Txt)
		return u, ok, nil
	}
	return "", false, nil
}

// ListImmutable - data ids and hashes of all valid records
func (r *Registry) ListImmutable(zf *Zonefile) ([]Immutable, error) {
	if !IsUserZonefile(zf) {
		return nil, fault.ErrNotUserZonefile
	}

	list := make([]Immutable, 0, len(zf.TXT))
	for _, rec := range zf.TXT {
		if h, ok := r.recordHash(rec); ok {
			list = append(list, Immutable{
				DataId: rec.Name,
				Hash:   h,
			})
		}
	}
	return list, nil
}
