// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zonefile

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/blockstack/blockstore/fault"
)

// defaults for new records
const (
	DefaultTTL         = 3600
	URIPriority        = 10
	URIWeight          = 1
	DataPubkeyPrefix   = "pubkey:data:"
	DataPubkeyName     = "pubkey"
	immutableSeparator = "#"
)

// URIRecord - routing to data or a profile
type URIRecord struct {
	Name     string `json:"name"`
	Priority uint16 `json:"priority"`
	Weight   uint16 `json:"weight"`
	Target   string `json:"target"`
}

// TXTRecord - auxiliary data
type TXTRecord struct {
	Name string `json:"name"`
	Txt  string `json:"txt"`
}

// Zonefile - the JSON form of a zonefile
type Zonefile struct {
	Origin string      `json:"$origin,omitempty"`
	TTL    uint32      `json:"$ttl,omitempty"`
	URI    []URIRecord `json:"uri,omitempty"`
	TXT    []TXTRecord `json:"txt,omitempty"`
}

// IsUserZonefile - a user zonefile routes somewhere
func IsUserZonefile(zf *Zonefile) bool {
	return nil != zf && len(zf.URI) > 0
}

// URLToURIRecord - create a URI record for a url
//
// the record is named after the url's scheme unless a datum name is
// given
func URLToURIRecord(rawURL string, datumName string) (URIRecord, error) {
	u, err := url.Parse(rawURL)
	if nil != err || "" == u.Scheme {
		return URIRecord{}, fault.ErrInvalidURL
	}

	name := datumName
	if "" == name {
		name = fmt.Sprintf("_%s._tcp", u.Scheme)
	}
	r := URIRecord{
		Name:     name,
		Priority: URIPriority,
		Weight:   URIWeight,
		Target:   rawURL,
	}
	return r, nil
}

// URL - the target of a URI record without any surrounding quotes
func (r URIRecord) URL() string {
	return strings.Trim(r.Target, "\"")
}

// URLs - the url hints of a user zonefile
func URLs(zf *Zonefile) ([]string, error) {
	if !IsUserZonefile(zf) {
		return nil, fault.ErrNotUserZonefile
	}

	urls := make([]string, 0, len(zf.URI))
	for _, r := range zf.URI {
		if "" == r.Target {
			continue
		}
		urls = append(urls, r.URL())
	}
	return urls, nil
}

// AddURL - append a url hint
func AddURL(zf *Zonefile, rawURL string) error {
	if !IsUserZonefile(zf) {
		return fault.ErrNotUserZonefile
	}

	for _, r := range zf.URI {
		if rawURL == r.URL() {
			return fault.ErrDuplicateURL
		}
	}

	r, err := URLToURIRecord(rawURL, "")
	if nil != err {
		return err
	}
	zf.URI = append(zf.URI, r)
	return nil
}

// RemoveURL - remove every URI record with the url as its target
//
// returns whether anything was removed
func RemoveURL(zf *Zonefile, rawURL string) (bool, error) {
	if !IsUserZonefile(zf) {
		return false, fault.ErrNotUserZonefile
	}

	kept := make([]URIRecord, 0, len(zf.URI))
	for _, r := range zf.URI {
		if rawURL != r.URL() {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(zf.URI) {
		return false, nil
	}
	zf.URI = kept
	return true, nil
}

// DataPubkey - the data public key, empty if none is set
func DataPubkey(zf *Zonefile) (string, error) {
	if !IsUserZonefile(zf) {
		return "", fault.ErrNotUserZonefile
	}

	found := false
	pubkey := ""
	for _, r := range zf.TXT {
		if !strings.HasPrefix(r.Txt, DataPubkeyPrefix) {
			continue
		}
		if found {
			return "", fault.ErrMultipleDataPubkeys
		}
		found = true
		pubkey = strings.TrimPrefix(r.Txt, DataPubkeyPrefix)
	}
	return pubkey, nil
}

// SetDataPubkey - overwrite the data public key or add one
//
// any data signed with the previous key must be signed again
func SetDataPubkey(zf *Zonefile, pubkeyHex string) error {
	if !IsUserZonefile(zf) {
		return fault.ErrNotUserZonefile
	}

	txt := DataPubkeyPrefix + pubkeyHex
	for i, r := range zf.TXT {
		if strings.HasPrefix(r.Txt, DataPubkeyPrefix) {
			zf.TXT[i].Txt = txt
			return nil
		}
	}

	zf.TXT = append(zf.TXT, TXTRecord{
		Name: DataPubkeyName,
		Txt:  txt,
	})
	return nil
}
