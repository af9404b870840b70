// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutable

import (
	"encoding/json"

	"github.com/blockstack/blockstore/zonefile"
)

// Links - where the data of one version can be fetched
type Links struct {
	URI []zonefile.URIRecord `json:"uri"`
}

// MakeLinks - URI records for a list of urls, named after the data id
func MakeLinks(dataId string, urls []string) (Links, error) {
	links := Links{
		URI: make([]zonefile.URIRecord, 0, len(urls)),
	}
	for _, u := range urls {
		r, err := zonefile.URLToURIRecord(u, dataId)
		if nil != err {
			return Links{}, err
		}
		links.URI = append(links.URI, r)
	}
	return links, nil
}

// URLs - targets of the URI records
func (links Links) URLs() []string {
	urls := make([]string, 0, len(links.URI))
	for _, r := range links.URI {
		urls = append(urls, r.URL())
	}
	return urls
}

// DataInfo - a user's mutable data section
//
// entries of the JSON data section whose keys are not packed keys are
// carried through unchanged in Other
type DataInfo struct {
	Data  map[Key]Links
	Other map[string]json.RawMessage
}

// NewDataInfo - empty data info
func NewDataInfo() *DataInfo {
	return &DataInfo{
		Data:  make(map[Key]Links),
		Other: make(map[string]json.RawMessage),
	}
}

type dataInfoJSON struct {
	Data map[string]json.RawMessage `json:"data"`
}

// MarshalJSON - convert keys to their packed form
func (info DataInfo) MarshalJSON() ([]byte, error) {
	data := make(map[string]json.RawMessage, len(info.Data)+len(info.Other))
	for k, raw := range info.Other {
		data[k] = raw
	}
	for k, links := range info.Data {
		b, err := json.Marshal(links)
		if nil != err {
			return nil, err
		}
		data[k.Pack()] = b
	}
	return json.Marshal(dataInfoJSON{Data: data})
}

// UnmarshalJSON - convert packed keys to Key values
func (info *DataInfo) UnmarshalJSON(s []byte) error {
	var d dataInfoJSON
	err := json.Unmarshal(s, &d)
	if nil != err {
		return err
	}

	info.Data = make(map[Key]Links)
	info.Other = make(map[string]json.RawMessage)

	for packed, raw := range d.Data {
		k, err := UnpackKey(packed)
		if nil != err {
			info.Other[packed] = raw
			continue
		}
		var links Links
		err = json.Unmarshal(raw, &links)
		if nil != err {
			info.Other[packed] = raw
			continue
		}
		info.Data[k] = links
	}
	return nil
}
