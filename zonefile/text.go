// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zonefile

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/blockstack/blockstore/fault"
)

// longest character string in a TXT record
const maxTXTSegment = 255

// Text - the zonefile in DNS master file form
func (zf *Zonefile) Text() (string, error) {
	ttl := zf.TTL
	if 0 == ttl {
		ttl = DefaultTTL
	}

	var b strings.Builder
	if "" != zf.Origin {
		fmt.Fprintf(&b, "$ORIGIN %s\n", dns.Fqdn(zf.Origin))
	}
	fmt.Fprintf(&b, "$TTL %d\n", ttl)

	for _, r := range zf.URI {
		rr := &dns.URI{
			Hdr: dns.RR_Header{
				Name:   zf.absolute(r.Name),
				Rrtype: dns.TypeURI,
				Class:  dns.ClassINET,
				Ttl:    ttl,
			},
			Priority: r.Priority,
			Weight:   r.Weight,
			Target:   r.URL(),
		}
		b.WriteString(rr.String())
		b.WriteByte('\n')
	}

	for _, r := range zf.TXT {
		rr := &dns.TXT{
			Hdr: dns.RR_Header{
				Name:   zf.absolute(r.Name),
				Rrtype: dns.TypeTXT,
				Class:  dns.ClassINET,
				Ttl:    ttl,
			},
			Txt: segments(r.Txt),
		}
		b.WriteString(rr.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// ParseText - read a zonefile from DNS master file form
//
// only URI and TXT records are kept, names are made relative to
// the origin
func ParseText(text string) (*Zonefile, error) {
	zf := &Zonefile{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch strings.ToUpper(fields[0]) {
		case "$ORIGIN":
			zf.Origin = strings.TrimSuffix(fields[1], ".")
		case "$TTL":
			ttl, err := strconv.ParseUint(fields[1], 10, 32)
			if nil != err {
				return nil, fault.ErrInvalidZonefile
			}
			zf.TTL = uint32(ttl)
		}
	}

	zp := dns.NewZoneParser(strings.NewReader(text), "", "")
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		switch r := rr.(type) {
		case *dns.URI:
			zf.URI = append(zf.URI, URIRecord{
				Name:     zf.relative(r.Hdr.Name),
				Priority: r.Priority,
				Weight:   r.Weight,
				Target:   r.Target,
			})
		case *dns.TXT:
			zf.TXT = append(zf.TXT, TXTRecord{
				Name: zf.relative(r.Hdr.Name),
				Txt:  strings.Join(r.Txt, ""),
			})
		}
	}
	if err := zp.Err(); nil != err {
		return nil, fault.ErrInvalidZonefile
	}
	return zf, nil
}

func (zf *Zonefile) absolute(name string) string {
	if "@" == name || "" == name {
		return dns.Fqdn(zf.Origin)
	}
	if "" == zf.Origin {
		return dns.Fqdn(name)
	}
	return dns.Fqdn(name + "." + zf.Origin)
}

func (zf *Zonefile) relative(name string) string {
	origin := dns.Fqdn(zf.Origin)
	if "" == zf.Origin {
		return strings.TrimSuffix(name, ".")
	}
	if name == origin {
		return "@"
	}
	return strings.TrimSuffix(name, "."+origin)
}

// split a string into TXT character strings
func segments(s string) []string {
	if "" == s {
		return []string{""}
	}
	parts := make([]string, 0, len(s)/maxTXTSegment+1)
	for len(s) > maxTXTSegment {
		parts = append(parts, s[:maxTXTSegment])
		s = s[maxTXTSegment:]
	}
	return append(parts, s)
}
