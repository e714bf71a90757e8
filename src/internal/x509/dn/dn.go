// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"
)

const (
	// KeyOrganization is the short name of the organization attribute.
	KeyOrganization = "O"
	// KeyCommonName is the short name of the common name attribute.
	KeyCommonName = "CN"
)

// shortNames maps attribute type OIDs to the short names OpenSSL prints.
var shortNames = map[string]string{
	"2.5.4.3":                    KeyCommonName,
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "street",
	"2.5.4.10":                   KeyOrganization,
	"2.5.4.11":                   "OU",
	"2.5.4.17":                   "postalCode",
	"1.2.840.113549.1.9.1":       "emailAddress",
	"0.9.2342.19200300.100.1.25": "DC",
	"0.9.2342.19200300.100.1.1":  "UID",
}

// Component is one "key = value" element of a distinguished name.
type Component struct {
	Key   string
	Value string
	// Offset is the byte offset in the raw string where the value begins.
	Offset int
}

// Names holds the sub-fields used to match certificates by issuer or subject.
type Names struct {
	Org        string
	CommonName string
}

// Parse splits raw into its comma-separated components in order.
// Segments without a '=' are skipped.
func Parse(raw string) []Component {
	var (
		comps   []Component
		start   int
		inQuote bool
		escaped bool
	)

	for i := 0; i <= len(raw); i++ {
		if i < len(raw) {
			c := raw[i]
			switch {
			case escaped:
				escaped = false
				continue
			case c == '\\':
				escaped = true
				continue
			case c == '"':
				inQuote = !inQuote
				continue
			case c != ',' || inQuote:
				continue
			}
		}

		if comp, ok := parseComponent(raw, start, i); ok {
			comps = append(comps, comp)
		}
		start = i + 1
	}

	return comps
}

func parseComponent(raw string, start, end int) (Component, bool) {
	seg := raw[start:end]
	eq := strings.IndexByte(seg, '=')
	if eq < 0 {
		return Component{}, false
	}

	key := strings.TrimSpace(seg[:eq])
	if key == "" {
		return Component{}, false
	}

	rest := seg[eq+1:]
	lead := len(rest) - len(strings.TrimLeft(rest, " \t"))

	return Component{
		Key:    key,
		Value:  unquote(strings.TrimSpace(rest)),
		Offset: start + eq + 1 + lead,
	}, true
}

// unquote strips one pair of surrounding double quotes and resolves backslash escapes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Extract returns the organization and common name of raw.
//
// The organization is the value of the first O component. The common name runs
// from the first CN value to the end of raw, since CN is conventionally the last
// component; when it is the last component its value is unquoted. A missing key
// yields an empty string.
func Extract(raw string) Names {
	var (
		names           Names
		haveOrg, haveCN bool
	)

	comps := Parse(raw)
	for i, c := range comps {
		switch {
		case c.Key == KeyOrganization && !haveOrg:
			names.Org = c.Value
			haveOrg = true
		case c.Key == KeyCommonName && !haveCN:
			if i == len(comps)-1 {
				names.CommonName = c.Value
			} else {
				names.CommonName = strings.TrimSpace(raw[c.Offset:])
			}
			haveCN = true
		}
	}

	return names
}

// Format renders name in attribute order as "key = value" pairs joined by ", ".
func Format(name pkix.Name) string {
	attrs := name.Names
	if len(attrs) == 0 {
		for _, rdn := range name.ToRDNSequence() {
			attrs = append(attrs, rdn...)
		}
	}

	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, shortName(attr.Type)+" = "+quote(fmt.Sprint(attr.Value)))
	}

	return strings.Join(parts, ", ")
}

func shortName(oid asn1.ObjectIdentifier) string {
	if name, ok := shortNames[oid.String()]; ok {
		return name
	}
	return oid.String()
}

func quote(v string) string {
	if v == "" || (!strings.ContainsAny(v, ",+\"\\<>;=") && strings.TrimSpace(v) == v) {
		return v
	}

	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}
