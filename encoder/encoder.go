/*
Copyright 2025 Grizzly Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package encoder turns a parsed URI into the URI actually sent on the wire,
// adding the request query parameters on the way.
//
// Two modes exist. Fixing, the default, percent-encodes whatever cannot appear
// in a path or a query while keeping existing escapes. Raw trusts the caller
// and concatenates everything verbatim. The mode is chosen once per client
// configuration and applied to every request.
package encoder

import (
	"strings"

	"github.com/vinayvishal/grizzly-ahc-sub001/uri"
)

// Mode is an encoding policy for outbound URIs.
type Mode int

const (
	// Fixing percent-encodes the path, the query and the parameters.
	Fixing Mode = iota
	// Raw passes the path, the query and the parameters through unchanged.
	Raw
)

// String returns the name of the mode.
func (m Mode) String() string {
	if m == Raw {
		return "RAW"
	}
	return "FIXING"
}

// ForDisabledURLEncoding returns Raw when URL encoding is disabled in the
// client configuration and Fixing otherwise.
func ForDisabledURLEncoding(disable bool) Mode {
	if disable {
		return Raw
	}
	return Fixing
}

// Param is a query parameter. A nil Value is written as the name alone,
// without '='.
type Param struct {
	Name  string
	Value *string
}

// NewParam returns a parameter with a value.
func NewParam(name, value string) Param {
	return Param{Name: name, Value: &value}
}

// EncodePath returns the path as it is sent with this mode.
func (m Mode) EncodePath(path string) string {
	if m == Raw {
		return path
	}
	return EncodePath(path)
}

func (m Mode) appendQuery(b *strings.Builder, query string) {
	if m == Raw {
		b.WriteString(query)
		return
	}
	b.WriteString(EncodeQuery(query))
}

func (m Mode) appendParams(b *strings.Builder, params []Param) {
	element := EncodeQueryElement
	if m == Raw {
		element = func(s string) string { return s }
	}
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(element(p.Name))
		if p.Value != nil {
			b.WriteByte('=')
			b.WriteString(element(*p.Value))
		}
	}
}

// fullQuery joins the existing query and the parameters with '&'. It
// reports false when there is neither.
func (m Mode) fullQuery(query string, hasQuery bool, params []Param) (string, bool) {
	hasQuery = hasQuery && query != ""
	if !hasQuery && len(params) == 0 {
		return "", false
	}

	var b strings.Builder
	if hasQuery {
		m.appendQuery(&b, query)
		if len(params) > 0 {
			b.WriteByte('&')
		}
	}
	m.appendParams(&b, params)
	return b.String(), true
}

// Encode returns the URI to send: u with its path encoded and params added
// to its query. u itself is left untouched.
func (m Mode) Encode(u *uri.URI, params []Param) *uri.URI {
	query, hasQuery := u.Query()
	newQuery, hasNewQuery := m.fullQuery(query, hasQuery, params)
	return u.WithNewPath(m.EncodePath(u.Path())).WithNewQuery(newQuery, hasNewQuery)
}
