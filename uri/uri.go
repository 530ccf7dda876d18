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

// Package uri parses raw URI strings and resolves relative references against
// a base URI for an HTTP client.
//
// The result of every parse is a URI: an immutable value read by request
// construction, by authentication header builders and by redirect handling.
// Parsing is deliberately lenient. Only a malformed port, a malformed IPv6
// authority or an absent input is an error; anything else degrades into a
// URI with fewer components.
//
// Resolution follows RFC 2396 rather than RFC 3986:
//   - a scheme equal to the context scheme is dropped when the context path
//     is absolute, so "http:b" against "http://host/a" gives "http://host/b";
//   - a reference made of a query alone keeps the directory of the context
//     path only;
//   - dot segments are removed after a merge, but a "/../" that would climb
//     above the root is kept literally;
//   - the fragment is dropped.
package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	defaultHTTPPort  = 80
	defaultHTTPSPort = 443
)

// URI is a parsed URI. It is an immutable type; methods that change a
// component, like WithNewQuery, return a new URI. Optional components keep
// track of their presence, so an empty query ("a?") is not the same as no
// query ("a").
type URI struct {
	scheme      string
	hasScheme   bool
	userInfo    string
	hasUserInfo bool
	host        string
	hasHost     bool
	port        int
	path        string
	query       string
	hasQuery    bool
}

// Resolve parses raw as a reference relative to context, which may be nil.
// A nil raw string fails with ErrNullInput; a malformed port or IPv6 host
// fails with ErrInvalidURI. Both are wrapped in a *ParseError.
func Resolve(context *URI, raw *string) (*URI, error) {
	if raw == nil {
		return nil, newParseError(&kindError{kind: ErrNullInput, message: "No URI to parse"})
	}
	p := newParser(*raw)
	if err := p.run(context); err != nil {
		return nil, newParseError(err)
	}
	return p.build(), nil
}

// Create parses an absolute URI string.
func Create(raw string) (*URI, error) {
	return Resolve(nil, &raw)
}

// CreateWithContext parses raw and resolves it against context. It is the
// entry point used when following a redirect: the Location value is raw and
// the URI of the request that was redirected is the context.
func CreateWithContext(context *URI, raw string) (*URI, error) {
	return Resolve(context, &raw)
}

// MustCreate is like Create but panics if the string cannot be parsed.
func MustCreate(raw string) *URI {
	u, err := Create(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// Scheme returns the lower-cased scheme (e.g., "http") and a boolean
// indicating whether it was present.
func (u *URI) Scheme() (string, bool) {
	return u.scheme, u.hasScheme
}

// UserInfo returns the raw "user[:password]" component and a boolean
// indicating whether it was present.
func (u *URI) UserInfo() (string, bool) {
	return u.userInfo, u.hasUserInfo
}

// Host returns the host, including the brackets of an IPv6 literal, and a
// boolean indicating whether it was present.
func (u *URI) Host() (string, bool) {
	return u.host, u.hasHost
}

// Port returns the port, or -1 when none was specified. The port is stored
// as written: "http://host:80" has port 80 even though ToURL leaves it out.
// Use ExplicitPort for the port to connect to.
func (u *URI) Port() int {
	return u.port
}

// Path returns the path component. A path is always present, though it may
// be an empty string.
func (u *URI) Path() string {
	return u.path
}

// Query returns the query component (without the "?") and a boolean
// indicating whether it was present.
func (u *URI) Query() (string, bool) {
	return u.query, u.hasQuery
}

// NonEmptyPath returns the path, or "/" when it is empty.
func (u *URI) NonEmptyPath() string {
	if u.path == "" {
		return "/"
	}
	return u.path
}

// SchemeDefaultPort returns 443 for secure schemes and 80 for any other.
func (u *URI) SchemeDefaultPort() int {
	if isSecureScheme(u.scheme) {
		return defaultHTTPSPort
	}
	return defaultHTTPPort
}

// ExplicitPort returns the port to connect to: the port of the URI, or the
// scheme default when none was specified.
func (u *URI) ExplicitPort() int {
	if u.port == noPort {
		return u.SchemeDefaultPort()
	}
	return u.port
}

// IsSecured reports whether the scheme is https or wss.
func (u *URI) IsSecured() bool {
	return isSecureScheme(u.scheme)
}

// IsWebSocket reports whether the scheme is ws or wss.
func (u *URI) IsWebSocket() bool {
	return isWebSocketScheme(u.scheme)
}

// ValidateSupportedScheme returns ErrUnsupportedScheme unless the URI can be
// used to send a request.
func (u *URI) ValidateSupportedScheme() error {
	switch u.scheme {
	case "http", "https", "ws", "wss":
		return nil
	}
	return newParseError(&kindError{
		kind:    ErrUnsupportedScheme,
		message: "The URI scheme, of the URI " + u.String() + ", must be equal (ignoring case) to 'http', 'https', 'ws', or 'wss'",
	})
}

// isDefaultPort reports whether a port can be left out of the serialized form.
func (u *URI) isDefaultPort() bool {
	if u.port == noPort {
		return true
	}
	switch u.scheme {
	case "http", "ws":
		return u.port == defaultHTTPPort
	case "https", "wss":
		return u.port == defaultHTTPSPort
	}
	return false
}

// Authority rebuilds the "userInfo@host:port" component. The port is written
// whenever it was specified.
func (u *URI) Authority() string {
	var b strings.Builder
	if u.hasUserInfo {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if u.port != noPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	return b.String()
}

// writeSchemeAndHost writes "scheme://host[:port]", leaving out a default port.
func (u *URI) writeSchemeAndHost(b *strings.Builder, withUserInfo bool) {
	if u.hasScheme {
		b.WriteString(u.scheme)
		b.WriteString("://")
	}
	if withUserInfo && u.hasUserInfo {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if !u.isDefaultPort() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
}

// BaseURL returns "scheme://host[:port][path]", without user info or query.
func (u *URI) BaseURL() string {
	var b strings.Builder
	u.writeSchemeAndHost(&b, false)
	b.WriteString(u.path)
	return b.String()
}

// ToURL serializes the URI as "scheme://[userInfo@]host[:port]path[?query]".
// Default ports are left out.
func (u *URI) ToURL() string {
	var b strings.Builder
	b.Grow(len(u.scheme) + len(u.userInfo) + len(u.host) + len(u.path) + len(u.query) + 16)
	u.writeSchemeAndHost(&b, true)
	b.WriteString(u.path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	return b.String()
}

// ToRelativeURL returns the request target: the non-empty path followed by
// the query when there is one.
func (u *URI) ToRelativeURL() string {
	if !u.hasQuery {
		return u.NonEmptyPath()
	}
	return u.NonEmptyPath() + "?" + u.query
}

// HostHeader returns the value of the Host header for a request to the URI.
// The port is only written when it is not the scheme default.
func (u *URI) HostHeader() (string, error) {
	h := u.host
	if !u.isDefaultPort() {
		h += ":" + strconv.Itoa(u.port)
	}
	if h == "" || !httpguts.ValidHostHeader(h) {
		return "", newParseError(&kindError{kind: ErrInvalidURI, message: "Invalid Host header", details: h})
	}
	return h, nil
}

// String returns the serialized form of the URI, as ToURL does.
func (u *URI) String() string {
	return u.ToURL()
}

// WithNewQuery returns a copy of the URI with the query replaced. A false
// present drops the query.
func (u *URI) WithNewQuery(query string, present bool) *URI {
	c := *u
	if !present {
		query = ""
	}
	c.query, c.hasQuery = query, present
	return &c
}

// WithNewPath returns a copy of the URI with the path replaced.
func (u *URI) WithNewPath(path string) *URI {
	c := *u
	c.path = path
	return &c
}

// WithNewScheme returns a copy of the URI with the scheme replaced, for
// example to turn a ws URI into the http URI of its handshake.
func (u *URI) WithNewScheme(scheme string) *URI {
	c := *u
	c.scheme, c.hasScheme = strings.ToLower(scheme), scheme != ""
	return &c
}

// Equal reports whether both URIs have the same components.
func (u *URI) Equal(other *URI) bool {
	if u == nil || other == nil {
		return u == other
	}
	return *u == *other
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a
// JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToURL())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a URI, parsing it in the process.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Create(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
