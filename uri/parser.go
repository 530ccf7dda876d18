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

package uri

import "strings"

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
	// urlPrefix is an optional, case-insensitive marker in front of a URI.
	urlPrefix = "url:"
)

// parser holds the state of a single resolution. It is created by Resolve,
// used once and dropped; it is never shared between calls.
//
// raw[current:end] is the part of the input still to be consumed. The steps
// below move current forward and end backward, and their order matters.
type parser struct {
	raw     string
	start   int
	end     int
	current int

	scheme       string
	hasScheme    bool
	userInfo     string
	hasUserInfo  bool
	host         string
	hasHost      bool
	port         int
	path         string
	hasPath      bool
	query        string
	hasQuery     bool
	authority    string
	hasAuthority bool
}

func newParser(raw string) *parser {
	return &parser{raw: raw, end: len(raw), port: noPort}
}

// run executes every step of the resolution in order.
func (p *parser) run(context *URI) error {
	p.trimRight()
	p.trimLeft()
	p.current = p.start

	if !p.isFragmentOnly() {
		p.computeInitialScheme()
	}
	isRelative := p.overrideWithContext(context)
	p.trimFragment()
	p.inheritContextQuery(context, isRelative)
	queryOnly := p.splitQuery()
	if err := p.parseAuthority(); err != nil {
		return err
	}
	p.computePath(queryOnly)
	return nil
}

// trimRight drops trailing control characters and spaces.
func (p *parser) trimRight() {
	for p.end > 0 && isControlOrSpace(p.raw[p.end-1]) {
		p.end--
	}
}

// trimLeft skips leading control characters and spaces, then a "url:"
// marker if one follows.
func (p *parser) trimLeft() {
	for p.start < p.end && isControlOrSpace(p.raw[p.start]) {
		p.start++
	}
	if hasPrefixFold(p.raw[p.start:], urlPrefix) {
		p.start += len(urlPrefix)
	}
}

// isFragmentOnly reports whether the reference is a bare "#fragment", which
// never carries a scheme.
func (p *parser) isFragmentOnly() bool {
	return p.start < len(p.raw) && p.raw[p.start] == '#'
}

// computeInitialScheme looks for a scheme before the first ':' that is not
// preceded by a '/'. A rejected candidate is simply not a scheme.
func (p *parser) computeInitialScheme() {
	if p.current > p.end {
		return
	}
	rest := p.raw[p.current:p.end]
	i := strings.IndexAny(rest, ":/")
	if i < 0 || rest[i] == '/' {
		return
	}
	if candidate := rest[:i]; isValidScheme(candidate) {
		p.scheme, p.hasScheme = strings.ToLower(candidate), true
		p.current += i + 1
	}
}

// overrideWithContext copies the context components when the reference is
// relative to it: either it has no scheme or it has the context's scheme.
// A context host counts as an authority for rooting the path later on.
// It reports whether the reference was treated as relative.
func (p *parser) overrideWithContext(context *URI) bool {
	if context == nil {
		return false
	}
	if p.hasScheme && !strings.EqualFold(p.scheme, context.scheme) {
		return false
	}

	// RFC 2396 5.2.3: "http:path" against a hierarchical context is relative.
	if strings.HasPrefix(context.path, "/") {
		p.scheme, p.hasScheme = "", false
	}
	if p.hasScheme {
		return false
	}

	p.scheme, p.hasScheme = context.scheme, context.hasScheme
	p.userInfo, p.hasUserInfo = context.userInfo, context.hasUserInfo
	p.host, p.hasHost = context.host, context.hasHost
	p.port = context.port
	p.path, p.hasPath = context.path, true
	p.hasAuthority = context.hasHost
	return true
}

// trimFragment excludes the fragment from the remaining input. Its value
// is not kept.
func (p *parser) trimFragment() {
	if p.current > p.end {
		return
	}
	if i := strings.IndexByte(p.raw[p.current:p.end], '#'); i >= 0 {
		p.end = p.current + i
	}
}

// inheritContextQuery keeps the context query for an empty relative
// reference (RFC 2396 5.2.2).
func (p *parser) inheritContextQuery(context *URI, isRelative bool) {
	if isRelative && p.current == p.end {
		p.query, p.hasQuery = context.query, context.hasQuery
	}
}

// splitQuery moves the end of the remaining input to the first '?' and
// records what follows as the query. It reports whether the reference is
// made of a query only.
func (p *parser) splitQuery() bool {
	if p.current >= p.end {
		return false
	}
	i := strings.IndexByte(p.raw[p.current:p.end], '?')
	if i < 0 {
		return false
	}
	ask := p.current + i
	p.query, p.hasQuery = p.raw[ask+1:p.end], true
	p.end = ask
	return ask == p.current
}

// computePath settles the path from whatever input is left.
func (p *parser) computePath(queryOnly bool) {
	switch {
	case p.current < p.end:
		p.computeRegularPath()
	case queryOnly && p.hasPath:
		p.path = queryOnlyPath(p.path)
	case !p.hasPath:
		p.path, p.hasPath = "", true
	}
}

// computeRegularPath handles the ways a remaining path is applied: absolute,
// merged onto an inherited path, or taken as is. Only a merged path has its
// dot segments removed.
func (p *parser) computeRegularPath() {
	rest := p.raw[p.current:p.end]
	merged := false
	switch {
	case rest[0] == '/':
		p.path = rest
	case p.hasPath && p.path != "":
		p.path = mergePath(p.path, rest, p.hasAuthority)
		merged = true
	case p.hasAuthority:
		p.path = "/" + rest
	default:
		p.path = rest
	}
	p.hasPath = true
	p.current = p.end

	if merged {
		p.path = removeDotSegments(p.path)
	}
}

// build freezes the parsed components into a URI.
func (p *parser) build() *URI {
	return &URI{
		scheme:      p.scheme,
		hasScheme:   p.hasScheme,
		userInfo:    p.userInfo,
		hasUserInfo: p.hasUserInfo,
		host:        p.host,
		hasHost:     p.hasHost,
		port:        p.port,
		path:        p.path,
		query:       p.query,
		hasQuery:    p.hasQuery,
	}
}
