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

import (
	"strconv"
	"strings"
)

const (
	// noPort is the port of a URI that does not specify one.
	noPort = -1
	// maxPort is the largest TCP port.
	maxPort = 65535
)

// startsWithAuthority reports whether the remaining input introduces an
// authority: exactly "//", never "////".
func (p *parser) startsWithAuthority() bool {
	rest := p.raw[p.current:p.end]
	return strings.HasPrefix(rest, "//") && !strings.HasPrefix(rest, "////")
}

// computeAuthority consumes the authority, which runs up to the next '/' or
// '?' or the end of the remaining input.
func (p *parser) computeAuthority() {
	rest := p.raw[p.current:p.end]
	end := strings.IndexAny(rest, "/?")
	if end < 0 {
		end = len(rest)
	}
	p.authority = rest[:end]
	p.hasAuthority = true
	p.host = p.authority
	p.hasHost = true
	p.current += end
}

// computeUserInfo splits the authority on its first '@'.
func (p *parser) computeUserInfo() {
	at := strings.IndexByte(p.authority, '@')
	if at < 0 {
		p.userInfo, p.hasUserInfo = "", false
		return
	}
	p.userInfo, p.hasUserInfo = p.authority[:at], true
	p.host = p.authority[at+1:]
}

// computeIPv6 handles an RFC 2732 literal such as "[::1]:8080". The brackets
// stay part of the host.
func (p *parser) computeIPv6() error {
	afterBracket := strings.IndexByte(p.host, ']') + 1
	if afterBracket <= 1 {
		return invalidAuthority(p.authority)
	}
	p.port = noPort
	if len(p.host) > afterBracket {
		if p.host[afterBracket] != ':' {
			return invalidAuthority(p.authority)
		}
		if err := p.computePort(p.host[afterBracket+1:]); err != nil {
			return err
		}
	}
	p.host = p.host[:afterBracket]
	return nil
}

// computeRegularHostPort splits a host on its last ':' into host and port.
func (p *parser) computeRegularHostPort() error {
	p.port = noPort
	colon := strings.LastIndexByte(p.host, ':')
	if colon < 0 {
		return nil
	}
	if err := p.computePort(p.host[colon+1:]); err != nil {
		return err
	}
	p.host = p.host[:colon]
	return nil
}

// computePort parses the text after the host's colon. An empty text keeps
// the port unspecified; "-1" is accepted and means the same.
func (p *parser) computePort(s string) error {
	if s == "" {
		return nil
	}
	port, err := strconv.Atoi(s)
	if err != nil || port < noPort || port > maxPort {
		return invalidPort(s)
	}
	p.port = port
	return nil
}

// parseAuthority runs when the remaining input starts with "//". An explicit
// non-empty authority always replaces the path inherited from a context.
func (p *parser) parseAuthority() error {
	if !p.startsWithAuthority() {
		return nil
	}
	p.current += authorityPrefixLength
	p.computeAuthority()
	p.computeUserInfo()

	var err error
	if strings.HasPrefix(p.host, "[") {
		err = p.computeIPv6()
	} else {
		err = p.computeRegularHostPort()
	}
	if err != nil {
		return err
	}

	if p.authority != "" {
		p.path, p.hasPath = "", false
	}
	return nil
}
