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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import "testing"

// remaining returns the part of the input the parser has not consumed yet.
func (p *parser) remaining() string {
	return p.raw[p.current:p.end]
}

func TestParserTrim(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Nothing to trim", "http://a/b", "http://a/b"},
		{"Spaces and controls", " \t\nhttp://a/b \r\n", "http://a/b"},
		{"URL marker", "url:http://a/b", "http://a/b"},
		{"URL marker in uppercase", "  URL:http://a/b", "http://a/b"},
		{"Marker after text is kept", "x url:http://a/b", "x url:http://a/b"},
		{"Blank", " \t ", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.raw)
			p.trimRight()
			p.trimLeft()
			p.current = p.start
			if got := p.remaining(); got != tt.want {
				t.Errorf("trim(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParserComputeInitialScheme(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantScheme string
		wantFound  bool
		wantRest   string
	}{
		{"HTTP", "http://a/b", "http", true, "//a/b"},
		{"Lower-cased", "HTTPS://a", "https", true, "//a"},
		{"Opaque", "mailto:joe@example.com", "mailto", true, "joe@example.com"},
		{"Slash first", "a/b:c", "", false, "a/b:c"},
		{"No colon", "a/b", "", false, "a/b"},
		{"Rejected plus", "coap+tcp://a", "", false, "coap+tcp://a"},
		{"Rejected hyphen", "view-source:http://a", "", false, "view-source:http://a"},
		{"Empty candidate", ":a", "", false, ":a"},
		{"Digit first", "1a:b", "", false, "1a:b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.raw)
			p.computeInitialScheme()
			if p.scheme != tt.wantScheme || p.hasScheme != tt.wantFound || p.remaining() != tt.wantRest {
				t.Errorf("computeInitialScheme(%q) = (%q, %v, rest %q), want (%q, %v, rest %q)",
					tt.raw, p.scheme, p.hasScheme, p.remaining(), tt.wantScheme, tt.wantFound, tt.wantRest)
			}
		})
	}
}

func TestParserOverrideWithContext(t *testing.T) {
	context := MustCreate("http://user@host:8080/a/b?q")

	tests := []struct {
		name         string
		raw          string
		context      *URI
		wantRelative bool
		wantScheme   string
		wantHost     string
	}{
		{"No context", "c", nil, false, "", ""},
		{"No scheme", "c", context, true, "http", "host"},
		{"Same scheme", "http:c", context, true, "http", "host"},
		{"Same scheme in uppercase", "HTTP:c", context, true, "http", "host"},
		{"Other scheme", "https://other/c", context, false, "https", ""},
		{"Opaque context keeps scheme", "mailto:bob", MustCreate("mailto:joe"), false, "mailto", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.raw)
			p.computeInitialScheme()
			got := p.overrideWithContext(tt.context)
			if got != tt.wantRelative || p.scheme != tt.wantScheme || p.host != tt.wantHost {
				t.Errorf("overrideWithContext(%q) = (%v, %q, %q), want (%v, %q, %q)",
					tt.raw, got, p.scheme, p.host, tt.wantRelative, tt.wantScheme, tt.wantHost)
			}
			if got && (p.port != 8080 || p.path != "/a/b" || p.userInfo != "user") {
				t.Errorf("overrideWithContext(%q) did not copy port, path and user info: %d %q %q",
					tt.raw, p.port, p.path, p.userInfo)
			}
		})
	}
}

func TestParserTrimFragmentAndSplitQuery(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantRest      string
		wantQuery     string
		wantHasQuery  bool
		wantQueryOnly bool
	}{
		{"Plain", "/a/b", "/a/b", "", false, false},
		{"Query", "/a?x=1", "/a", "x=1", true, false},
		{"Empty query", "/a?", "/a", "", true, false},
		{"Fragment", "/a#f", "/a", "", false, false},
		{"Query and fragment", "/a?x=1#f", "/a", "x=1", true, false},
		{"Question mark in fragment", "/a#f?x=1", "/a", "", false, false},
		{"Query only", "?x=1", "", "x=1", true, true},
		{"Fragment only", "#f", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.raw)
			p.trimFragment()
			queryOnly := p.splitQuery()
			if p.remaining() != tt.wantRest || p.query != tt.wantQuery || p.hasQuery != tt.wantHasQuery || queryOnly != tt.wantQueryOnly {
				t.Errorf("split(%q) = (rest %q, %q, %v, %v), want (rest %q, %q, %v, %v)",
					tt.raw, p.remaining(), p.query, p.hasQuery, queryOnly,
					tt.wantRest, tt.wantQuery, tt.wantHasQuery, tt.wantQueryOnly)
			}
		})
	}
}

func TestParserInheritContextQuery(t *testing.T) {
	context := MustCreate("http://host/a?x=1")

	p := newParser("#f")
	p.trimFragment()
	p.inheritContextQuery(context, true)
	if p.query != "x=1" || !p.hasQuery {
		t.Errorf("inheritContextQuery() = (%q, %v), want (%q, true)", p.query, p.hasQuery, "x=1")
	}

	p = newParser("b")
	p.inheritContextQuery(context, true)
	if p.hasQuery {
		t.Errorf("inheritContextQuery() with a path inherited query %q", p.query)
	}

	p = newParser("")
	p.inheritContextQuery(context, false)
	if p.hasQuery {
		t.Errorf("inheritContextQuery() of an absolute reference inherited query %q", p.query)
	}
}

func TestParserComputePath(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		inherited    string
		hasInherited bool
		hasAuthority bool
		queryOnly    bool
		want         string
	}{
		{"Absolute", "/x/y", "/a/b", true, false, false, "/x/y"},
		{"Absolute keeps dots", "/x/../y", "", false, false, false, "/x/../y"},
		{"Merged", "c/d", "/a/b", true, false, false, "/a/c/d"},
		{"Merged with dots", "../c", "/a/b/", true, false, false, "/a/c"},
		{"Rootless", "c", "", false, false, false, "c"},
		{"Rootless with authority", "c", "", false, true, false, "/c"},
		{"Query only", "", "/a/b", true, false, true, "/a/"},
		{"Nothing left", "", "/a/b", true, false, false, "/a/b"},
		{"Nothing at all", "", "", false, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.raw)
			p.path, p.hasPath = tt.inherited, tt.hasInherited
			p.hasAuthority = tt.hasAuthority
			p.computePath(tt.queryOnly)
			if p.path != tt.want || !p.hasPath {
				t.Errorf("computePath(%q) = (%q, %v), want (%q, true)", tt.raw, p.path, p.hasPath, tt.want)
			}
		})
	}
}
