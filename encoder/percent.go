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

package encoder

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const upperHex = "0123456789ABCDEF"

// charSet is a set of ASCII bytes that are written without encoding.
type charSet [utf8.RuneSelf]bool

func newCharSet(sets ...string) *charSet {
	var s charSet
	for _, chars := range sets {
		for i := 0; i < len(chars); i++ {
			s[chars[i]] = true
		}
	}
	return &s
}

func (s *charSet) contains(r rune) bool {
	return r >= 0 && r < utf8.RuneSelf && s[r]
}

const (
	alphaDigit  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	unreserved  = alphaDigit + "-._~"
	subDelims   = "!$&'()*+,;="
	pcharExtras = ":@"
)

var (
	// unreservedChars is the RFC 3986 unreserved set.
	unreservedChars = newCharSet(unreserved)
	// builtPathChars is what may stay untouched in a path already built by a
	// caller: RFC 3986 pchar, '%' so that existing escapes survive, and '/'.
	builtPathChars = newCharSet(unreserved, subDelims, pcharExtras, "%/")
	// builtQueryChars is builtPathChars plus '?'.
	builtQueryChars = newCharSet(unreserved, subDelims, pcharExtras, "%/?")
	// formSafeChars is the application/x-www-form-urlencoded safe set.
	formSafeChars = newCharSet(alphaDigit, "-._*")
)

// appendEncoded writes s to b, percent-encoding the UTF-8 bytes of every rune
// that is not in safe. Valid UTF-8 text is put in NFC first; bytes that do not
// form valid UTF-8 are encoded one by one as they are.
func appendEncoded(b *strings.Builder, s string, safe *charSet, spaceAsPlus bool) {
	if utf8.ValidString(s) {
		s = norm.NFC.String(s)
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case safe.contains(r):
			b.WriteByte(s[i])
		case r == ' ' && spaceAsPlus:
			b.WriteByte('+')
		default:
			for j := i; j < i+size; j++ {
				writeEscaped(b, s[j])
			}
		}
		i += size
	}
}

// writeEscaped writes c as "%XX" with upper-case hex digits.
func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0F])
}

// needsEncoding reports whether appendEncoded would change s.
func needsEncoding(s string, safe *charSet) bool {
	if !utf8.ValidString(s) {
		return true
	}
	if !norm.NFC.IsNormalString(s) {
		return true
	}
	for _, r := range s {
		if !safe.contains(r) {
			return true
		}
	}
	return false
}

func encodeWith(s string, safe *charSet, spaceAsPlus bool) string {
	if !needsEncoding(s, safe) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	appendEncoded(&b, s, safe, spaceAsPlus)
	return b.String()
}

// EncodePath fixes a path built by a caller: characters that cannot appear in
// a path are percent-encoded, existing escapes are kept.
func EncodePath(path string) string {
	return encodeWith(path, builtPathChars, false)
}

// EncodeQuery fixes a query built by a caller, keeping its '=' and '&'
// separators and existing escapes.
func EncodeQuery(query string) string {
	return encodeWith(query, builtQueryChars, false)
}

// EncodeQueryElement encodes a single query parameter name or value.
func EncodeQueryElement(s string) string {
	return encodeWith(s, formSafeChars, false)
}

// EncodeFormElement encodes a form field name or value; spaces become '+'.
func EncodeFormElement(s string) string {
	return encodeWith(s, formSafeChars, true)
}

// PercentEncodeQueryElement encodes everything but the RFC 3986 unreserved
// characters, as signature base strings require.
func PercentEncodeQueryElement(s string) string {
	return encodeWith(s, unreservedChars, false)
}
