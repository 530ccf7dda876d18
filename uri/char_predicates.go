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
	"strings"
	"unicode"
)

// isControlOrSpace reports whether a byte is trimmed from either end of a
// raw URI: every code point up to and including the space character.
func isControlOrSpace(b byte) bool {
	return b <= ' '
}

// isValidSchemeTail checks one rune after the first rune of a scheme. Only
// letters and digits are accepted; '.', '+' and '-' are rejected even though
// RFC 3986 allows them.
func isValidSchemeTail(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && r != '.' && r != '+' && r != '-'
}

// isValidScheme checks a scheme candidate found before the first ':'.
func isValidScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !isValidSchemeTail(r) {
			return false
		}
	}
	return true
}

// isSecureScheme reports whether the scheme runs over TLS.
func isSecureScheme(scheme string) bool {
	return scheme == "https" || scheme == "wss"
}

// isWebSocketScheme reports whether the scheme is one of the WebSocket ones.
func isWebSocketScheme(scheme string) bool {
	return scheme == "ws" || scheme == "wss"
}

// hasPrefixFold is strings.HasPrefix without regard to ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
