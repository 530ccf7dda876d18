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

// removeEmbeddedDot replaces every "/./" with "/".
func removeEmbeddedDot(path string) string {
	return strings.ReplaceAll(path, "/./", "/")
}

// removeEmbedded2Dots collapses "/segment/../" into "/". A "/../" that has
// nothing before it is kept literally, so a path can never climb above its
// root: "/../a" stays "/../a".
func removeEmbedded2Dots(path string) string {
	i := 0
	for {
		idx := strings.Index(path[i:], "/../")
		if idx < 0 {
			return path
		}
		i += idx

		if i == 0 {
			i += 3
			continue
		}

		j := strings.LastIndexByte(path[:i], '/')
		switch {
		case j == 0 && strings.HasPrefix(path, "/../"):
			return path
		case j >= 0:
			path = path[:j] + path[i+3:]
		default:
			// No slash before the first segment, as in "a/../b".
			path = path[i+4:]
		}
		i = 0
	}
}

// removeTrailing2Dots drops every trailing "/.." together with the segment it
// points back to.
func removeTrailing2Dots(path string) string {
	for strings.HasSuffix(path, "/..") {
		end := len(path) - len("/..")
		j := strings.LastIndexByte(path[:end], '/')
		if j < 0 {
			break
		}
		path = path[:j+1]
	}
	return path
}

// removeStartingDot drops a leading "./" unless nothing would remain.
func removeStartingDot(path string) string {
	if strings.HasPrefix(path, "./") && len(path) > 2 {
		return path[2:]
	}
	return path
}

// removeTrailingDot turns a trailing "/." into "/".
func removeTrailingDot(path string) string {
	if strings.HasSuffix(path, "/.") {
		return path[:len(path)-1]
	}
	return path
}

// removeDotSegments normalizes the dot segments of an assembled path. The
// passes run in a fixed order and each one only sees the output of the
// previous one.
func removeDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}
	path = removeEmbeddedDot(path)
	path = removeEmbedded2Dots(path)
	path = removeTrailing2Dots(path)
	path = removeStartingDot(path)
	return removeTrailingDot(path)
}

// mergePath appends a relative reference to the directory of a base path,
// that is the base up to and including its last '/'. When the base has no
// '/', the reference is used alone, rooted if an authority is present.
func mergePath(basePath, ref string, hasAuthority bool) string {
	lastSlash := strings.LastIndexByte(basePath, '/')
	if lastSlash < 0 {
		if hasAuthority {
			return "/" + ref
		}
		return ref
	}
	merged := basePath[:lastSlash+1] + ref
	if hasAuthority && !strings.HasPrefix(merged, "/") {
		merged = "/" + merged
	}
	return merged
}

// queryOnlyPath is the path kept by a reference made of a query alone: the
// directory of the base path.
func queryOnlyPath(basePath string) string {
	lastSlash := strings.LastIndexByte(basePath, '/')
	if lastSlash < 0 {
		return "/"
	}
	return basePath[:lastSlash+1]
}
