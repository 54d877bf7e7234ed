// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gapi

import (
	"net/url"
	"strings"

	"go.chromium.org/luci/common/errors"
)

// URLParams is a simplified replica of url.Values accumulating the query
// parameters of one call. Keys are wire (camelCase) names.
type URLParams map[string][]string

// Set sets the key to a single value, replacing any existing values.
//
// An empty value is significant: the parameter is still serialized, as
// "key=". Field masks rely on this.
func (p URLParams) Set(key, value string) {
	p[key] = []string{value}
}

// Add appends a value for a repeated parameter.
func (p URLParams) Add(key, value string) {
	p[key] = append(p[key], value)
}

// Get returns the first value for the key, or "".
func (p URLParams) Get(key string) string {
	vs := p[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Encode renders the parameters in "a=1&b=2" form with keys sorted.
func (p URLParams) Encode() string {
	return url.Values(p).Encode()
}

func (p URLParams) clone() URLParams {
	out := make(URLParams, len(p))
	for k, vs := range p {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// ResolveRelative joins an API base path with a method path template,
// normalizing the slash between them.
func ResolveRelative(basePath, path string) string {
	return strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ExpandPath substitutes "{name}" and "{+name}" placeholders in a discovery
// path template with values from vars.
//
// Plain placeholders escape the value fully. The "{+name}" reserved form
// keeps "/" intact, escaping each path segment individually; it is used for
// resource names like "projects/p/locations/l".
func ExpandPath(template string, vars map[string]string) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		sb.WriteString(rest[:open])
		rest = rest[open+1:]
		close := strings.IndexByte(rest, '}')
		if close < 0 {
			return "", errors.Reason("unterminated placeholder in path template %q", template).Err()
		}
		name := rest[:close]
		rest = rest[close+1:]
		reserved := strings.HasPrefix(name, "+")
		if reserved {
			name = name[1:]
		}
		val, ok := vars[name]
		if !ok {
			return "", errors.Reason("no value for path parameter %q", name).Err()
		}
		sb.WriteString(escapePathValue(val, reserved))
	}
}

func escapePathValue(val string, keepSlashes bool) string {
	if !keepSlashes {
		return url.PathEscape(val)
	}
	segs := strings.Split(val, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
