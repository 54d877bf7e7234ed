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

// Package fieldmap translates flat command line "key=value" pairs into
// nested JSON request bodies and typed query parameters.
//
// Each remote operation has a static Table mapping kebab-case dotted field
// names (what the user types) to a JSON pointer and an expected value kind.
// Assemble applies a full set of pairs at once and reports every problem it
// finds, not just the first, so a user can fix an invocation in one pass.
package fieldmap

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"go.chromium.org/luci/common/errors"

	"github.com/luci/cloudcall/gapi"
)

// Kind is the expected type of a field's value.
type Kind int

// Value kinds, mirroring the JSON shapes the APIs accept.
const (
	String Kind = iota
	Bool
	Int64
	Float64
	Bytes
	Timestamp
	Duration
	StringList
	StringMap
	FieldMask
)

// String returns the name users see in error messages.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Bytes:
		return "bytes"
	case Timestamp:
		return "timestamp"
	case Duration:
		return "duration"
	case StringList:
		return "string list"
	case StringMap:
		return "string map"
	case FieldMask:
		return "field mask"
	default:
		return "unknown"
	}
}

// Field describes where a user-visible field lands in the JSON body and what
// values it accepts.
type Field struct {
	// Path is the JSON pointer as camelCase segments, outermost first.
	Path []string

	// Kind is the expected value shape.
	Kind Kind

	// Repeated marks list-valued fields that may be given multiple times
	// (comma-separated in a single pair).
	Repeated bool
}

// Table maps kebab-case dotted field names to their JSON destinations. One
// static Table exists per operation that takes a request body, and a flatter
// one per operation for its typed query parameters.
type Table map[string]Field

// Keys returns the known field names, sorted.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Suggest returns the nearest known key by Levenshtein distance, if any is
// within editing distance 3 of the given key.
func Suggest(key string, known []string) (string, bool) {
	best, bestDist := "", 4
	for _, k := range known {
		d := levenshtein.DistanceForStrings([]rune(key), []rune(k), levenshtein.DefaultOptions)
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

func unknownKey(what, key string, known []string) error {
	if hint, ok := Suggest(key, known); ok {
		return errors.Reason("unknown %s %q, did you mean %q?", what, key, hint).Err()
	}
	return errors.Reason("unknown %s %q, legal values are: %s", what, key, strings.Join(known, ", ")).Err()
}

// Assemble builds the nested JSON body described by pairs.
//
// Every pair is validated against the table: the key must name a known field
// (directly, or via a string-map field prefix such as "labels.env") and the
// value must parse as the field's kind. All violations are collected and
// returned together as an errors.MultiError; the body is only meaningful when
// the returned error is nil.
func Assemble(t Table, pairs map[string]string) (map[string]any, error) {
	body := map[string]any{}
	var merr errors.MultiError

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, subKey, err := t.lookup(key)
		if err != nil {
			merr = append(merr, err)
			continue
		}
		val, err := parseValue(f, key, pairs[key])
		if err != nil {
			merr = append(merr, err)
			continue
		}
		setPath(body, f.Path, subKey, val)
	}

	if len(merr) > 0 {
		return nil, merr
	}
	return body, nil
}

// lookup resolves key to its Field. For string-map fields the key may carry
// one extra trailing segment naming the map entry, returned as subKey.
func (t Table) lookup(key string) (Field, string, error) {
	if f, ok := t[key]; ok {
		if f.Kind == StringMap {
			return Field{}, "", errors.Reason("field %q needs a map entry, e.g. %q", key, key+".some-key=value").Err()
		}
		return f, "", nil
	}
	if i := strings.LastIndex(key, "."); i > 0 {
		if f, ok := t[key[:i]]; ok && f.Kind == StringMap {
			return f, key[i+1:], nil
		}
	}
	return Field{}, "", unknownKey("field", key, t.Keys())
}

// parseValue converts the textual value to the JSON value f calls for.
func parseValue(f Field, key, value string) (any, error) {
	one := func(v string) (any, error) {
		switch f.Kind {
		case String, StringMap:
			return v, nil
		case Bool:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, errors.Reason("field %q: %q is not a bool", key, v).Err()
			}
			return b, nil
		case Int64:
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				return nil, errors.Reason("field %q: %q is not an int64", key, v).Err()
			}
			return json.Number(v), nil
		case Float64:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return nil, errors.Reason("field %q: %q is not a float64", key, v).Err()
			}
			return json.Number(v), nil
		case Bytes:
			return gapi.EncodeBytes([]byte(v)), nil
		case Timestamp:
			ts, err := gapi.ParseTime(v)
			if err != nil {
				return nil, errors.Annotate(err, "field %q", key).Err()
			}
			return gapi.FormatTime(ts), nil
		case Duration:
			d, err := gapi.ParseDuration(v)
			if err != nil {
				return nil, errors.Annotate(err, "field %q", key).Err()
			}
			return gapi.FormatDuration(d), nil
		case FieldMask:
			return v, nil
		default:
			return nil, errors.Reason("field %q: unsupported kind", key).Err()
		}
	}

	if f.Kind == StringList {
		var out []any
		if value != "" {
			for _, v := range strings.Split(value, ",") {
				out = append(out, v)
			}
		}
		return out, nil
	}
	if f.Repeated {
		var out []any
		for _, v := range strings.Split(value, ",") {
			item, err := one(v)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	}
	return one(value)
}

// setPath writes val into body at path, creating intermediate objects. For
// string-map entries subKey names the final map key.
func setPath(body map[string]any, path []string, subKey string, val any) {
	cur := body
	for _, seg := range path[:len(path)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	last := path[len(path)-1]
	if subKey != "" {
		m, ok := cur[last].(map[string]any)
		if !ok {
			m = map[string]any{}
			cur[last] = m
		}
		m[subKey] = val
		return
	}
	cur[last] = val
}

// paramNameRe matches strings that are plausibly raw query parameter names.
var paramNameRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_.$]*$`)

// SplitQuery validates query option pairs against the operation's table.
//
// Known keys come back in typed (validated against their kind and converted
// to wire text); unknown but plausible parameter names fall through to extra,
// to be passed as free-form additional parameters (the call itself rejects
// collisions with reserved names later). Keys that cannot be parameter names
// at all are errors, collected like Assemble's.
func SplitQuery(t Table, pairs map[string]string) (typed, extra map[string]string, err error) {
	typed = map[string]string{}
	extra = map[string]string{}
	var merr errors.MultiError

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := t[key]
		if !ok {
			if paramNameRe.MatchString(key) {
				extra[key] = pairs[key]
				continue
			}
			merr = append(merr, unknownKey("parameter", key, t.Keys()))
			continue
		}
		val, perr := parseValue(f, key, pairs[key])
		if perr != nil {
			merr = append(merr, perr)
			continue
		}
		typed[f.Path[len(f.Path)-1]] = queryText(val)
	}

	if len(merr) > 0 {
		return nil, nil, merr
	}
	return typed, extra, nil
}

// queryText renders a parsed value back to query string text.
func queryText(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = queryText(item)
		}
		return strings.Join(parts, ",")
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
