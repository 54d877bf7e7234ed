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
	"encoding/json"
	"reflect"
	"strings"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// MarshalSchema serializes a schema struct to its JSON wire form.
//
// Fields with empty values are omitted, matching the "absent, not null"
// contract of the discovery wire format. Struct field names (Go names, not
// wire names) listed in forceSendFields are serialized even when empty;
// names listed in nullFields are serialized as JSON null and must hold empty
// values.
//
// schema must be a struct or pointer to struct whose fields carry standard
// json tags. Schema types call this from their MarshalJSON through a
// method-less alias of themselves to avoid recursion.
func MarshalSchema(schema any, forceSendFields, nullFields []string) ([]byte, error) {
	if len(forceSendFields) == 0 && len(nullFields) == 0 {
		return json.Marshal(schema)
	}
	m, err := schemaToMap(schema, forceSendFields, nullFields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

func schemaToMap(schema any, forceSendFields, nullFields []string) (map[string]any, error) {
	mustInclude := stringset.NewFromSlice(forceSendFields...)
	useNull := stringset.NewFromSlice(nullFields...)

	v := reflect.ValueOf(schema)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, errors.Reason("cannot marshal nil schema").Err()
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Reason("schema must be a struct, got %s", v.Kind()).Err()
	}

	t := v.Type()
	m := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		wireName, ok := wireFieldName(f)
		if !ok {
			continue
		}
		fv := v.Field(i)
		if useNull.Has(f.Name) {
			if !isEmptyValue(fv) {
				return nil, errors.Reason("field %q in NullFields has a non-empty value", f.Name).Err()
			}
			m[wireName] = nil
			continue
		}
		if isEmptyValue(fv) && !mustInclude.Has(f.Name) {
			continue
		}
		m[wireName] = fv.Interface()
	}
	return m, nil
}

func wireFieldName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, true
}

// isEmptyValue follows encoding/json's notion of emptiness for omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
