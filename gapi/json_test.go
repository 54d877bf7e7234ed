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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testSchema struct {
	Name     string            `json:"name,omitempty"`
	PageSize int64             `json:"pageSize,omitempty"`
	Paused   bool              `json:"paused,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Nested   *testSchema       `json:"nested,omitempty"`
	Skipped  string            `json:"-"`
}

func TestMarshalSchema(t *testing.T) {
	t.Parallel()

	Convey(`MarshalSchema`, t, func() {
		Convey(`strips absent fields down to an empty object`, func() {
			b, err := MarshalSchema(&testSchema{}, nil, nil)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "{}")
		})

		Convey(`keeps set fields only`, func() {
			b, err := MarshalSchema(&testSchema{Name: "q", Skipped: "x"}, nil, nil)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"name":"q"}`)
		})

		Convey(`force-sends empty fields on request`, func() {
			b, err := MarshalSchema(&testSchema{}, []string{"Paused", "PageSize"}, nil)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"pageSize":0,"paused":false}`)
		})

		Convey(`emits explicit nulls on request`, func() {
			b, err := MarshalSchema(&testSchema{Name: "q"}, nil, []string{"Nested"})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"name":"q","nested":null}`)
		})

		Convey(`rejects a non-empty field in NullFields`, func() {
			_, err := MarshalSchema(&testSchema{Name: "q"}, nil, []string{"Name"})
			So(err, ShouldNotBeNil)
		})

		Convey(`rejects a nil schema`, func() {
			_, err := MarshalSchema((*testSchema)(nil), []string{"Name"}, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
