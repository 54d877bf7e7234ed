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

func TestExpandPath(t *testing.T) {
	t.Parallel()

	Convey(`ExpandPath`, t, func() {
		Convey(`substitutes a reserved placeholder keeping slashes`, func() {
			got, err := ExpandPath("v2beta3/{+parent}/queues", map[string]string{
				"parent": "projects/p/locations/l",
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "v2beta3/projects/p/locations/l/queues")
		})

		Convey(`escapes segments of a reserved value`, func() {
			got, err := ExpandPath("v2beta3/{+name}", map[string]string{
				"name": "projects/odd one/locations/l",
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "v2beta3/projects/odd%20one/locations/l")
		})

		Convey(`escapes a plain placeholder fully`, func() {
			got, err := ExpandPath("v1/items/{id}", map[string]string{
				"id": "a/b",
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "v1/items/a%2Fb")
		})

		Convey(`rejects an unbound placeholder`, func() {
			_, err := ExpandPath("v1/{+name}", nil)
			So(err, ShouldNotBeNil)
		})

		Convey(`rejects an unterminated placeholder`, func() {
			_, err := ExpandPath("v1/{name", map[string]string{"name": "x"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestURLParams(t *testing.T) {
	t.Parallel()

	Convey(`URLParams`, t, func() {
		p := URLParams{}

		Convey(`keeps an empty value`, func() {
			p.Set("readMask", "")
			So(p.Encode(), ShouldEqual, "readMask=")
		})

		Convey(`Set replaces, Add appends`, func() {
			p.Set("pageSize", "10")
			p.Set("pageSize", "20")
			p.Add("permissions", "a")
			p.Add("permissions", "b")
			So(p.Encode(), ShouldEqual, "pageSize=20&permissions=a&permissions=b")
			So(p.Get("pageSize"), ShouldEqual, "20")
			So(p.Get("missing"), ShouldEqual, "")
		})

		Convey(`clone does not alias`, func() {
			p.Set("a", "1")
			q := p.clone()
			q.Set("a", "2")
			So(p.Get("a"), ShouldEqual, "1")
		})
	})
}

func TestResolveRelative(t *testing.T) {
	t.Parallel()

	Convey(`ResolveRelative normalizes the joining slash`, t, func() {
		So(ResolveRelative("https://x.googleapis.com/", "v1/a"), ShouldEqual, "https://x.googleapis.com/v1/a")
		So(ResolveRelative("https://x.googleapis.com", "/v1/a"), ShouldEqual, "https://x.googleapis.com/v1/a")
	})
}
