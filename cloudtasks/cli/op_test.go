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

package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"go.chromium.org/luci/auth"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/flag/stringmapflag"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/gapi"

	. "github.com/smartystreets/goconvey/convey"
)

// testRun wires a groupRun to a counting fake API server.
func testRun(group *opGroup) (*groupRun, *[]recorded, func()) {
	var reqs []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, "{}")
	}))

	r := &groupRun{group: group}
	r.Init(auth.Options{})
	r.service = func() (*cloudtasks.Service, error) {
		hub, err := gapi.NewHub(srv.Client(),
			gapi.StaticTokenProvider(&oauth2.Token{AccessToken: "sekret"}), srv.URL+"/")
		if err != nil {
			return nil, err
		}
		return cloudtasks.NewWithHub(hub), nil
	}
	return r, &reqs, srv.Close
}

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func TestExecute(t *testing.T) {
	t.Parallel()

	Convey("Executing operations", t, func() {
		ctx := context.Background()

		Convey("queue create assembles a nested body from -r pairs", func() {
			r, reqs, done := testRun(queuesGroup)
			defer done()
			r.fields = stringmapflag.Value{
				"name": "projects/p/locations/l/queues/q",
				"rate-limits.max-dispatches-per-second": "7.5",
				"retry-config.max-attempts":             "3",
			}

			res, err := r.execute(ctx, []string{"create", "projects/p/locations/l"})
			So(err, ShouldBeNil)
			So(res, ShouldNotBeNil)

			So(*reqs, ShouldHaveLength, 1)
			got := (*reqs)[0]
			So(got.Method, ShouldEqual, "POST")
			So(got.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues")
			So(got.Body, ShouldEqual, `{"name":"projects/p/locations/l/queues/q",`+
				`"rateLimits":{"maxDispatchesPerSecond":7.5},`+
				`"retryConfig":{"maxAttempts":3}}`)
		})

		Convey("-p pairs become typed and raw query parameters", func() {
			r, reqs, done := testRun(queuesGroup)
			defer done()
			r.params = stringmapflag.Value{
				"page-size":   "50",
				"prettyPrint": "false",
			}

			_, err := r.execute(ctx, []string{"list", "projects/p/locations/l"})
			So(err, ShouldBeNil)
			So((*reqs)[0].Query, ShouldEqual, "alt=json&pageSize=50&prettyPrint=false")
		})

		Convey("dry run validates everything yet sends nothing", func() {
			r, reqs, done := testRun(queuesGroup)
			defer done()
			r.dryRun = true
			r.fields = stringmapflag.Value{"name": "projects/p/locations/l/queues/q"}

			res, err := r.execute(ctx, []string{"create", "projects/p/locations/l"})
			So(err, ShouldBeNil)
			So(res, ShouldBeNil)
			So(*reqs, ShouldHaveLength, 0)
		})

		Convey("dry run still catches parameter clashes", func() {
			r, reqs, done := testRun(queuesGroup)
			defer done()
			r.dryRun = true
			r.params = stringmapflag.Value{"alt": "xml"}

			_, err := r.execute(ctx, []string{"get", "projects/p/locations/l/queues/q"})
			So(err, ShouldNotBeNil)
			ce, ok := gapi.AsCallError(err)
			So(ok, ShouldBeTrue)
			So(ce.Kind, ShouldEqual, gapi.KindFieldClash)
			So(*reqs, ShouldHaveLength, 0)
		})

		Convey("unknown body field gets a nearest-match suggestion", func() {
			r, _, done := testRun(queuesGroup)
			defer done()
			r.fields = stringmapflag.Value{"retry-config.max-atempts": "3"}

			_, err := r.execute(ctx, []string{"create", "projects/p/locations/l"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "retry-config.max-attempts"?`)
		})

		Convey("all argument problems are reported together", func() {
			r, _, done := testRun(queuesGroup)
			defer done()
			r.fields = stringmapflag.Value{
				"retry-config.max-attempts": "many",
				"no-such-field":             "x",
			}
			r.params = stringmapflag.Value{"page size!": "3"}

			_, err := r.execute(ctx, []string{"create"})
			So(err, ShouldNotBeNil)
			merr, ok := err.(errors.MultiError)
			So(ok, ShouldBeTrue)
			// Missing positional, two bad body fields, one bad parameter.
			So(merr, ShouldHaveLength, 4)
		})

		Convey("unknown operation gets a suggestion", func() {
			r, _, done := testRun(queuesGroup)
			defer done()

			_, err := r.execute(ctx, []string{"pagse", "projects/p/locations/l/queues/q"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "pause"?`)
		})

		Convey("operations without a body reject -r pairs", func() {
			r, _, done := testRun(queuesGroup)
			defer done()
			r.fields = stringmapflag.Value{"name": "q"}

			_, err := r.execute(ctx, []string{"delete", "projects/p/locations/l/queues/q"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "takes no -r body fields")
		})

		Convey("task create maps bytes and string map fields", func() {
			r, reqs, done := testRun(tasksGroup)
			defer done()
			r.fields = stringmapflag.Value{
				"task.http-request.url":  "https://example.com/handle",
				"task.http-request.body": "payload",
				"task.http-request.headers.X-Reason": "manual",
			}

			_, err := r.execute(ctx, []string{"create", "projects/p/locations/l/queues/q"})
			So(err, ShouldBeNil)

			got := (*reqs)[0]
			So(got.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q/tasks")
			So(got.Body, ShouldEqual, `{"task":{"httpRequest":{`+
				`"url":"https://example.com/handle",`+
				`"headers":{"X-Reason":"manual"},`+
				`"body":"cGF5bG9hZA=="}}}`)
		})
	})
}
