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

package cloudtasks

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/luci/cloudcall/gapi"

	. "github.com/smartystreets/goconvey/convey"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

func newTestService(responses ...string) (*Service, *[]recordedRequest, func()) {
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		resp := "{}"
		if len(responses) > 0 {
			resp = responses[0]
			responses = responses[1:]
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, resp)
	}))

	tokens := gapi.StaticTokenProvider(&oauth2.Token{AccessToken: "sekret"})

	hub, err := gapi.NewHub(srv.Client(), tokens, srv.URL+"/")
	if err != nil {
		panic(err)
	}
	return NewWithHub(hub), &reqs, srv.Close
}

func TestQueueCalls(t *testing.T) {
	t.Parallel()

	Convey("With a fake API server", t, func() {
		ctx := context.Background()

		Convey("Create sends the queue to the right URL", func() {
			svc, reqs, done := newTestService(`{"name": "projects/p/locations/l/queues/q", "state": "RUNNING"}`)
			defer done()

			q, err := svc.Projects.Locations.Queues.
				Create("projects/p/locations/l", &Queue{Name: "projects/p/locations/l/queues/q"}).
				Do(ctx)
			So(err, ShouldBeNil)
			So(q.Name, ShouldEqual, "projects/p/locations/l/queues/q")
			So(q.State, ShouldEqual, "RUNNING")
			So(q.HTTPStatusCode, ShouldEqual, 200)

			So(*reqs, ShouldHaveLength, 1)
			r := (*reqs)[0]
			So(r.Method, ShouldEqual, "POST")
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues")
			So(r.Query, ShouldEqual, "alt=json")
			So(r.Auth, ShouldEqual, "Bearer sekret")
			So(r.Body, ShouldEqual, `{"name":"projects/p/locations/l/queues/q"}`)
		})

		Convey("Get with an empty read mask keeps the bare readMask key", func() {
			svc, reqs, done := newTestService()
			defer done()

			_, err := svc.Projects.Locations.Queues.
				Get("projects/p/locations/l/queues/q").
				ReadMask().
				Do(ctx)
			So(err, ShouldBeNil)

			r := (*reqs)[0]
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q")
			So(r.Query, ShouldEqual, "alt=json&readMask=")
			So(strings.Count(r.Query, "readMask"), ShouldEqual, 1)
		})

		Convey("List forwards paging and filter parameters", func() {
			svc, reqs, done := newTestService(`{"queues": [{"name": "q1"}], "nextPageToken": "next"}`)
			defer done()

			resp, err := svc.Projects.Locations.Queues.
				List("projects/p/locations/l").
				Filter("state=PAUSED").
				PageSize(10).
				PageToken("tok").
				Do(ctx)
			So(err, ShouldBeNil)
			So(resp.Queues, ShouldHaveLength, 1)
			So(resp.NextPageToken, ShouldEqual, "next")

			r := (*reqs)[0]
			So(r.Method, ShouldEqual, "GET")
			So(r.Query, ShouldEqual, "alt=json&filter=state%3DPAUSED&pageSize=10&pageToken=tok")
		})

		Convey("Patch targets the queue name with an update mask", func() {
			svc, reqs, done := newTestService()
			defer done()

			_, err := svc.Projects.Locations.Queues.
				Patch("projects/p/locations/l/queues/q", &Queue{
					RateLimits: &RateLimits{MaxDispatchesPerSecond: 5},
				}).
				UpdateMask("rateLimits.maxDispatchesPerSecond").
				Do(ctx)
			So(err, ShouldBeNil)

			r := (*reqs)[0]
			So(r.Method, ShouldEqual, "PATCH")
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q")
			So(r.Query, ShouldEqual, "alt=json&updateMask=rateLimits.maxDispatchesPerSecond")
			So(r.Body, ShouldEqual, `{"rateLimits":{"maxDispatchesPerSecond":5}}`)
		})

		Convey("Pause posts to the :pause verb", func() {
			svc, reqs, done := newTestService()
			defer done()

			_, err := svc.Projects.Locations.Queues.
				Pause("projects/p/locations/l/queues/q", &PauseQueueRequest{}).
				Do(ctx)
			So(err, ShouldBeNil)

			r := (*reqs)[0]
			So(r.Method, ShouldEqual, "POST")
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q:pause")
			So(r.Body, ShouldEqual, "{}")
		})

		Convey("Delete returns Empty", func() {
			svc, reqs, done := newTestService()
			defer done()

			e, err := svc.Projects.Locations.Queues.
				Delete("projects/p/locations/l/queues/q").
				Do(ctx)
			So(err, ShouldBeNil)
			So(e.HTTPStatusCode, ShouldEqual, 200)
			So((*reqs)[0].Method, ShouldEqual, "DELETE")
		})

		Convey("Free-form Param clashing with a typed setter fails before any I/O", func() {
			svc, reqs, done := newTestService()
			defer done()

			_, err := svc.Projects.Locations.Queues.
				List("projects/p/locations/l").
				PageSize(5).
				Param("pageSize", "10").
				Do(ctx)
			So(err, ShouldNotBeNil)

			ce, ok := gapi.AsCallError(err)
			So(ok, ShouldBeTrue)
			So(ce.Kind, ShouldEqual, gapi.KindFieldClash)
			So(ce.Key, ShouldEqual, "pageSize")
			So(*reqs, ShouldHaveLength, 0)
		})

		Convey("Param clashing with a path placeholder fails too", func() {
			svc, reqs, done := newTestService()
			defer done()

			_, err := svc.Projects.Locations.Queues.
				Get("projects/p/locations/l/queues/q").
				Param("name", "evil").
				Do(ctx)
			So(err, ShouldNotBeNil)

			ce, ok := gapi.AsCallError(err)
			So(ok, ShouldBeTrue)
			So(ce.Kind, ShouldEqual, gapi.KindFieldClash)
			So(*reqs, ShouldHaveLength, 0)
		})

		Convey("Structured API errors surface status details", func() {
			svc, _, done := newTestService()
			defer done()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(404)
				io.WriteString(w, `{"error": {"code": 404, "message": "queue not found", "status": "NOT_FOUND"}}`)
			}))
			defer srv.Close()
			svc.Hub().BasePath = srv.URL + "/"

			_, err := svc.Projects.Locations.Queues.
				Get("projects/p/locations/l/queues/nope").
				Do(ctx)
			So(err, ShouldNotBeNil)

			ce, ok := gapi.AsCallError(err)
			So(ok, ShouldBeTrue)
			So(ce.Kind, ShouldEqual, gapi.KindBadRequest)
			So(ce.HTTPCode, ShouldEqual, 404)
			So(ce.Status, ShouldNotBeNil)
			So(ce.Status.Message, ShouldEqual, "queue not found")
			So(ce.Status.Status, ShouldEqual, "NOT_FOUND")
		})

		Convey("Call builders are single use", func() {
			svc, _, done := newTestService()
			defer done()

			call := svc.Projects.Locations.Queues.Get("projects/p/locations/l/queues/q")
			_, err := call.Do(ctx)
			So(err, ShouldBeNil)
			_, err = call.Do(ctx)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTaskCalls(t *testing.T) {
	t.Parallel()

	Convey("With a fake API server", t, func() {
		ctx := context.Background()

		Convey("Create wraps the task in a CreateTaskRequest", func() {
			svc, reqs, done := newTestService(`{"name": "projects/p/locations/l/queues/q/tasks/t"}`)
			defer done()

			task, err := svc.Projects.Locations.Queues.Tasks.
				Create("projects/p/locations/l/queues/q", &CreateTaskRequest{
					Task: &Task{
						HttpRequest: &HttpRequest{
							Url:        "https://example.com/handle",
							HttpMethod: "POST",
						},
					},
				}).
				Do(ctx)
			So(err, ShouldBeNil)
			So(task.Name, ShouldEqual, "projects/p/locations/l/queues/q/tasks/t")

			r := (*reqs)[0]
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q/tasks")
			So(r.Body, ShouldEqual, `{"task":{"httpRequest":{"url":"https://example.com/handle","httpMethod":"POST"}}}`)
		})

		Convey("List forwards the response view", func() {
			svc, reqs, done := newTestService(`{"tasks": []}`)
			defer done()

			_, err := svc.Projects.Locations.Queues.Tasks.
				List("projects/p/locations/l/queues/q").
				ResponseView("FULL").
				Do(ctx)
			So(err, ShouldBeNil)
			So((*reqs)[0].Query, ShouldEqual, "alt=json&responseView=FULL")
		})

		Convey("Run posts to the :run verb", func() {
			svc, reqs, done := newTestService(`{"name": "projects/p/locations/l/queues/q/tasks/t"}`)
			defer done()

			_, err := svc.Projects.Locations.Queues.Tasks.
				Run("projects/p/locations/l/queues/q/tasks/t", &RunTaskRequest{ResponseView: "BASIC"}).
				Do(ctx)
			So(err, ShouldBeNil)

			r := (*reqs)[0]
			So(r.Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q/tasks/t:run")
			So(r.Body, ShouldEqual, `{"responseView":"BASIC"}`)
		})
	})
}

func TestLocationCalls(t *testing.T) {
	t.Parallel()

	Convey("Locations list and get hit the expected URLs", t, func() {
		ctx := context.Background()
		svc, reqs, done := newTestService(
			`{"locations": [{"locationId": "us-east1"}]}`,
			`{"locationId": "us-east1", "name": "projects/p/locations/us-east1"}`,
		)
		defer done()

		resp, err := svc.Projects.Locations.List("projects/p").PageSize(3).Do(ctx)
		So(err, ShouldBeNil)
		So(resp.Locations, ShouldHaveLength, 1)
		So((*reqs)[0].Path, ShouldEqual, "/v2beta3/projects/p/locations")
		So((*reqs)[0].Query, ShouldEqual, "alt=json&pageSize=3")

		loc, err := svc.Projects.Locations.Get("projects/p/locations/us-east1").Do(ctx)
		So(err, ShouldBeNil)
		So(loc.LocationId, ShouldEqual, "us-east1")
		So((*reqs)[1].Path, ShouldEqual, "/v2beta3/projects/p/locations/us-east1")
	})
}

func TestIamCalls(t *testing.T) {
	t.Parallel()

	Convey("IAM calls post to their verbs", t, func() {
		ctx := context.Background()
		svc, reqs, done := newTestService(
			`{"etag": "abc"}`,
			`{"etag": "def"}`,
			`{"permissions": ["cloudtasks.queues.get"]}`,
		)
		defer done()

		p, err := svc.Projects.Locations.Queues.
			GetIamPolicy("projects/p/locations/l/queues/q", &GetIamPolicyRequest{}).
			Do(ctx)
		So(err, ShouldBeNil)
		So(p.Etag, ShouldEqual, "abc")
		So((*reqs)[0].Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q:getIamPolicy")

		p, err = svc.Projects.Locations.Queues.
			SetIamPolicy("projects/p/locations/l/queues/q", &SetIamPolicyRequest{
				Policy: &Policy{
					Bindings: []*Binding{{
						Role:    "roles/cloudtasks.admin",
						Members: []string{"user:someone@example.com"},
					}},
				},
			}).
			Do(ctx)
		So(err, ShouldBeNil)
		So(p.Etag, ShouldEqual, "def")
		So((*reqs)[1].Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q:setIamPolicy")
		So((*reqs)[1].Body, ShouldContainSubstring, `"roles/cloudtasks.admin"`)

		tp, err := svc.Projects.Locations.Queues.
			TestIamPermissions("projects/p/locations/l/queues/q", &TestIamPermissionsRequest{
				Permissions: []string{"cloudtasks.queues.get"},
			}).
			Do(ctx)
		So(err, ShouldBeNil)
		So(tp.Permissions, ShouldResemble, []string{"cloudtasks.queues.get"})
		So((*reqs)[2].Path, ShouldEqual, "/v2beta3/projects/p/locations/l/queues/q:testIamPermissions")
	})
}
