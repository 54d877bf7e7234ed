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

package fieldmap

import (
	"encoding/json"
	"testing"

	"go.chromium.org/luci/common/errors"

	. "github.com/smartystreets/goconvey/convey"
)

var queueTable = Table{
	"name": {Path: []string{"name"}, Kind: String},
	"rate-limits.max-dispatches-per-second": {
		Path: []string{"rateLimits", "maxDispatchesPerSecond"}, Kind: Float64,
	},
	"rate-limits.max-concurrent-dispatches": {
		Path: []string{"rateLimits", "maxConcurrentDispatches"}, Kind: Int64,
	},
	"retry-config.max-attempts": {Path: []string{"retryConfig", "maxAttempts"}, Kind: Int64},
	"retry-config.min-backoff":  {Path: []string{"retryConfig", "minBackoff"}, Kind: Duration},
	"purge-time":                {Path: []string{"purgeTime"}, Kind: Timestamp},
	"labels":                    {Path: []string{"labels"}, Kind: StringMap},
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	Convey("Assemble", t, func() {
		Convey("builds a nested body from dotted keys", func() {
			body, err := Assemble(queueTable, map[string]string{
				"name": "projects/p/locations/l/queues/q",
				"rate-limits.max-dispatches-per-second": "5.5",
				"rate-limits.max-concurrent-dispatches": "10",
				"retry-config.min-backoff":              "0.1s",
			})
			So(err, ShouldBeNil)

			b, err := json.Marshal(body)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{`+
				`"name":"projects/p/locations/l/queues/q",`+
				`"rateLimits":{"maxConcurrentDispatches":10,"maxDispatchesPerSecond":5.5},`+
				`"retryConfig":{"minBackoff":"0.1s"}}`)
		})

		Convey("string map fields take a trailing entry segment", func() {
			body, err := Assemble(queueTable, map[string]string{
				"labels.env":  "prod",
				"labels.team": "infra",
			})
			So(err, ShouldBeNil)
			So(body, ShouldResemble, map[string]any{
				"labels": map[string]any{"env": "prod", "team": "infra"},
			})
		})

		Convey("a bare string map key is rejected with a usage hint", func() {
			_, err := Assemble(queueTable, map[string]string{"labels": "prod"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "labels.some-key=value")
		})

		Convey("timestamps and durations are validated and normalized", func() {
			body, err := Assemble(queueTable, map[string]string{
				"purge-time":               "2026-01-02T03:04:05Z",
				"retry-config.min-backoff": "90s",
			})
			So(err, ShouldBeNil)
			So(body["purgeTime"], ShouldEqual, "2026-01-02T03:04:05Z")
			So(body["retryConfig"].(map[string]any)["minBackoff"], ShouldEqual, "90s")
		})

		Convey("unknown fields get a nearest-match suggestion", func() {
			_, err := Assemble(queueTable, map[string]string{
				"retry-config.max-atempts": "3",
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "retry-config.max-attempts"?`)
		})

		Convey("hopeless unknown fields list the legal set instead", func() {
			_, err := Assemble(queueTable, map[string]string{
				"zzzzzzzzzzzzzzzz": "x",
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "legal values are")
		})

		Convey("all violations are reported together", func() {
			_, err := Assemble(queueTable, map[string]string{
				"rate-limits.max-dispatches-per-second": "fast",
				"retry-config.max-attempts":             "many",
				"no-such-field":                         "x",
			})
			So(err, ShouldNotBeNil)
			merr, ok := err.(errors.MultiError)
			So(ok, ShouldBeTrue)
			So(merr, ShouldHaveLength, 3)
		})

		Convey("empty input yields an empty body", func() {
			body, err := Assemble(queueTable, nil)
			So(err, ShouldBeNil)
			So(body, ShouldResemble, map[string]any{})
		})
	})
}

func TestSplitQuery(t *testing.T) {
	t.Parallel()

	queryTable := Table{
		"page-size":  {Path: []string{"pageSize"}, Kind: Int64},
		"page-token": {Path: []string{"pageToken"}, Kind: String},
		"filter":     {Path: []string{"filter"}, Kind: String},
		"read-mask":  {Path: []string{"readMask"}, Kind: FieldMask},
	}

	Convey("SplitQuery", t, func() {
		Convey("typed keys are validated, unknown plausible names fall through", func() {
			typed, extra, err := SplitQuery(queryTable, map[string]string{
				"page-size":   "25",
				"read-mask":   "name,state",
				"prettyPrint": "true",
			})
			So(err, ShouldBeNil)
			So(typed, ShouldResemble, map[string]string{
				"pageSize": "25",
				"readMask": "name,state",
			})
			So(extra, ShouldResemble, map[string]string{"prettyPrint": "true"})
		})

		Convey("a typed key with a bad value is an error", func() {
			_, _, err := SplitQuery(queryTable, map[string]string{"page-size": "lots"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "not an int64")
		})

		Convey("a key that cannot be a parameter name is rejected", func() {
			_, _, err := SplitQuery(queryTable, map[string]string{"page size!": "3"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown parameter")
		})
	})
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	Convey("Suggest", t, func() {
		known := []string{"page-size", "page-token", "filter"}

		Convey("returns the nearest key within distance 3", func() {
			got, ok := Suggest("page-sise", known)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "page-size")
		})

		Convey("prefers the closer of two candidates", func() {
			got, ok := Suggest("page-toke", known)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "page-token")
		})

		Convey("gives up beyond the threshold", func() {
			_, ok := Suggest("completely-unrelated", known)
			So(ok, ShouldBeFalse)
		})
	})
}
