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

// Package gapi implements the generic machinery shared by hand-maintained
// Google REST API clients: URL template expansion, schema serialization,
// OAuth2 token plumbing and a single retriable execute routine.
//
// Generated-style API packages (e.g. the sibling cloudtasks package) describe
// each remote operation as a Call and delegate all transport concerns here,
// instead of stamping a copy of the request loop per method the way
// google-api-go-client does.
//
// A Call is single-use: it is configured through chained setters and consumed
// by Do. Retries are mediated by a Delegate, which by default retries only
// transient failures (HTTP 5xx, 429 and transport errors) with exponential
// backoff. All sleeping goes through go.chromium.org/luci/common/clock so
// tests can drive time.
package gapi
