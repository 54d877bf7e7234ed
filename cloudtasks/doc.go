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

// Package cloudtasks is a client for the Cloud Tasks API (v2beta3).
//
// Construct a Service with New, then navigate the resource tree to build
// calls:
//
//	svc, err := cloudtasks.New(nil, tokens)
//	if err != nil {
//		return err
//	}
//	q, err := svc.Projects.Locations.Queues.
//		Create("projects/p/locations/l", &cloudtasks.Queue{...}).
//		Do(ctx)
//
// Every call builder is single use. Optional query parameters have typed
// setters; Param accepts free-form ones and rejects collisions with the
// typed set at execution time. Authorization scopes default to the
// operation's documented minimum and can be replaced with Scopes. Retry
// behavior comes from the hub's delegate and can be replaced per call with
// Delegate.
package cloudtasks
