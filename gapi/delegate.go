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
	"context"
	"time"

	"go.chromium.org/luci/common/retry"
	"go.chromium.org/luci/common/retry/transient"
)

// MethodInfo identifies the remote operation a Call executes.
type MethodInfo struct {
	// ID is the discovery method id, e.g.
	// "cloudtasks.projects.locations.queues.create".
	ID string
	// HTTPMethod is the verb, e.g. "POST".
	HTTPMethod string
}

// Delegate is the policy object a Call consults while executing.
//
// Decide is offered every failed attempt (transport errors, non-2xx
// responses and token fetch failures, each wrapped in a *CallError) and
// returns how long to back off before the next attempt, or retry=false to
// make the failure terminal.
//
// A Delegate instance serves a single Call execution and may keep state
// across attempts (e.g. a backoff iterator).
type Delegate interface {
	Begin(ctx context.Context, m MethodInfo)
	Decide(ctx context.Context, err error) (backoff time.Duration, retry bool)
	Done(ctx context.Context, m MethodInfo)
}

// RetryPolicy returns a Delegate granting retries according to a
// go.chromium.org/luci/common/retry factory.
//
// Wrap the factory in transient.Only to retry only transient-tagged
// failures; Call tags HTTP 5xx, 429 and transport errors transient.
func RetryPolicy(f retry.Factory) Delegate {
	return &retryDelegate{factory: f}
}

// DefaultRetryPolicy is the policy used when neither the Call nor the Hub
// installs one: transient failures are retried with the default exponential
// backoff, everything else is terminal.
func DefaultRetryPolicy() Delegate {
	return RetryPolicy(transient.Only(retry.Default))
}

// NoRetry returns a Delegate that makes every failure terminal.
func NoRetry() Delegate {
	return RetryPolicy(func() retry.Iterator { return nil })
}

type retryDelegate struct {
	factory retry.Factory
	it      retry.Iterator
}

func (d *retryDelegate) Begin(ctx context.Context, m MethodInfo) {
	d.it = d.factory()
}

func (d *retryDelegate) Decide(ctx context.Context, err error) (time.Duration, bool) {
	if d.it == nil {
		return 0, false
	}
	delay := d.it.Next(ctx, err)
	if delay == retry.Stop {
		return 0, false
	}
	return delay, true
}

func (d *retryDelegate) Done(ctx context.Context, m MethodInfo) {}
