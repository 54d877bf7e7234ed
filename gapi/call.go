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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strconv"

	"go.chromium.org/luci/common/clock"
	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/retry/transient"
)

// ServerResponse carries the HTTP response metadata of a successful call.
// Response schema types embed it so callers can reach headers and the status
// code.
type ServerResponse struct {
	HTTPStatusCode int         `json:"-"`
	Header         http.Header `json:"-"`
}

// Call describes one pending remote operation.
//
// A Call is built by a generated-style API package through the chained
// setters, then consumed exactly once by Do. It is not safe for concurrent
// use and must not be reused after Do returns.
type Call struct {
	hub      *Hub
	method   MethodInfo
	template string

	pathParams    map[string]string
	params        URLParams
	additional    map[string]string
	reserved      stringset.Set
	scopes        []string
	defaultScopes []string
	body          any
	delegate      Delegate
	consumed      bool
}

// NewCall starts a call for the given method id, HTTP verb and discovery
// path template (e.g. "v2beta3/{+parent}/queues").
func (h *Hub) NewCall(id, httpMethod, template string) *Call {
	c := &Call{
		hub:        h,
		method:     MethodInfo{ID: id, HTTPMethod: httpMethod},
		template:   template,
		pathParams: map[string]string{},
		params:     URLParams{},
		additional: map[string]string{},
		reserved:   stringset.New(4),
	}
	// The engine owns alt; callers may not override it.
	c.reserved.Add("alt")
	return c
}

// PathParam binds a positional path template parameter. Its name becomes
// reserved for clash checking.
func (c *Call) PathParam(name, value string) *Call {
	c.pathParams[name] = value
	c.reserved.Add(name)
	return c
}

// Param sets a typed query parameter by its wire name. The name becomes
// reserved for clash checking. An empty value is serialized as "name=".
func (c *Call) Param(name, value string) *Call {
	c.params.Set(name, value)
	c.reserved.Add(name)
	return c
}

// Reserve declares wire names of the operation's typed parameters without
// setting them, so unset typed parameters still reject colliding additional
// params.
func (c *Call) Reserve(names ...string) *Call {
	for _, n := range names {
		c.reserved.Add(n)
	}
	return c
}

// AdditionalParam sets a free-form query parameter. Collisions with
// reserved names are rejected at execution time, not here.
func (c *Call) AdditionalParam(key, value string) *Call {
	c.additional[key] = value
	return c
}

// Scopes replaces the authorization scope set for this call.
func (c *Call) Scopes(scopes ...string) *Call {
	c.scopes = append([]string(nil), scopes...)
	return c
}

// DefaultScopes declares the operation's documented minimum scopes, used
// when the caller sets none.
func (c *Call) DefaultScopes(scopes ...string) *Call {
	c.defaultScopes = append([]string(nil), scopes...)
	return c
}

// Body attaches the request payload. body must marshal to a JSON object
// with absent fields stripped (see MarshalSchema).
func (c *Call) Body(body any) *Call {
	c.body = body
	return c
}

// Delegate installs the retry policy for this call, overriding the Hub's.
func (c *Call) Delegate(d Delegate) *Call {
	c.delegate = d
	return c
}

// Method returns the identity of the operation this call executes.
func (c *Call) Method() MethodInfo { return c.method }

// EffectiveScopes returns the scope set Do will authorize with: the caller's
// scopes, or the operation's documented default when none were set.
func (c *Call) EffectiveScopes() []string {
	if len(c.scopes) > 0 {
		return c.scopes
	}
	return c.defaultScopes
}

// Validate performs the pre-network part of execution: the field clash check
// and URL assembly. It has no side effects and performs no I/O, so it is
// safe for dry runs.
//
// Returns the full request URL, query string included.
func (c *Call) Validate() (string, error) {
	keys := keysOf(c.additional)
	sort.Strings(keys)
	for _, k := range keys {
		if c.reserved.Has(k) {
			return "", &CallError{Kind: KindFieldClash, Method: c.method.ID, Key: k}
		}
	}
	path, err := ExpandPath(c.template, c.pathParams)
	if err != nil {
		return "", errors.Annotate(err, "%s", c.method.ID).Err()
	}
	q := c.params.clone()
	for k, v := range c.additional {
		q.Set(k, v)
	}
	q.Set("alt", "json")
	return ResolveRelative(c.hub.BasePath, path) + "?" + q.Encode(), nil
}

// Do executes the call, decoding a 2xx response body into out (unless out is
// nil). It consumes the call.
//
// Failed attempts are offered to the delegate; when it grants a retry the
// engine sleeps the requested backoff (cancellable through ctx) and starts
// over from the token fetch, so every attempt authorizes with a fresh
// token. The terminal error, if any, is a *CallError.
func (c *Call) Do(ctx context.Context, out any) (*ServerResponse, error) {
	if c.consumed {
		return nil, errors.Reason("%s: call already executed", c.method.ID).Err()
	}
	c.consumed = true

	d := c.delegate
	if d == nil {
		d = c.hub.delegate()
	}
	d.Begin(ctx, c.method)

	reqURL, err := c.Validate()
	if err != nil {
		return nil, err
	}
	scopes := c.EffectiveScopes()
	if len(scopes) == 0 {
		return nil, &CallError{
			Kind:   KindMissingToken,
			Method: c.method.ID,
			Err:    errors.Reason("no authorization scopes configured").Err(),
		}
	}

	var body []byte
	if c.body != nil {
		if body, err = json.Marshal(c.body); err != nil {
			return nil, errors.Annotate(err, "%s: serializing request body", c.method.ID).Err()
		}
	}

	logging.Debugf(ctx, "%s: %s %s", c.method.ID, c.method.HTTPMethod, reqURL)
	for attempt := 1; ; attempt++ {
		res, err := c.attempt(ctx, reqURL, scopes, body, out)
		switch ce, _ := AsCallError(err); {
		case err == nil:
			d.Done(ctx, c.method)
			return res, nil
		case ctx.Err() != nil:
			return nil, err
		case ce != nil && ce.Kind == KindJSONDecode:
			// A malformed success body is terminal; retrying can't help.
			return nil, err
		}
		delay, retry := d.Decide(ctx, err)
		if !retry {
			return nil, err
		}
		logging.Warningf(ctx, "%s: attempt %d failed, retrying in %s: %s",
			c.method.ID, attempt, delay, err)
		if r := clock.Sleep(ctx, delay); r.Incomplete() {
			return nil, errors.Annotate(r.Err, "%s: canceled during backoff", c.method.ID).Err()
		}
	}
}

// attempt performs a single token-fetch + request + decode cycle.
func (c *Call) attempt(ctx context.Context, reqURL string, scopes []string, body []byte, out any) (*ServerResponse, error) {
	tok, err := c.hub.tokens.Token(ctx, scopes)
	if err != nil {
		return nil, &CallError{Kind: KindMissingToken, Method: c.method.ID, Err: err}
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, c.method.HTTPMethod, reqURL, reqBody)
	if err != nil {
		return nil, errors.Annotate(err, "%s", c.method.ID).Err()
	}
	req.Header.Set("User-Agent", c.hub.userAgent())
	if tok != nil {
		tok.SetAuthHeader(req)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	}

	res, err := c.hub.client.Do(req)
	if err != nil {
		return nil, transient.Tag.Apply(&CallError{Kind: KindTransport, Method: c.method.ID, Err: err})
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, transient.Tag.Apply(&CallError{Kind: KindTransport, Method: c.method.ID, Err: err})
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, c.statusError(res.StatusCode, raw)
	}

	sr := &ServerResponse{HTTPStatusCode: res.StatusCode, Header: res.Header}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, &CallError{
				Kind:   KindJSONDecode,
				Method: c.method.ID,
				Body:   string(raw),
				Err:    err,
			}
		}
	}
	return sr, nil
}

func (c *Call) statusError(code int, raw []byte) error {
	cerr := &CallError{Kind: KindFailure, Method: c.method.ID, HTTPCode: code, Body: string(raw)}
	var reply errorReply
	if err := json.Unmarshal(raw, &reply); err == nil && reply.Error != nil {
		cerr.Kind = KindBadRequest
		cerr.Status = reply.Error
		cerr.Body = ""
	}
	if code >= 500 || code == http.StatusTooManyRequests {
		return transient.Tag.Apply(cerr)
	}
	return cerr
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
