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
	"net/http"

	"golang.org/x/oauth2"

	"go.chromium.org/luci/common/errors"
)

// userAgent identifies this client library in outgoing requests. API packages
// append their own fragment via Hub.UserAgent.
const userAgent = "cloudcall/1.0"

// TokenProvider supplies OAuth2 access tokens for a set of scopes.
//
// Token is called once per request attempt (including retries), so
// implementations are expected to cache tokens themselves if fetching is
// expensive. The scope set is never empty.
type TokenProvider interface {
	Token(ctx context.Context, scopes []string) (*oauth2.Token, error)
}

// TokenProviderFunc adapts a function to the TokenProvider interface.
type TokenProviderFunc func(ctx context.Context, scopes []string) (*oauth2.Token, error)

// Token implements TokenProvider.
func (f TokenProviderFunc) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	return f(ctx, scopes)
}

// StaticTokenProvider returns a provider that hands out the same token for
// any scope set. Mostly useful in tests and for short-lived tools that
// already hold a token.
func StaticTokenProvider(tok *oauth2.Token) TokenProvider {
	return TokenProviderFunc(func(context.Context, []string) (*oauth2.Token, error) {
		return tok, nil
	})
}

// AnonymousProvider is a TokenProvider for APIs that accept unauthenticated
// calls. Requests carry no Authorization header.
var AnonymousProvider TokenProvider = TokenProviderFunc(
	func(context.Context, []string) (*oauth2.Token, error) { return nil, nil },
)

// Hub bundles the HTTP transport and credentials shared by all calls of one
// API client.
//
// A Hub is safe for concurrent use. It is immutable after construction
// except for the exported override fields, which callers are expected to set
// (if at all) before issuing the first call.
type Hub struct {
	// BasePath is the API endpoint base URL, e.g.
	// "https://cloudtasks.googleapis.com/". May be overridden to point the
	// client at a test server.
	BasePath string

	// UserAgent is an optional additional User-Agent fragment.
	UserAgent string

	// Delegate, if set, is consulted for calls that don't install their own.
	// See Call.Delegate. A nil Delegate means "retry transient failures with
	// the default backoff".
	Delegate func() Delegate

	client *http.Client
	tokens TokenProvider
}

// NewHub returns a Hub issuing requests through client, authorized by tokens.
//
// A nil client means http.DefaultClient. tokens must not be nil; use
// AnonymousProvider for APIs that need no credentials.
func NewHub(client *http.Client, tokens TokenProvider, basePath string) (*Hub, error) {
	if tokens == nil {
		return nil, errors.Reason("token provider is required").Err()
	}
	if basePath == "" {
		return nil, errors.Reason("base path is required").Err()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Hub{
		BasePath: basePath,
		client:   client,
		tokens:   tokens,
	}, nil
}

func (h *Hub) userAgent() string {
	if h.UserAgent == "" {
		return userAgent
	}
	return userAgent + " " + h.UserAgent
}

func (h *Hub) delegate() Delegate {
	if h.Delegate != nil {
		return h.Delegate()
	}
	return DefaultRetryPolicy()
}
