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
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/maruel/subcommands"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/oauth2"

	"go.chromium.org/luci/auth"
	"go.chromium.org/luci/auth/client/authcli"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/flag/stringlistflag"
	"go.chromium.org/luci/common/flag/stringmapflag"
	"go.chromium.org/luci/common/logging"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/gapi"
)

// defaultConfigDir holds the per-API OAuth token caches; "~" is expanded at
// parse time.
const defaultConfigDir = "~/.config/cloudcall"

type commonFlags struct {
	subcommands.CommandRunBase
	authFlags      authcli.Flags
	parsedAuthOpts auth.Options

	params    stringmapflag.Value
	fields    stringmapflag.Value
	output    string
	scopes    stringlistflag.Flag
	configDir string
	dryRun    bool
	logConfig logging.Config // for -log-level, used by ModifyContext
}

func (c *commonFlags) Init(authOpts auth.Options) {
	c.authFlags.Register(&c.Flags, authOpts)
	c.logConfig.Level = logging.Info
	c.logConfig.AddFlags(&c.Flags)
	c.Flags.Var(&c.params, "p",
		"(repeatable) a `key=value` query parameter. Known option names are "+
			"type-checked; anything else is passed through as a raw parameter.")
	c.Flags.Var(&c.fields, "r",
		"(repeatable) a `key=value` request body field, named by its "+
			"kebab-case dotted path, e.g. -r rate-limits.max-dispatches-per-second=10.")
	c.Flags.StringVar(&c.output, "o", "-",
		"Path to write the JSON result to ('-' for stdout).")
	c.Flags.Var(&c.scopes, "scope",
		"(repeatable) an OAuth2 scope `url` overriding the operation's default scope.")
	c.Flags.StringVar(&c.configDir, "config-dir", defaultConfigDir,
		"Directory holding cached credentials, one subdirectory per API.")
	c.Flags.BoolVar(&c.dryRun, "dry-run", false,
		"Validate arguments and assemble the request without talking to the network.")
}

// ModifyContext implements cli.ContextModificator, applying -log-level.
func (c *commonFlags) ModifyContext(ctx context.Context) context.Context {
	return c.logConfig.Set(ctx)
}

func (c *commonFlags) Parse() error {
	var err error
	c.parsedAuthOpts, err = c.authFlags.Options()
	if err != nil {
		return err
	}
	dir, err := homedir.Expand(c.configDir)
	if err != nil {
		return errors.Annotate(err, "expanding -config-dir").Err()
	}
	c.parsedAuthOpts.SecretsDir = filepath.Join(dir, "cloudtasks")
	return nil
}

// newService builds the API client. Dry runs get an anonymous provider, so
// misconfigured credentials never block validation and no token is ever
// fetched.
func (c *commonFlags) newService() (*cloudtasks.Service, error) {
	if c.dryRun {
		return cloudtasks.New(nil, gapi.AnonymousProvider)
	}
	return cloudtasks.New(nil, &authTokenProvider{opts: c.parsedAuthOpts})
}

// authTokenProvider adapts the installed-app OAuth flow (with its on-disk
// token cache under SecretsDir) to gapi.TokenProvider. One authenticator is
// kept per requested scope set.
type authTokenProvider struct {
	opts auth.Options

	m     sync.Mutex
	auths map[string]*auth.Authenticator
}

func (p *authTokenProvider) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	sorted := append([]string(nil), scopes...)
	sort.Strings(sorted)
	key := strings.Join(sorted, " ")

	p.m.Lock()
	a := p.auths[key]
	if a == nil {
		opts := p.opts
		opts.Scopes = sorted
		a = auth.NewAuthenticator(ctx, auth.SilentLogin, opts)
		if p.auths == nil {
			p.auths = map[string]*auth.Authenticator{}
		}
		p.auths[key] = a
	}
	p.m.Unlock()

	return a.GetAccessToken(time.Minute)
}

// writeResult pretty-prints v as JSON to the -o target.
func writeResult(file string, v any) error {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Annotate(err, "serializing result").Err()
	}
	blob = append(blob, '\n')
	if file == "-" {
		_, err = os.Stdout.Write(blob)
		return err
	}
	return os.WriteFile(file, blob, 0664)
}
