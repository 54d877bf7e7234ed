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
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/auth"
	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/fieldmap"
)

// opInput is everything an operation needs to build and run its call.
type opInput struct {
	args   []string          // positional arguments, validated for count
	body   map[string]any    // assembled request body, nil when none
	query  map[string]string // typed query params by wire name
	extra  map[string]string // free-form query params, clash-checked by the call
	scopes []string          // overrides the operation's default scope if set
	dryRun bool
}

// operation is one entry in a resource group's dispatch table.
type operation struct {
	name  string
	args  []string       // positional argument names, all required
	body  fieldmap.Table // nil when the operation takes no request body
	query fieldmap.Table // typed query options; nil means none
	run   func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error)
}

// opGroup is the static dispatch table of one resource group subcommand.
type opGroup struct {
	name  string
	title string
	ops   map[string]*operation
}

func (g *opGroup) opNames() []string {
	names := make([]string, 0, len(g.ops))
	for name := range g.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// usage renders the operation list for the subcommand's long description.
func (g *opGroup) usage() string {
	var sb strings.Builder
	sb.WriteString("Operations:\n")
	for _, name := range g.opNames() {
		op := g.ops[name]
		sb.WriteString("  ")
		sb.WriteString(name)
		for _, a := range op.args {
			sb.WriteString(" <")
			sb.WriteString(a)
			sb.WriteString(">")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (g *opGroup) command(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: g.name + " <operation> [args...]",
		ShortDesc: g.title,
		LongDesc:  g.title + "\n\n" + g.usage(),
		CommandRun: func() subcommands.CommandRun {
			r := &groupRun{group: g}
			r.Init(authOpts)
			return r
		},
	}
}

type groupRun struct {
	commonFlags
	group *opGroup

	// service overrides newService in tests.
	service func() (*cloudtasks.Service, error)
}

func (r *groupRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	result, err := r.execute(ctx, args)
	if err != nil {
		if merr, ok := err.(errors.MultiError); ok {
			for _, e := range merr {
				logging.Errorf(ctx, "%s", e)
			}
		} else {
			logging.WithError(err).Errorf(ctx, "Error while executing command")
		}
		return 1
	}
	if r.dryRun {
		logging.Infof(ctx, "Dry run: arguments OK, no request was sent.")
		return 0
	}
	if err := writeResult(r.output, result); err != nil {
		logging.WithError(err).Errorf(ctx, "Error while writing output")
		return 1
	}
	return 0
}

// execute resolves the operation, validates all inputs (collecting every
// violation rather than stopping at the first) and runs it.
func (r *groupRun) execute(ctx context.Context, args []string) (any, error) {
	if err := r.Parse(); err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errors.Reason("operation missing, expected one of: %s",
			strings.Join(r.group.opNames(), ", ")).Err()
	}
	op, ok := r.group.ops[args[0]]
	if !ok {
		if hint, found := fieldmap.Suggest(args[0], r.group.opNames()); found {
			return nil, errors.Reason("unknown operation %q, did you mean %q?", args[0], hint).Err()
		}
		return nil, errors.Reason("unknown operation %q, expected one of: %s",
			args[0], strings.Join(r.group.opNames(), ", ")).Err()
	}

	positional := args[1:]
	var merr errors.MultiError
	if len(positional) != len(op.args) {
		merr = append(merr, errors.Reason("%s takes exactly %d positional arguments (%s), got %d",
			op.name, len(op.args), strings.Join(op.args, ", "), len(positional)).Err())
	}

	var body map[string]any
	if op.body == nil {
		if len(r.fields) > 0 {
			merr = append(merr, errors.Reason("%s takes no -r body fields", op.name).Err())
		}
	} else {
		var err error
		if body, err = fieldmap.Assemble(op.body, r.fields); err != nil {
			merr = append(merr, flatten(err)...)
		}
	}

	typed, extra, err := fieldmap.SplitQuery(op.query, r.params)
	if err != nil {
		merr = append(merr, flatten(err)...)
	}
	for k := range extra {
		if !cloudtasks.IsStandardParam(k) {
			logging.Debugf(ctx, "passing %q through as a raw query parameter", k)
		}
	}

	if len(merr) > 0 {
		return nil, merr
	}

	newSvc := r.service
	if newSvc == nil {
		newSvc = r.newService
	}
	svc, err := newSvc()
	if err != nil {
		return nil, err
	}

	return op.run(ctx, svc, opInput{
		args:   positional,
		body:   body,
		query:  typed,
		extra:  extra,
		scopes: r.scopes,
		dryRun: r.dryRun,
	})
}

func flatten(err error) []error {
	if merr, ok := err.(errors.MultiError); ok {
		return merr
	}
	return []error{err}
}

// validator is the part of every call builder dry runs exercise.
type validator interface {
	Validate() (string, error)
}

// finish either validates the assembled call (dry run) or executes it.
func finish[T any](ctx context.Context, in opInput, c validator, do func(context.Context) (T, error)) (any, error) {
	if in.dryRun {
		_, err := c.Validate()
		return nil, err
	}
	return do(ctx)
}

// decodeBody moves the assembled JSON body into a typed schema struct.
func decodeBody(body map[string]any, dst any) error {
	if len(body) == 0 {
		return nil
	}
	blob, err := json.Marshal(body)
	if err != nil {
		return errors.Annotate(err, "serializing request body").Err()
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return errors.Annotate(err, "request body does not fit the schema").Err()
	}
	return nil
}

// asInt64 converts an already-validated int64 query value.
func asInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
