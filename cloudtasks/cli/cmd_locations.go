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

	"github.com/maruel/subcommands"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/fieldmap"
)

func cmdLocations(p Params) *subcommands.Command {
	return locationsGroup.command(p.Auth)
}

var locationsGroup = &opGroup{
	name:  "locations",
	title: "Lists and inspects the Cloud locations a project's queues may live in.",
	ops: map[string]*operation{
		"list": {
			name: "list",
			args: []string{"name"},
			query: fieldmap.Table{
				"filter":     {Path: []string{"filter"}, Kind: fieldmap.String},
				"page-size":  {Path: []string{"pageSize"}, Kind: fieldmap.Int64},
				"page-token": {Path: []string{"pageToken"}, Kind: fieldmap.String},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.List(in.args[0])
				for k, v := range in.query {
					switch k {
					case "filter":
						call.Filter(v)
					case "pageSize":
						call.PageSize(asInt64(v))
					case "pageToken":
						call.PageToken(v)
					}
				}
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"get": {
			name: "get",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Get(in.args[0])
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
	},
}
