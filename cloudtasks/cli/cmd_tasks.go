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

func cmdTasks(p Params) *subcommands.Command {
	return tasksGroup.command(p.Auth)
}

// taskBody maps the writable CreateTaskRequest fields.
var taskBody = fieldmap.Table{
	"task.name":              {Path: []string{"task", "name"}, Kind: fieldmap.String},
	"task.schedule-time":     {Path: []string{"task", "scheduleTime"}, Kind: fieldmap.Timestamp},
	"task.dispatch-deadline": {Path: []string{"task", "dispatchDeadline"}, Kind: fieldmap.Duration},

	"task.http-request.url":         {Path: []string{"task", "httpRequest", "url"}, Kind: fieldmap.String},
	"task.http-request.http-method": {Path: []string{"task", "httpRequest", "httpMethod"}, Kind: fieldmap.String},
	"task.http-request.headers":     {Path: []string{"task", "httpRequest", "headers"}, Kind: fieldmap.StringMap},
	"task.http-request.body":        {Path: []string{"task", "httpRequest", "body"}, Kind: fieldmap.Bytes},
	"task.http-request.oauth-token.service-account-email": {
		Path: []string{"task", "httpRequest", "oauthToken", "serviceAccountEmail"}, Kind: fieldmap.String,
	},
	"task.http-request.oauth-token.scope": {
		Path: []string{"task", "httpRequest", "oauthToken", "scope"}, Kind: fieldmap.String,
	},
	"task.http-request.oidc-token.service-account-email": {
		Path: []string{"task", "httpRequest", "oidcToken", "serviceAccountEmail"}, Kind: fieldmap.String,
	},
	"task.http-request.oidc-token.audience": {
		Path: []string{"task", "httpRequest", "oidcToken", "audience"}, Kind: fieldmap.String,
	},

	"task.app-engine-http-request.relative-uri": {
		Path: []string{"task", "appEngineHttpRequest", "relativeUri"}, Kind: fieldmap.String,
	},
	"task.app-engine-http-request.http-method": {
		Path: []string{"task", "appEngineHttpRequest", "httpMethod"}, Kind: fieldmap.String,
	},
	"task.app-engine-http-request.headers": {
		Path: []string{"task", "appEngineHttpRequest", "headers"}, Kind: fieldmap.StringMap,
	},
	"task.app-engine-http-request.body": {
		Path: []string{"task", "appEngineHttpRequest", "body"}, Kind: fieldmap.Bytes,
	},
	"task.app-engine-http-request.app-engine-routing.service": {
		Path: []string{"task", "appEngineHttpRequest", "appEngineRouting", "service"}, Kind: fieldmap.String,
	},
	"task.app-engine-http-request.app-engine-routing.version": {
		Path: []string{"task", "appEngineHttpRequest", "appEngineRouting", "version"}, Kind: fieldmap.String,
	},
	"task.app-engine-http-request.app-engine-routing.instance": {
		Path: []string{"task", "appEngineHttpRequest", "appEngineRouting", "instance"}, Kind: fieldmap.String,
	},

	"response-view": {Path: []string{"responseView"}, Kind: fieldmap.String},
}

var runTaskBody = fieldmap.Table{
	"response-view": {Path: []string{"responseView"}, Kind: fieldmap.String},
}

var tasksGroup = &opGroup{
	name:  "tasks",
	title: "Operations on tasks within a queue.",
	ops: map[string]*operation{
		"list": {
			name: "list",
			args: []string{"parent"},
			query: fieldmap.Table{
				"response-view": {Path: []string{"responseView"}, Kind: fieldmap.String},
				"page-size":     {Path: []string{"pageSize"}, Kind: fieldmap.Int64},
				"page-token":    {Path: []string{"pageToken"}, Kind: fieldmap.String},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Tasks.List(in.args[0])
				for k, v := range in.query {
					switch k {
					case "responseView":
						call.ResponseView(v)
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
			query: fieldmap.Table{
				"response-view": {Path: []string{"responseView"}, Kind: fieldmap.String},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Tasks.Get(in.args[0])
				if v, ok := in.query["responseView"]; ok {
					call.ResponseView(v)
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
		"create": {
			name: "create",
			args: []string{"parent"},
			body: taskBody,
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				req := &cloudtasks.CreateTaskRequest{}
				if err := decodeBody(in.body, req); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.Tasks.Create(in.args[0], req)
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"delete": {
			name: "delete",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Tasks.Delete(in.args[0])
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"run": {
			name: "run",
			args: []string{"name"},
			body: runTaskBody,
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				req := &cloudtasks.RunTaskRequest{}
				if err := decodeBody(in.body, req); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.Tasks.Run(in.args[0], req)
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
