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
	"strings"

	"github.com/maruel/subcommands"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/fieldmap"
)

func cmdQueues(p Params) *subcommands.Command {
	return queuesGroup.command(p.Auth)
}

// queueBody maps the writable Queue fields. Output-only fields (state,
// purge time, burst size) are deliberately absent.
var queueBody = fieldmap.Table{
	"name": {Path: []string{"name"}, Kind: fieldmap.String},
	"app-engine-http-queue.app-engine-routing-override.service": {
		Path: []string{"appEngineHttpQueue", "appEngineRoutingOverride", "service"}, Kind: fieldmap.String,
	},
	"app-engine-http-queue.app-engine-routing-override.version": {
		Path: []string{"appEngineHttpQueue", "appEngineRoutingOverride", "version"}, Kind: fieldmap.String,
	},
	"app-engine-http-queue.app-engine-routing-override.instance": {
		Path: []string{"appEngineHttpQueue", "appEngineRoutingOverride", "instance"}, Kind: fieldmap.String,
	},
	"rate-limits.max-dispatches-per-second": {
		Path: []string{"rateLimits", "maxDispatchesPerSecond"}, Kind: fieldmap.Float64,
	},
	"rate-limits.max-concurrent-dispatches": {
		Path: []string{"rateLimits", "maxConcurrentDispatches"}, Kind: fieldmap.Int64,
	},
	"retry-config.max-attempts":        {Path: []string{"retryConfig", "maxAttempts"}, Kind: fieldmap.Int64},
	"retry-config.max-retry-duration":  {Path: []string{"retryConfig", "maxRetryDuration"}, Kind: fieldmap.Duration},
	"retry-config.min-backoff":         {Path: []string{"retryConfig", "minBackoff"}, Kind: fieldmap.Duration},
	"retry-config.max-backoff":         {Path: []string{"retryConfig", "maxBackoff"}, Kind: fieldmap.Duration},
	"retry-config.max-doublings":       {Path: []string{"retryConfig", "maxDoublings"}, Kind: fieldmap.Int64},
	"stackdriver-logging-config.sampling-ratio": {
		Path: []string{"stackdriverLoggingConfig", "samplingRatio"}, Kind: fieldmap.Float64,
	},
}

// policyBody maps the scalar SetIamPolicyRequest fields. Bindings are
// structured and cannot be expressed as flat pairs; use the API directly for
// those.
var policyBody = fieldmap.Table{
	"policy.version": {Path: []string{"policy", "version"}, Kind: fieldmap.Int64},
	"policy.etag":    {Path: []string{"policy", "etag"}, Kind: fieldmap.String},
}

var permissionsBody = fieldmap.Table{
	"permissions": {Path: []string{"permissions"}, Kind: fieldmap.StringList},
}

var queuesGroup = &opGroup{
	name:  "queues",
	title: "Operations on Cloud Tasks queues.",
	ops: map[string]*operation{
		"list": {
			name: "list",
			args: []string{"parent"},
			query: fieldmap.Table{
				"filter":     {Path: []string{"filter"}, Kind: fieldmap.String},
				"page-size":  {Path: []string{"pageSize"}, Kind: fieldmap.Int64},
				"page-token": {Path: []string{"pageToken"}, Kind: fieldmap.String},
				"read-mask":  {Path: []string{"readMask"}, Kind: fieldmap.FieldMask},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.List(in.args[0])
				for k, v := range in.query {
					switch k {
					case "filter":
						call.Filter(v)
					case "pageSize":
						call.PageSize(asInt64(v))
					case "pageToken":
						call.PageToken(v)
					case "readMask":
						call.ReadMask(splitMask(v)...)
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
				"read-mask": {Path: []string{"readMask"}, Kind: fieldmap.FieldMask},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Get(in.args[0])
				if v, ok := in.query["readMask"]; ok {
					call.ReadMask(splitMask(v)...)
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
			body: queueBody,
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				queue := &cloudtasks.Queue{}
				if err := decodeBody(in.body, queue); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.Create(in.args[0], queue)
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"patch": {
			name: "patch",
			args: []string{"name"},
			body: queueBody,
			query: fieldmap.Table{
				"update-mask": {Path: []string{"updateMask"}, Kind: fieldmap.FieldMask},
			},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				queue := &cloudtasks.Queue{}
				if err := decodeBody(in.body, queue); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.Patch(in.args[0], queue)
				if v, ok := in.query["updateMask"]; ok {
					call.UpdateMask(splitMask(v)...)
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
		"delete": {
			name: "delete",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Delete(in.args[0])
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"purge": {
			name: "purge",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Purge(in.args[0], &cloudtasks.PurgeQueueRequest{})
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"pause": {
			name: "pause",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Pause(in.args[0], &cloudtasks.PauseQueueRequest{})
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"resume": {
			name: "resume",
			args: []string{"name"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.Resume(in.args[0], &cloudtasks.ResumeQueueRequest{})
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"get-iam-policy": {
			name: "get-iam-policy",
			args: []string{"resource"},
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				call := svc.Projects.Locations.Queues.GetIamPolicy(in.args[0], &cloudtasks.GetIamPolicyRequest{})
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"set-iam-policy": {
			name: "set-iam-policy",
			args: []string{"resource"},
			body: policyBody,
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				req := &cloudtasks.SetIamPolicyRequest{}
				if err := decodeBody(in.body, req); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.SetIamPolicy(in.args[0], req)
				for k, v := range in.extra {
					call.Param(k, v)
				}
				if len(in.scopes) > 0 {
					call.Scopes(in.scopes...)
				}
				return finish(ctx, in, call, call.Do)
			},
		},
		"test-iam-permissions": {
			name: "test-iam-permissions",
			args: []string{"resource"},
			body: permissionsBody,
			run: func(ctx context.Context, svc *cloudtasks.Service, in opInput) (any, error) {
				req := &cloudtasks.TestIamPermissionsRequest{}
				if err := decodeBody(in.body, req); err != nil {
					return nil, err
				}
				call := svc.Projects.Locations.Queues.TestIamPermissions(in.args[0], req)
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

// splitMask turns a comma-separated field mask into its paths, keeping an
// empty mask empty.
func splitMask(mask string) []string {
	if mask == "" {
		return nil
	}
	return strings.Split(mask, ",")
}
