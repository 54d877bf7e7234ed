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

package cloudtasks

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/luci/cloudcall/gapi"
)

const (
	apiName    = "cloudtasks"
	apiVersion = "v2beta3"

	// BasePath is the default API endpoint.
	BasePath = "https://cloudtasks.googleapis.com/"
)

// CloudPlatformScope is the OAuth2 scope every Cloud Tasks operation
// minimally requires.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Service is the Cloud Tasks API hub.
type Service struct {
	hub *gapi.Hub

	Projects *ProjectsService
}

// New returns a Service talking to the production endpoint. A nil client
// means http.DefaultClient.
func New(client *http.Client, tokens gapi.TokenProvider) (*Service, error) {
	hub, err := gapi.NewHub(client, tokens, BasePath)
	if err != nil {
		return nil, err
	}
	hub.UserAgent = apiName + "/" + apiVersion
	return NewWithHub(hub), nil
}

// NewWithHub returns a Service over a preconfigured hub. Useful for pointing
// the client at a test server or installing a hub-wide delegate.
func NewWithHub(hub *gapi.Hub) *Service {
	s := &Service{hub: hub}
	s.Projects = &ProjectsService{s: s}
	s.Projects.Locations = &ProjectsLocationsService{s: s}
	s.Projects.Locations.Queues = &ProjectsLocationsQueuesService{s: s}
	s.Projects.Locations.Queues.Tasks = &ProjectsLocationsQueuesTasksService{s: s}
	return s
}

// Hub returns the underlying hub.
func (s *Service) Hub() *gapi.Hub { return s.hub }

// ProjectsService groups per-project operations.
type ProjectsService struct {
	s *Service

	Locations *ProjectsLocationsService
}

// ProjectsLocationsService exposes the Cloud locations a project's queues
// may live in.
type ProjectsLocationsService struct {
	s *Service

	Queues *ProjectsLocationsQueuesService
}

// ProjectsLocationsQueuesService exposes queue operations.
type ProjectsLocationsQueuesService struct {
	s *Service

	Tasks *ProjectsLocationsQueuesTasksService
}

// ProjectsLocationsQueuesTasksService exposes task operations.
type ProjectsLocationsQueuesTasksService struct {
	s *Service
}

// standardParams are the wire names usable as free-form parameters on every
// method; anything else set via Param is validated against the operation's
// reserved names at execution time.
var standardParams = []string{
	"$.xgafv", "access_token", "callback", "fields", "key", "oauth_token",
	"prettyPrint", "quotaUser", "uploadType", "upload_protocol",
}

// IsStandardParam reports whether name is one of the query parameters
// accepted by every method of the API.
func IsStandardParam(name string) bool {
	for _, p := range standardParams {
		if p == name {
			return true
		}
	}
	return false
}

// List of locations: GET v2beta3/{+name}/locations.

// ProjectsLocationsListCall lists the locations available to a project.
type ProjectsLocationsListCall struct {
	call *gapi.Call
}

// List constructs a call listing locations under "projects/P".
func (r *ProjectsLocationsService) List(name string) *ProjectsLocationsListCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.list", "GET", "v2beta3/{+name}/locations").
		PathParam("name", name).
		Reserve("filter", "pageSize", "pageToken").
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsListCall{call: c}
}

// Filter restricts the listing, e.g. `labels.cloud.googleapis.com/region=us-east1`.
func (c *ProjectsLocationsListCall) Filter(filter string) *ProjectsLocationsListCall {
	c.call.Param("filter", filter)
	return c
}

// PageSize bounds the number of results per page.
func (c *ProjectsLocationsListCall) PageSize(n int64) *ProjectsLocationsListCall {
	c.call.Param("pageSize", strconv.FormatInt(n, 10))
	return c
}

// PageToken resumes a previous listing.
func (c *ProjectsLocationsListCall) PageToken(tok string) *ProjectsLocationsListCall {
	c.call.Param("pageToken", tok)
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsListCall) Param(key, value string) *ProjectsLocationsListCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsListCall) Scopes(scopes ...string) *ProjectsLocationsListCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsListCall) Delegate(d gapi.Delegate) *ProjectsLocationsListCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsListCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsListCall) Do(ctx context.Context) (*ListLocationsResponse, error) {
	ret := &ListLocationsResponse{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsGetCall fetches one location.
type ProjectsLocationsGetCall struct {
	call *gapi.Call
}

// Get constructs a call reading "projects/P/locations/L".
func (r *ProjectsLocationsService) Get(name string) *ProjectsLocationsGetCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.get", "GET", "v2beta3/{+name}").
		PathParam("name", name).
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsGetCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsGetCall) Param(key, value string) *ProjectsLocationsGetCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsGetCall) Scopes(scopes ...string) *ProjectsLocationsGetCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsGetCall) Delegate(d gapi.Delegate) *ProjectsLocationsGetCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsGetCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsGetCall) Do(ctx context.Context) (*Location, error) {
	ret := &Location{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesListCall lists queues.
type ProjectsLocationsQueuesListCall struct {
	call *gapi.Call
}

// List constructs a call listing queues under "projects/P/locations/L".
func (r *ProjectsLocationsQueuesService) List(parent string) *ProjectsLocationsQueuesListCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.list", "GET", "v2beta3/{+parent}/queues").
		PathParam("parent", parent).
		Reserve("filter", "pageSize", "pageToken", "readMask").
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesListCall{call: c}
}

// Filter restricts the listing.
func (c *ProjectsLocationsQueuesListCall) Filter(filter string) *ProjectsLocationsQueuesListCall {
	c.call.Param("filter", filter)
	return c
}

// PageSize bounds the number of results per page.
func (c *ProjectsLocationsQueuesListCall) PageSize(n int64) *ProjectsLocationsQueuesListCall {
	c.call.Param("pageSize", strconv.FormatInt(n, 10))
	return c
}

// PageToken resumes a previous listing.
func (c *ProjectsLocationsQueuesListCall) PageToken(tok string) *ProjectsLocationsQueuesListCall {
	c.call.Param("pageToken", tok)
	return c
}

// ReadMask selects which Queue fields to return. An empty mask is
// serialized as "readMask=".
func (c *ProjectsLocationsQueuesListCall) ReadMask(paths ...string) *ProjectsLocationsQueuesListCall {
	c.call.Param("readMask", strings.Join(paths, ","))
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesListCall) Param(key, value string) *ProjectsLocationsQueuesListCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesListCall) Scopes(scopes ...string) *ProjectsLocationsQueuesListCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesListCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesListCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesListCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesListCall) Do(ctx context.Context) (*ListQueuesResponse, error) {
	ret := &ListQueuesResponse{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesGetCall fetches one queue.
type ProjectsLocationsQueuesGetCall struct {
	call *gapi.Call
}

// Get constructs a call reading "projects/P/locations/L/queues/Q".
func (r *ProjectsLocationsQueuesService) Get(name string) *ProjectsLocationsQueuesGetCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.get", "GET", "v2beta3/{+name}").
		PathParam("name", name).
		Reserve("readMask").
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesGetCall{call: c}
}

// ReadMask selects which Queue fields to return.
func (c *ProjectsLocationsQueuesGetCall) ReadMask(paths ...string) *ProjectsLocationsQueuesGetCall {
	c.call.Param("readMask", strings.Join(paths, ","))
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesGetCall) Param(key, value string) *ProjectsLocationsQueuesGetCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesGetCall) Scopes(scopes ...string) *ProjectsLocationsQueuesGetCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesGetCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesGetCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesGetCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesGetCall) Do(ctx context.Context) (*Queue, error) {
	ret := &Queue{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesCreateCall creates a queue.
type ProjectsLocationsQueuesCreateCall struct {
	call *gapi.Call
}

// Create constructs a call creating a queue under
// "projects/P/locations/L".
func (r *ProjectsLocationsQueuesService) Create(parent string, queue *Queue) *ProjectsLocationsQueuesCreateCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.create", "POST", "v2beta3/{+parent}/queues").
		PathParam("parent", parent).
		DefaultScopes(CloudPlatformScope).
		Body(queue)
	return &ProjectsLocationsQueuesCreateCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesCreateCall) Param(key, value string) *ProjectsLocationsQueuesCreateCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesCreateCall) Scopes(scopes ...string) *ProjectsLocationsQueuesCreateCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesCreateCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesCreateCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesCreateCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesCreateCall) Do(ctx context.Context) (*Queue, error) {
	ret := &Queue{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesPatchCall updates a queue.
type ProjectsLocationsQueuesPatchCall struct {
	call *gapi.Call
}

// Patch constructs a call updating the queue named by queue.Name.
func (r *ProjectsLocationsQueuesService) Patch(name string, queue *Queue) *ProjectsLocationsQueuesPatchCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.patch", "PATCH", "v2beta3/{+name}").
		PathParam("name", name).
		Reserve("updateMask").
		DefaultScopes(CloudPlatformScope).
		Body(queue)
	return &ProjectsLocationsQueuesPatchCall{call: c}
}

// UpdateMask names the Queue fields being changed. Required by the API.
func (c *ProjectsLocationsQueuesPatchCall) UpdateMask(paths ...string) *ProjectsLocationsQueuesPatchCall {
	c.call.Param("updateMask", strings.Join(paths, ","))
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesPatchCall) Param(key, value string) *ProjectsLocationsQueuesPatchCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesPatchCall) Scopes(scopes ...string) *ProjectsLocationsQueuesPatchCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesPatchCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesPatchCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesPatchCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesPatchCall) Do(ctx context.Context) (*Queue, error) {
	ret := &Queue{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesDeleteCall deletes a queue.
type ProjectsLocationsQueuesDeleteCall struct {
	call *gapi.Call
}

// Delete constructs a call deleting "projects/P/locations/L/queues/Q".
func (r *ProjectsLocationsQueuesService) Delete(name string) *ProjectsLocationsQueuesDeleteCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.delete", "DELETE", "v2beta3/{+name}").
		PathParam("name", name).
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesDeleteCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesDeleteCall) Param(key, value string) *ProjectsLocationsQueuesDeleteCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesDeleteCall) Scopes(scopes ...string) *ProjectsLocationsQueuesDeleteCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesDeleteCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesDeleteCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesDeleteCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesDeleteCall) Do(ctx context.Context) (*Empty, error) {
	ret := &Empty{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// queueActionCall covers the four POST v2beta3/{+name}:<verb> queue
// operations that return a Queue (purge, pause, resume) — they differ only
// in method id, suffix and request body type.
type queueActionCall struct {
	call *gapi.Call
}

func (r *ProjectsLocationsQueuesService) queueAction(op, suffix, name string, body any) queueActionCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues."+op, "POST", "v2beta3/{+name}:"+suffix).
		PathParam("name", name).
		DefaultScopes(CloudPlatformScope).
		Body(body)
	return queueActionCall{call: c}
}

func (c queueActionCall) do(ctx context.Context) (*Queue, error) {
	ret := &Queue{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesPurgeCall purges all tasks from a queue.
type ProjectsLocationsQueuesPurgeCall struct{ queueActionCall }

// Purge constructs a call purging every task in the queue.
func (r *ProjectsLocationsQueuesService) Purge(name string, req *PurgeQueueRequest) *ProjectsLocationsQueuesPurgeCall {
	return &ProjectsLocationsQueuesPurgeCall{r.queueAction("purge", "purge", name, req)}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesPurgeCall) Param(key, value string) *ProjectsLocationsQueuesPurgeCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesPurgeCall) Scopes(scopes ...string) *ProjectsLocationsQueuesPurgeCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesPurgeCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesPurgeCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesPurgeCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesPurgeCall) Do(ctx context.Context) (*Queue, error) {
	return c.do(ctx)
}

// ProjectsLocationsQueuesPauseCall pauses task dispatch on a queue.
type ProjectsLocationsQueuesPauseCall struct{ queueActionCall }

// Pause constructs a call pausing the queue.
func (r *ProjectsLocationsQueuesService) Pause(name string, req *PauseQueueRequest) *ProjectsLocationsQueuesPauseCall {
	return &ProjectsLocationsQueuesPauseCall{r.queueAction("pause", "pause", name, req)}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesPauseCall) Param(key, value string) *ProjectsLocationsQueuesPauseCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesPauseCall) Scopes(scopes ...string) *ProjectsLocationsQueuesPauseCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesPauseCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesPauseCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesPauseCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesPauseCall) Do(ctx context.Context) (*Queue, error) {
	return c.do(ctx)
}

// ProjectsLocationsQueuesResumeCall resumes a paused or disabled queue.
type ProjectsLocationsQueuesResumeCall struct{ queueActionCall }

// Resume constructs a call resuming the queue.
func (r *ProjectsLocationsQueuesService) Resume(name string, req *ResumeQueueRequest) *ProjectsLocationsQueuesResumeCall {
	return &ProjectsLocationsQueuesResumeCall{r.queueAction("resume", "resume", name, req)}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesResumeCall) Param(key, value string) *ProjectsLocationsQueuesResumeCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesResumeCall) Scopes(scopes ...string) *ProjectsLocationsQueuesResumeCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesResumeCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesResumeCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesResumeCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesResumeCall) Do(ctx context.Context) (*Queue, error) {
	return c.do(ctx)
}

// ProjectsLocationsQueuesGetIamPolicyCall reads a queue's IAM policy.
type ProjectsLocationsQueuesGetIamPolicyCall struct {
	call *gapi.Call
}

// GetIamPolicy constructs a call reading the queue's policy.
func (r *ProjectsLocationsQueuesService) GetIamPolicy(resource string, req *GetIamPolicyRequest) *ProjectsLocationsQueuesGetIamPolicyCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.getIamPolicy", "POST", "v2beta3/{+resource}:getIamPolicy").
		PathParam("resource", resource).
		DefaultScopes(CloudPlatformScope).
		Body(req)
	return &ProjectsLocationsQueuesGetIamPolicyCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesGetIamPolicyCall) Param(key, value string) *ProjectsLocationsQueuesGetIamPolicyCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesGetIamPolicyCall) Scopes(scopes ...string) *ProjectsLocationsQueuesGetIamPolicyCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesGetIamPolicyCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesGetIamPolicyCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesGetIamPolicyCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesGetIamPolicyCall) Do(ctx context.Context) (*Policy, error) {
	ret := &Policy{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesSetIamPolicyCall replaces a queue's IAM policy.
type ProjectsLocationsQueuesSetIamPolicyCall struct {
	call *gapi.Call
}

// SetIamPolicy constructs a call replacing the queue's policy.
func (r *ProjectsLocationsQueuesService) SetIamPolicy(resource string, req *SetIamPolicyRequest) *ProjectsLocationsQueuesSetIamPolicyCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.setIamPolicy", "POST", "v2beta3/{+resource}:setIamPolicy").
		PathParam("resource", resource).
		DefaultScopes(CloudPlatformScope).
		Body(req)
	return &ProjectsLocationsQueuesSetIamPolicyCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesSetIamPolicyCall) Param(key, value string) *ProjectsLocationsQueuesSetIamPolicyCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesSetIamPolicyCall) Scopes(scopes ...string) *ProjectsLocationsQueuesSetIamPolicyCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesSetIamPolicyCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesSetIamPolicyCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesSetIamPolicyCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesSetIamPolicyCall) Do(ctx context.Context) (*Policy, error) {
	ret := &Policy{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTestIamPermissionsCall probes the caller's
// permissions on a queue.
type ProjectsLocationsQueuesTestIamPermissionsCall struct {
	call *gapi.Call
}

// TestIamPermissions constructs a call probing permissions on the queue.
func (r *ProjectsLocationsQueuesService) TestIamPermissions(resource string, req *TestIamPermissionsRequest) *ProjectsLocationsQueuesTestIamPermissionsCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.testIamPermissions", "POST", "v2beta3/{+resource}:testIamPermissions").
		PathParam("resource", resource).
		DefaultScopes(CloudPlatformScope).
		Body(req)
	return &ProjectsLocationsQueuesTestIamPermissionsCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTestIamPermissionsCall) Param(key, value string) *ProjectsLocationsQueuesTestIamPermissionsCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTestIamPermissionsCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTestIamPermissionsCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTestIamPermissionsCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTestIamPermissionsCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTestIamPermissionsCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesTestIamPermissionsCall) Do(ctx context.Context) (*TestIamPermissionsResponse, error) {
	ret := &TestIamPermissionsResponse{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTasksListCall lists tasks in a queue.
type ProjectsLocationsQueuesTasksListCall struct {
	call *gapi.Call
}

// List constructs a call listing tasks under
// "projects/P/locations/L/queues/Q".
func (r *ProjectsLocationsQueuesTasksService) List(parent string) *ProjectsLocationsQueuesTasksListCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.tasks.list", "GET", "v2beta3/{+parent}/tasks").
		PathParam("parent", parent).
		Reserve("responseView", "pageSize", "pageToken").
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesTasksListCall{call: c}
}

// ResponseView selects "BASIC" or "FULL" task payloads.
func (c *ProjectsLocationsQueuesTasksListCall) ResponseView(view string) *ProjectsLocationsQueuesTasksListCall {
	c.call.Param("responseView", view)
	return c
}

// PageSize bounds the number of results per page.
func (c *ProjectsLocationsQueuesTasksListCall) PageSize(n int64) *ProjectsLocationsQueuesTasksListCall {
	c.call.Param("pageSize", strconv.FormatInt(n, 10))
	return c
}

// PageToken resumes a previous listing.
func (c *ProjectsLocationsQueuesTasksListCall) PageToken(tok string) *ProjectsLocationsQueuesTasksListCall {
	c.call.Param("pageToken", tok)
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTasksListCall) Param(key, value string) *ProjectsLocationsQueuesTasksListCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTasksListCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTasksListCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTasksListCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTasksListCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTasksListCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesTasksListCall) Do(ctx context.Context) (*ListTasksResponse, error) {
	ret := &ListTasksResponse{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTasksGetCall fetches one task.
type ProjectsLocationsQueuesTasksGetCall struct {
	call *gapi.Call
}

// Get constructs a call reading
// "projects/P/locations/L/queues/Q/tasks/T".
func (r *ProjectsLocationsQueuesTasksService) Get(name string) *ProjectsLocationsQueuesTasksGetCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.tasks.get", "GET", "v2beta3/{+name}").
		PathParam("name", name).
		Reserve("responseView").
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesTasksGetCall{call: c}
}

// ResponseView selects "BASIC" or "FULL" task payloads.
func (c *ProjectsLocationsQueuesTasksGetCall) ResponseView(view string) *ProjectsLocationsQueuesTasksGetCall {
	c.call.Param("responseView", view)
	return c
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTasksGetCall) Param(key, value string) *ProjectsLocationsQueuesTasksGetCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTasksGetCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTasksGetCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTasksGetCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTasksGetCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTasksGetCall) Validate() (string, error) { return c.call.Validate() }

// Do executes the call.
func (c *ProjectsLocationsQueuesTasksGetCall) Do(ctx context.Context) (*Task, error) {
	ret := &Task{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTasksCreateCall creates a task.
type ProjectsLocationsQueuesTasksCreateCall struct {
	call *gapi.Call
}

// Create constructs a call adding a task to the queue.
func (r *ProjectsLocationsQueuesTasksService) Create(parent string, req *CreateTaskRequest) *ProjectsLocationsQueuesTasksCreateCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.tasks.create", "POST", "v2beta3/{+parent}/tasks").
		PathParam("parent", parent).
		DefaultScopes(CloudPlatformScope).
		Body(req)
	return &ProjectsLocationsQueuesTasksCreateCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTasksCreateCall) Param(key, value string) *ProjectsLocationsQueuesTasksCreateCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTasksCreateCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTasksCreateCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTasksCreateCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTasksCreateCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTasksCreateCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesTasksCreateCall) Do(ctx context.Context) (*Task, error) {
	ret := &Task{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTasksDeleteCall deletes a task.
type ProjectsLocationsQueuesTasksDeleteCall struct {
	call *gapi.Call
}

// Delete constructs a call removing a not-yet-executed task.
func (r *ProjectsLocationsQueuesTasksService) Delete(name string) *ProjectsLocationsQueuesTasksDeleteCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.tasks.delete", "DELETE", "v2beta3/{+name}").
		PathParam("name", name).
		DefaultScopes(CloudPlatformScope)
	return &ProjectsLocationsQueuesTasksDeleteCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTasksDeleteCall) Param(key, value string) *ProjectsLocationsQueuesTasksDeleteCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTasksDeleteCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTasksDeleteCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTasksDeleteCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTasksDeleteCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTasksDeleteCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesTasksDeleteCall) Do(ctx context.Context) (*Empty, error) {
	ret := &Empty{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}

// ProjectsLocationsQueuesTasksRunCall forces immediate dispatch of a task.
type ProjectsLocationsQueuesTasksRunCall struct {
	call *gapi.Call
}

// Run constructs a call dispatching the task now, regardless of schedule.
func (r *ProjectsLocationsQueuesTasksService) Run(name string, req *RunTaskRequest) *ProjectsLocationsQueuesTasksRunCall {
	c := r.s.hub.NewCall("cloudtasks.projects.locations.queues.tasks.run", "POST", "v2beta3/{+name}:run").
		PathParam("name", name).
		DefaultScopes(CloudPlatformScope).
		Body(req)
	return &ProjectsLocationsQueuesTasksRunCall{call: c}
}

// Param sets a free-form query parameter.
func (c *ProjectsLocationsQueuesTasksRunCall) Param(key, value string) *ProjectsLocationsQueuesTasksRunCall {
	c.call.AdditionalParam(key, value)
	return c
}

// Scopes overrides the authorization scopes.
func (c *ProjectsLocationsQueuesTasksRunCall) Scopes(scopes ...string) *ProjectsLocationsQueuesTasksRunCall {
	c.call.Scopes(scopes...)
	return c
}

// Delegate overrides the retry policy.
func (c *ProjectsLocationsQueuesTasksRunCall) Delegate(d gapi.Delegate) *ProjectsLocationsQueuesTasksRunCall {
	c.call.Delegate(d)
	return c
}

// Validate checks parameters and assembles the URL without any I/O.
func (c *ProjectsLocationsQueuesTasksRunCall) Validate() (string, error) {
	return c.call.Validate()
}

// Do executes the call.
func (c *ProjectsLocationsQueuesTasksRunCall) Do(ctx context.Context) (*Task, error) {
	ret := &Task{}
	sr, err := c.call.Do(ctx, ret)
	if err != nil {
		return nil, err
	}
	ret.ServerResponse = *sr
	return ret, nil
}
