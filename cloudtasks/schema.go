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

// Schema types mirroring the Cloud Tasks v2beta3 REST resources.
//
// All fields are optional: only explicitly-set fields are transmitted, and
// empty values are stripped on marshal. ForceSendFields and NullFields use
// Go field names and follow the google-api-go-client convention for sending
// empty or explicit-null values (needed by Patch requests).
//
// Timestamps are RFC 3339 strings, durations are decimal-seconds strings
// ("3.5s") and byte blobs are base64 strings, as on the wire; see the gapi
// codec helpers.

import (
	"encoding/json"

	"github.com/luci/cloudcall/gapi"
)

// Queue is a queue of related tasks.
type Queue struct {
	// Name is the full resource name,
	// "projects/P/locations/L/queues/Q". Output only on create.
	Name string `json:"name,omitempty"`

	// AppEngineHttpQueue, if set, makes App Engine the dispatch target for
	// tasks in this queue.
	AppEngineHttpQueue *AppEngineHttpQueue `json:"appEngineHttpQueue,omitempty"`

	// RateLimits throttle task dispatches.
	RateLimits *RateLimits `json:"rateLimits,omitempty"`

	// RetryConfig governs retries of failed task attempts.
	RetryConfig *RetryConfig `json:"retryConfig,omitempty"`

	// State is the queue state: "RUNNING", "PAUSED" or "DISABLED". Output
	// only; use the pause/resume operations to change it.
	State string `json:"state,omitempty"`

	// PurgeTime is the last queue purge timestamp. Output only.
	PurgeTime string `json:"purgeTime,omitempty"`

	// StackdriverLoggingConfig controls per-operation logging.
	StackdriverLoggingConfig *StackdriverLoggingConfig `json:"stackdriverLoggingConfig,omitempty"`

	gapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Queue) MarshalJSON() ([]byte, error) {
	type noMethod Queue
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// RateLimits bounds the dispatch rate of a queue.
type RateLimits struct {
	// MaxDispatchesPerSecond is the maximum task dispatch rate.
	MaxDispatchesPerSecond float64 `json:"maxDispatchesPerSecond,omitempty"`

	// MaxBurstSize bounds dispatch bursts. Output only.
	MaxBurstSize int64 `json:"maxBurstSize,omitempty"`

	// MaxConcurrentDispatches is the maximum number of concurrent in-flight
	// tasks.
	MaxConcurrentDispatches int64 `json:"maxConcurrentDispatches,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *RateLimits) MarshalJSON() ([]byte, error) {
	type noMethod RateLimits
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// RetryConfig governs retries of failed task attempts.
type RetryConfig struct {
	// MaxAttempts is the number of attempts per task; -1 means unlimited.
	MaxAttempts int64 `json:"maxAttempts,omitempty"`

	// MaxRetryDuration limits the total retry window, e.g. "3600s".
	MaxRetryDuration string `json:"maxRetryDuration,omitempty"`

	// MinBackoff and MaxBackoff bound the per-retry backoff.
	MinBackoff string `json:"minBackoff,omitempty"`
	MaxBackoff string `json:"maxBackoff,omitempty"`

	// MaxDoublings is how many times the backoff doubles before growing
	// linearly.
	MaxDoublings int64 `json:"maxDoublings,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *RetryConfig) MarshalJSON() ([]byte, error) {
	type noMethod RetryConfig
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// StackdriverLoggingConfig controls Cloud Logging of queue operations.
type StackdriverLoggingConfig struct {
	// SamplingRatio is the fraction of operations logged, in [0.0, 1.0].
	SamplingRatio float64 `json:"samplingRatio,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *StackdriverLoggingConfig) MarshalJSON() ([]byte, error) {
	type noMethod StackdriverLoggingConfig
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// AppEngineHttpQueue configures App Engine dispatch for a queue.
type AppEngineHttpQueue struct {
	// AppEngineRoutingOverride, if set, overrides task-level routing.
	AppEngineRoutingOverride *AppEngineRouting `json:"appEngineRoutingOverride,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *AppEngineHttpQueue) MarshalJSON() ([]byte, error) {
	type noMethod AppEngineHttpQueue
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// AppEngineRouting selects the App Engine service/version/instance a task
// is delivered to.
type AppEngineRouting struct {
	Service  string `json:"service,omitempty"`
	Version  string `json:"version,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Host is the resolved target host. Output only.
	Host string `json:"host,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *AppEngineRouting) MarshalJSON() ([]byte, error) {
	type noMethod AppEngineRouting
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Task is a unit of scheduled work.
type Task struct {
	// Name is the full resource name,
	// "projects/P/locations/L/queues/Q/tasks/T".
	Name string `json:"name,omitempty"`

	// AppEngineHttpRequest delivers the task to an App Engine handler.
	AppEngineHttpRequest *AppEngineHttpRequest `json:"appEngineHttpRequest,omitempty"`

	// HttpRequest delivers the task to an arbitrary HTTP endpoint.
	HttpRequest *HttpRequest `json:"httpRequest,omitempty"`

	// ScheduleTime is when the task is scheduled to be attempted.
	ScheduleTime string `json:"scheduleTime,omitempty"`

	// CreateTime is the creation timestamp. Output only.
	CreateTime string `json:"createTime,omitempty"`

	// DispatchDeadline bounds a single attempt, e.g. "600s".
	DispatchDeadline string `json:"dispatchDeadline,omitempty"`

	// DispatchCount and ResponseCount tally attempts. Output only.
	DispatchCount int64 `json:"dispatchCount,omitempty"`
	ResponseCount int64 `json:"responseCount,omitempty"`

	// FirstAttempt and LastAttempt describe attempt history. Output only.
	FirstAttempt *Attempt `json:"firstAttempt,omitempty"`
	LastAttempt  *Attempt `json:"lastAttempt,omitempty"`

	// View is the detail level this Task was read at: "BASIC" or "FULL".
	View string `json:"view,omitempty"`

	gapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Task) MarshalJSON() ([]byte, error) {
	type noMethod Task
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// HttpRequest is an HTTP task target.
type HttpRequest struct {
	// Url is the full target URL. Required.
	Url string `json:"url,omitempty"`

	// HttpMethod defaults to "POST".
	HttpMethod string `json:"httpMethod,omitempty"`

	Headers map[string]string `json:"headers,omitempty"`

	// Body is the base64-encoded request payload. Only legal for POST, PUT
	// and PATCH.
	Body string `json:"body,omitempty"`

	// OauthToken or OidcToken, if set, attach a generated credential to the
	// dispatched request. At most one may be set.
	OauthToken *OAuthToken `json:"oauthToken,omitempty"`
	OidcToken  *OidcToken  `json:"oidcToken,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *HttpRequest) MarshalJSON() ([]byte, error) {
	type noMethod HttpRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// OAuthToken requests an OAuth2 access token for the dispatched request.
type OAuthToken struct {
	ServiceAccountEmail string `json:"serviceAccountEmail,omitempty"`
	Scope               string `json:"scope,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *OAuthToken) MarshalJSON() ([]byte, error) {
	type noMethod OAuthToken
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// OidcToken requests an OIDC identity token for the dispatched request.
type OidcToken struct {
	ServiceAccountEmail string `json:"serviceAccountEmail,omitempty"`
	Audience            string `json:"audience,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *OidcToken) MarshalJSON() ([]byte, error) {
	type noMethod OidcToken
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// AppEngineHttpRequest is an App Engine task target.
type AppEngineHttpRequest struct {
	HttpMethod       string            `json:"httpMethod,omitempty"`
	AppEngineRouting *AppEngineRouting `json:"appEngineRouting,omitempty"`
	RelativeUri      string            `json:"relativeUri,omitempty"`
	Headers          map[string]string `json:"headers,omitempty"`

	// Body is the base64-encoded request payload.
	Body string `json:"body,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *AppEngineHttpRequest) MarshalJSON() ([]byte, error) {
	type noMethod AppEngineHttpRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Attempt records one dispatch of a task.
type Attempt struct {
	ScheduleTime string `json:"scheduleTime,omitempty"`
	DispatchTime string `json:"dispatchTime,omitempty"`
	ResponseTime string `json:"responseTime,omitempty"`

	// ResponseStatus is the dispatch outcome; unset while in flight.
	ResponseStatus *Status `json:"responseStatus,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Attempt) MarshalJSON() ([]byte, error) {
	type noMethod Attempt
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Status is the google.rpc.Status error model.
type Status struct {
	Code    int64             `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details []json.RawMessage `json:"details,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Status) MarshalJSON() ([]byte, error) {
	type noMethod Status
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Location is a Cloud region or zone an API resource lives in.
type Location struct {
	Name        string            `json:"name,omitempty"`
	LocationId  string            `json:"locationId,omitempty"`
	DisplayName string            `json:"displayName,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Metadata    json.RawMessage   `json:"metadata,omitempty"`

	gapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Location) MarshalJSON() ([]byte, error) {
	type noMethod Location
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Policy is an IAM policy document.
type Policy struct {
	Version  int64      `json:"version,omitempty"`
	Bindings []*Binding `json:"bindings,omitempty"`

	// Etag guards concurrent policy mutations; base64.
	Etag string `json:"etag,omitempty"`

	gapi.ServerResponse `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Policy) MarshalJSON() ([]byte, error) {
	type noMethod Policy
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Binding grants a role to a set of members.
type Binding struct {
	Role      string   `json:"role,omitempty"`
	Members   []string `json:"members,omitempty"`
	Condition *Expr    `json:"condition,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Binding) MarshalJSON() ([]byte, error) {
	type noMethod Binding
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Expr is a CEL condition expression.
type Expr struct {
	Expression  string `json:"expression,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *Expr) MarshalJSON() ([]byte, error) {
	type noMethod Expr
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// Empty is the empty response message.
type Empty struct {
	gapi.ServerResponse `json:"-"`
}

// CreateTaskRequest is the request body for tasks.create.
type CreateTaskRequest struct {
	Task *Task `json:"task,omitempty"`

	// ResponseView selects the detail level of the returned Task.
	ResponseView string `json:"responseView,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *CreateTaskRequest) MarshalJSON() ([]byte, error) {
	type noMethod CreateTaskRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// RunTaskRequest is the request body for tasks.run.
type RunTaskRequest struct {
	ResponseView string `json:"responseView,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *RunTaskRequest) MarshalJSON() ([]byte, error) {
	type noMethod RunTaskRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// PurgeQueueRequest is the (empty) request body for queues.purge.
type PurgeQueueRequest struct{}

// PauseQueueRequest is the (empty) request body for queues.pause.
type PauseQueueRequest struct{}

// ResumeQueueRequest is the (empty) request body for queues.resume.
type ResumeQueueRequest struct{}

// GetIamPolicyRequest is the (empty) request body for queues.getIamPolicy.
type GetIamPolicyRequest struct{}

// SetIamPolicyRequest is the request body for queues.setIamPolicy.
type SetIamPolicyRequest struct {
	Policy *Policy `json:"policy,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *SetIamPolicyRequest) MarshalJSON() ([]byte, error) {
	type noMethod SetIamPolicyRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// TestIamPermissionsRequest is the request body for
// queues.testIamPermissions.
type TestIamPermissionsRequest struct {
	Permissions []string `json:"permissions,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s *TestIamPermissionsRequest) MarshalJSON() ([]byte, error) {
	type noMethod TestIamPermissionsRequest
	return gapi.MarshalSchema((*noMethod)(s), s.ForceSendFields, s.NullFields)
}

// TestIamPermissionsResponse lists the permissions the caller holds.
type TestIamPermissionsResponse struct {
	Permissions []string `json:"permissions,omitempty"`

	gapi.ServerResponse `json:"-"`
}

// ListQueuesResponse is the response of queues.list.
type ListQueuesResponse struct {
	Queues        []*Queue `json:"queues,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`

	gapi.ServerResponse `json:"-"`
}

// ListTasksResponse is the response of tasks.list.
type ListTasksResponse struct {
	Tasks         []*Task `json:"tasks,omitempty"`
	NextPageToken string  `json:"nextPageToken,omitempty"`

	gapi.ServerResponse `json:"-"`
}

// ListLocationsResponse is the response of locations.list.
type ListLocationsResponse struct {
	Locations     []*Location `json:"locations,omitempty"`
	NextPageToken string      `json:"nextPageToken,omitempty"`

	gapi.ServerResponse `json:"-"`
}
