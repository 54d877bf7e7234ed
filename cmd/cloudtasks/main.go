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

// Command cloudtasks is a CLI client for the Cloud Tasks API.
package main

import (
	"os"

	"go.chromium.org/luci/hardcoded/chromeinfra"

	"github.com/luci/cloudcall/cloudtasks"
	"github.com/luci/cloudcall/cloudtasks/cli"
)

func main() {
	opts := chromeinfra.DefaultAuthOptions()
	opts.Scopes = []string{cloudtasks.CloudPlatformScope}
	os.Exit(cli.Main(cli.Params{Auth: opts}, os.Args[1:]))
}
