// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package version holds the build-time version identifiers the cmd
// binary logs on startup. Version and CommitHash are populated via
// -ldflags at release build time; a development build keeps the
// defaults below.
package version

import "fmt"

var (
	Version    = "devel"
	CommitHash = ""
)

// GetVersionString renders Version with its commit hash when available.
func GetVersionString() string {
	if CommitHash == "" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s)", Version, CommitHash)
}
