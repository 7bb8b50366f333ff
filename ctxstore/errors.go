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

package ctxstore

import "errors"

var (
	ErrUnexpectedSize = errors.New("ctxstore: context exceeds maximum size")
	ErrInvalidChars   = errors.New("ctxstore: context contains non-printable-ASCII bytes")
	ErrUnknownPrefix  = errors.New("ctxstore: method has no known context prefix")
	ErrMismatch       = errors.New("ctxstore: context does not start with expected prefix")
)
