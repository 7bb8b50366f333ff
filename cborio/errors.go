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

package cborio

import "errors"

// These are package-local sentinels so cborio has no dependency on the
// root module (which in turn depends on cborio for its decoder). Callers
// map them onto signercore.Code values at the package boundary.
var (
	ErrBufferEnd             = errors.New("cborio: unexpected buffer end")
	ErrUnexpectedType        = errors.New("cborio: unexpected type")
	ErrUnexpectedValue       = errors.New("cborio: unexpected value")
	ErrUnexpectedNumberItems = errors.New("cborio: unexpected number of map/array items")
)
