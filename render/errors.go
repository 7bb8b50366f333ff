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

package render

import "errors"

var (
	// ErrIdxOutOfRange is returned by GetItem for an idx outside
	// [0, NumItems).
	ErrIdxOutOfRange = errors.New("render: row index out of range")
	// ErrUnknownMessage is returned when neither Tx nor Entity is set.
	ErrUnknownMessage = errors.New("render: message has no transaction or entity to render")
)
