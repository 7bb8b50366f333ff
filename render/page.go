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

// pageWidth is the fixed column width a single display page can hold;
// longer rendered values are split across pages of this size.
const pageWidth = 40

// pageCount reports how many pageWidth-wide pages value splits into. Every
// value has at least one page, even the empty string.
func pageCount(value string) uint8 {
	if len(value) == 0 {
		return 1
	}
	n := (len(value) + pageWidth - 1) / pageWidth
	return uint8(n)
}

// page returns the pageIdx-th pageWidth-wide slice of value. Requests with
// pageIdx >= pageCount(value) are undefined by this layer — the UI is
// expected not to make them.
func page(value string, pageIdx uint8) string {
	start := int(pageIdx) * pageWidth
	if start >= len(value) {
		return ""
	}
	end := start + pageWidth
	if end > len(value) {
		end = len(value)
	}
	return value[start:end]
}
