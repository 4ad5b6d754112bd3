// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

import "fmt"

// File is a vertical line of squares, a..h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files.
const FileN = 8

func (f File) String() string {
	const chars = "abcdefgh"
	return string(chars[f])
}

// FileFrom parses a single file character ('a'..'h').
func FileFrom(c byte) (File, error) {
	if c < 'a' || c > 'h' {
		return 0, fmt.Errorf("square: %q is not a valid file", c)
	}
	return File(c - 'a'), nil
}
