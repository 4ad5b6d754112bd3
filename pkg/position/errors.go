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

package position

import "errors"

// ErrBadFEN is returned when a FEN string is malformed: wrong field
// count, an invalid character in the piece-placement field, an active
// color outside {w,b}, a malformed en-passant field, or non-numeric
// move counters.
var ErrBadFEN = errors.New("position: malformed FEN")

// ErrMalformedPosition is returned when a syntactically valid FEN
// describes a position with zero or two-or-more kings for some side.
var ErrMalformedPosition = errors.New("position: must have exactly one king per side")
