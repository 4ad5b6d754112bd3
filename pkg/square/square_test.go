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

package square_test

import (
	"testing"

	"github.com/phillipduarte/enoki-chess/pkg/square"
)

func TestNew(t *testing.T) {
	tests := []struct {
		file square.File
		rank square.Rank
		want square.Square
	}{
		{square.FileA, square.Rank1, square.A1},
		{square.FileH, square.Rank1, square.H1},
		{square.FileA, square.Rank8, square.A8},
		{square.FileH, square.Rank8, square.H8},
		{square.FileE, square.Rank4, square.E4},
	}

	for _, test := range tests {
		if got := square.New(test.file, test.rank); got != test.want {
			t.Errorf("New(%v, %v) = %v, want %v", test.file, test.rank, got, test.want)
		}
	}
}

func TestFileRankRoundTrip(t *testing.T) {
	for s := square.Square(0); s < square.N; s++ {
		if got := square.New(s.File(), s.Rank()); got != s {
			t.Errorf("New(%v.File(), %v.Rank()) = %v, want %v", s, s, got, s)
		}
	}
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		id   string
		want square.Square
	}{
		{"a1", square.A1},
		{"h8", square.H8},
		{"e4", square.E4},
		{"-", square.None},
	}

	for _, test := range tests {
		got, err := square.NewFromString(test.id)
		if err != nil {
			t.Fatalf("NewFromString(%q) returned error: %v", test.id, err)
		}
		if got != test.want {
			t.Errorf("NewFromString(%q) = %v, want %v", test.id, got, test.want)
		}
	}
}

func TestNewFromStringInvalid(t *testing.T) {
	tests := []string{"", "z9", "a", "abc", "i1"}
	for _, id := range tests {
		if _, err := square.NewFromString(id); err == nil {
			t.Errorf("NewFromString(%q) expected an error, got nil", id)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		s    square.Square
		want string
	}{
		{square.A1, "a1"},
		{square.H8, "h8"},
		{square.E4, "e4"},
		{square.None, "-"},
	}

	for _, test := range tests {
		if got := test.s.String(); got != test.want {
			t.Errorf("%v.String() = %q, want %q", test.s, got, test.want)
		}
	}
}
