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

package piece_test

import (
	"testing"

	"github.com/phillipduarte/enoki-chess/pkg/piece"
)

func TestNew(t *testing.T) {
	tests := []struct {
		t    piece.Type
		c    piece.Color
		want piece.Kind
	}{
		{piece.Pawn, piece.White, piece.WhitePawn},
		{piece.King, piece.White, piece.WhiteKing},
		{piece.Pawn, piece.Black, piece.BlackPawn},
		{piece.King, piece.Black, piece.BlackKing},
	}

	for _, test := range tests {
		if got := piece.New(test.t, test.c); got != test.want {
			t.Errorf("New(%v, %v) = %v, want %v", test.t, test.c, got, test.want)
		}
	}
}

func TestColorAndType(t *testing.T) {
	for k := piece.WhitePawn; k <= piece.BlackKing; k++ {
		wantColor := piece.White
		if k >= piece.BlackPawn {
			wantColor = piece.Black
		}
		if got := k.Color(); got != wantColor {
			t.Errorf("%v.Color() = %v, want %v", k, got, wantColor)
		}

		wantType := piece.Type(int(k) % 6)
		if got := k.Type(); got != wantType {
			t.Errorf("%v.Type() = %v, want %v", k, got, wantType)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for k := piece.WhitePawn; k <= piece.BlackKing; k++ {
		s := k.String()
		got, err := piece.NewFromString(s[0])
		if err != nil {
			t.Fatalf("NewFromString(%q) returned error: %v", s, err)
		}
		if got != k {
			t.Errorf("NewFromString(%q) = %v, want %v", s, got, k)
		}
	}
}

func TestNoneString(t *testing.T) {
	if got := piece.None.String(); got != "-" {
		t.Errorf("None.String() = %q, want %q", got, "-")
	}
}

func TestColorOther(t *testing.T) {
	if piece.White.Other() != piece.Black {
		t.Errorf("White.Other() != Black")
	}
	if piece.Black.Other() != piece.White {
		t.Errorf("Black.Other() != White")
	}
}

func TestColorFrom(t *testing.T) {
	if c, err := piece.ColorFrom("w"); err != nil || c != piece.White {
		t.Errorf("ColorFrom(\"w\") = %v, %v, want White, nil", c, err)
	}
	if c, err := piece.ColorFrom("b"); err != nil || c != piece.Black {
		t.Errorf("ColorFrom(\"b\") = %v, %v, want Black, nil", c, err)
	}
	if _, err := piece.ColorFrom("x"); err == nil {
		t.Errorf("ColorFrom(\"x\") expected an error, got nil")
	}
}
