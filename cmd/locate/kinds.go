// Copyright 2025 Poiesic Systems
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


package main

import (
	"cmp"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/urfave/cli/v2"
)

// runner searches raw command-line values once they are parsed into a
// concrete element type.
type runner interface {
	run(c *cli.Context, target string, elems []string) error
}

// kind describes how one element type is read from and written to text.
type kind[T cmp.Ordered] struct {
	parse  func(string) (T, error)
	format func(T) string
}

func (k kind[T]) run(c *cli.Context, target string, elems []string) error {
	return locateAndPrint(c, target, elems, k)
}

var (
	intKind = kind[int64]{
		parse: func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		},
		format: func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
	}

	floatKind = kind[float64]{
		parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
		format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
	}

	charKind = kind[rune]{
		parse: func(s string) (rune, error) {
			if utf8.RuneCountInString(s) != 1 {
				return 0, fmt.Errorf("%q is not a single character", s)
			}
			r, _ := utf8.DecodeRuneInString(s)
			return r, nil
		},
		format: func(v rune) string {
			return string(v)
		},
	}

	stringKind = kind[string]{
		parse:  func(s string) (string, error) { return s, nil },
		format: func(v string) string { return v },
	}
)

func kindByName(name string) (runner, error) {
	switch name {
	case "int":
		return intKind, nil
	case "float":
		return floatKind, nil
	case "char":
		return charKind, nil
	case "string":
		return stringKind, nil
	default:
		return nil, fmt.Errorf("invalid element type %q: must be one of int, float, char, string", name)
	}
}
