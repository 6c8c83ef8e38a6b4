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


// Package search locates values in sorted slices by binary search.
//
// The search is generic over any ordered element type and keeps a
// half-open window [lo, hi) that shrinks on every comparison until the
// target is found or the window is empty. Absence is a normal outcome,
// reported through the comma-ok idiom rather than an error:
//
//	if i, ok := search.Locate(4, []int{0, 1, 2, 4, 8, 16}); ok {
//		fmt.Println("found at", i)
//	}
//
// Collections must already be sorted in non-decreasing order. The search
// does not verify this; use ValidateSorted or an Engine built with
// WithSortedCheck when the input is not trusted.
package search
