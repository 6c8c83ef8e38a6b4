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


package search

import (
	"cmp"
	"fmt"
)

// ValidateSorted checks that collection is in non-decreasing order.
//
// Validation rules:
//   - Empty and single-element collections are sorted
//   - No element may be less than the one before it
//
// NOT validated:
//   - Duplicates (allowed, any copy may be located)
//   - NaN values (they compare neither less nor greater and pass)
func ValidateSorted[T cmp.Ordered](collection []T) error {
	for i := 1; i < len(collection); i++ {
		if collection[i] < collection[i-1] {
			return fmt.Errorf("%w: element %d (%v) is less than element %d (%v)",
				ErrUnsortedCollection, i, collection[i], i-1, collection[i-1])
		}
	}
	return nil
}

// IsSorted reports whether collection is in non-decreasing order.
func IsSorted[T cmp.Ordered](collection []T) bool {
	return ValidateSorted(collection) == nil
}
