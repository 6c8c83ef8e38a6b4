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
	"log/slog"
)

// Locate searches collection for target and returns its index and true,
// or 0 and false when no element equals target.
//
// collection must be sorted in non-decreasing order. Elements are compared
// with == and <, so floating-point values match only when exactly equal and
// a NaN target is never found. When target occurs more than once, the index
// of whichever copy the search probes first is returned.
func Locate[T cmp.Ordered](target T, collection []T) (int, bool) {
	i, ok, _ := bisect(len(collection), ordered(target, collection), noopMonitor{})
	return i, ok
}

// LocateFunc is like Locate but compares elements through cmp, which must
// return a negative number when the element sorts before target, zero when
// it matches and a positive number when it sorts after. collection must be
// sorted in the order cmp defines.
//
// LocateFunc panics with ErrComparatorRequired if cmp is nil.
func LocateFunc[E, T any](target T, collection []E, cmp func(E, T) int) (int, bool) {
	if cmp == nil {
		panic(ErrComparatorRequired)
	}
	i, ok, _ := bisect(len(collection), func(m int) int {
		return cmp(collection[m], target)
	}, noopMonitor{})
	return i, ok
}

// ordered adapts the built-in operators to the comparator bisect expects.
// Anything that is neither equal to nor less than the probed element,
// including NaN, moves the window right.
func ordered[T cmp.Ordered](target T, collection []T) func(int) int {
	return func(m int) int {
		x := collection[m]
		switch {
		case target == x:
			return 0
		case target < x:
			return 1
		default:
			return -1
		}
	}
}

// bisect runs the search over indices [0, n). f reports how the element at
// an index compares to the target. It returns the matching index, whether
// one was found and the number of probes made. The window [lo, hi) only
// ever shrinks: lo never decreases, hi never increases.
func bisect(n int, f func(int) int, monitor Monitor) (int, bool, int) {
	monitor.Start(n)

	lo, hi := 0, n
	probes := 0
	for lo < hi {
		mid := lo + (hi-lo)/2
		monitor.Probe(lo, hi, mid)
		probes++

		c := f(mid)
		if c < 0 {
			lo = mid + 1
		} else if c > 0 {
			hi = mid
		} else {
			monitor.Finish(mid, true)
			return mid, true, probes
		}
	}

	// lo is where target would be inserted
	monitor.Finish(lo, false)
	return 0, false, probes
}

// Engine is a configured binary searcher for one element type.
// It keeps no state between calls and is safe for concurrent use as long
// as its Monitor is.
type Engine[T cmp.Ordered] struct {
	logger      *slog.Logger
	monitor     Monitor
	checkSorted bool
}

type engineConfig struct {
	logger      *slog.Logger
	monitor     Monitor
	checkSorted bool
}

// Option configures an Engine.
type Option func(*engineConfig) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithMonitor attaches a Monitor that observes every search.
// A nil monitor disables observation.
func WithMonitor(monitor Monitor) Option {
	return func(c *engineConfig) error {
		if monitor == nil {
			monitor = noopMonitor{}
		}
		c.monitor = monitor
		return nil
	}
}

// WithSortedCheck makes the engine verify that each collection is sorted
// before searching it. Violations are logged as warnings; the search still
// runs and its result is unchanged. The check is linear in the collection
// length, so leave it off outside of debugging.
func WithSortedCheck(enabled bool) Option {
	return func(c *engineConfig) error {
		c.checkSorted = enabled
		return nil
	}
}

// NewEngine creates a new engine.
func NewEngine[T cmp.Ordered](opts ...Option) (*Engine[T], error) {
	cfg := &engineConfig{
		logger:  slog.Default(),
		monitor: noopMonitor{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Engine[T]{
		logger:      cfg.logger,
		monitor:     cfg.monitor,
		checkSorted: cfg.checkSorted,
	}, nil
}

// Locate behaves like the package-level Locate.
func (e *Engine[T]) Locate(target T, collection []T) (int, bool) {
	if e.checkSorted {
		if err := ValidateSorted(collection); err != nil {
			e.logger.Warn("searching unsorted collection", "n", len(collection), "err", err)
		}
	}

	i, ok, probes := bisect(len(collection), ordered(target, collection), e.monitor)
	e.logger.Debug("search finished", "n", len(collection), "found", ok, "index", i, "probes", probes)
	return i, ok
}
