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

// Monitor observes the window of a single search.
//
// Start is called once with the collection length, Probe once per
// iteration with the window [lo, hi) as it stood on entry and the midpoint
// about to be compared, and Finish once with the outcome. When the target
// is absent Finish receives the index at which it would be inserted.
type Monitor interface {
	Start(n int)
	Probe(lo, hi, mid int)
	Finish(index int, found bool)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = noopMonitor{}

func (noopMonitor) Start(_ int)          {}
func (noopMonitor) Probe(_, _, _ int)    {}
func (noopMonitor) Finish(_ int, _ bool) {}

// Probe is one recorded iteration of a search.
type Probe struct {
	Lo, Hi, Mid int
}

// RecordingMonitor keeps the probes of the most recent search.
// It is not safe for concurrent use.
type RecordingMonitor struct {
	N      int
	Probes []Probe
	Index  int
	Found  bool
}

var _ Monitor = (*RecordingMonitor)(nil)

// Start resets the monitor for a new search.
func (r *RecordingMonitor) Start(n int) {
	r.N = n
	r.Probes = r.Probes[:0]
	r.Index = 0
	r.Found = false
}

func (r *RecordingMonitor) Probe(lo, hi, mid int) {
	r.Probes = append(r.Probes, Probe{Lo: lo, Hi: hi, Mid: mid})
}

func (r *RecordingMonitor) Finish(index int, found bool) {
	r.Index = index
	r.Found = found
}
