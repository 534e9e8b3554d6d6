//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package tt implements the shared transposition table described in
// spec.md §4.8: a hash map keyed on the 64-bit position fingerprint, safe
// for many concurrent readers and a single writer (the foreground search
// and the ponder thread both probe it; only the thread that is currently
// the "owner" of a search inserts).
package tt

import (
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// Table is the transposition table. The zero value is not usable; build
// one with New.
type Table struct {
	log *logging.Logger

	mu      sync.RWMutex
	entries map[uint64]Entry
	age     uint32

	puts, hits, misses, overwrites uint64
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		log:     myLogging.GetLog("tt"),
		entries: make(map[uint64]Entry),
	}
}

// Insert stores a search result for key. Entries shallower than
// MinTranspositionDepth are rejected outright. If the key is already
// present its age is always refreshed to the table's current age, but the
// payload is only overwritten when the new depth is strictly greater than
// the stored one; otherwise the existing, deeper result is kept. A new key
// is always inserted with the table's current age.
func (t *Table) Insert(key uint64, depth int, score types.Value, bound Bound, best, predictedReply types.Move) {
	if depth < config.Settings.Search.MinTranspositionDepth {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.puts++

	existing, found := t.entries[key]
	if !found {
		t.entries[key] = Entry{
			Depth:          depth,
			Score:          score,
			Bound:          bound,
			BestMove:       best,
			PredictedReply: predictedReply,
			Age:            t.age,
		}
		return
	}

	existing.Age = t.age
	if depth > existing.Depth {
		t.overwrites++
		existing.Depth = depth
		existing.Score = score
		existing.Bound = bound
		existing.BestMove = best
		existing.PredictedReply = predictedReply
	}
	t.entries[key] = existing
}

// Lookup returns the stored entry for key, refreshing its age on a hit.
// The returned Entry is a copy; mutating it has no effect on the table.
func (t *Table) Lookup(key uint64) (Entry, bool) {
	t.mu.RLock()
	e, found := t.entries[key]
	t.mu.RUnlock()
	if !found {
		t.mu.Lock()
		t.misses++
		t.mu.Unlock()
		return Entry{}, false
	}

	t.mu.Lock()
	e.Age = t.age
	t.entries[key] = e
	t.hits++
	t.mu.Unlock()
	return e, true
}

// AgeAdvance increments the table-global age counter. Called exactly once
// per completed top-level search.
func (t *Table) AgeAdvance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.age++
}

// Prune removes every entry whose age has fallen more than MaxAgeDiff
// behind the table's current age. Requires exclusive access.
func (t *Table) Prune() {
	t.mu.Lock()
	defer t.mu.Unlock()
	maxDiff := uint32(config.Settings.Search.MaxAgeDiff)
	before := len(t.entries)
	for key, e := range t.entries {
		if t.age-e.Age > maxDiff {
			delete(t.entries, key)
		}
	}
	t.log.Debug(out.Sprintf("pruned %d entries of %d", before-len(t.entries), before))
}

// Reset clears all entries and resets the age counter to 0.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Info(out.Sprintf("resetting table of %d entries", len(t.entries)))
	t.entries = make(map[uint64]Entry)
	t.age = 0
	t.puts, t.hits, t.misses, t.overwrites = 0, 0, 0, 0
}

// Len reports the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Snapshot returns a copy of every stored entry, for persistence by
// internal/store across process restarts.
func (t *Table) Snapshot() map[uint64]Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[uint64]Entry, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// LoadSnapshot replaces the table's contents with a previously captured
// Snapshot, preserving the current age counter.
func (t *Table) LoadSnapshot(snapshot map[uint64]Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[uint64]Entry, len(snapshot))
	for k, v := range snapshot {
		t.entries[k] = v
	}
}

// String reports usage statistics in the teacher's log-line style.
func (t *Table) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return out.Sprintf("TT: entries %d age %d puts %d overwrites %d hits %d misses %d",
		len(t.entries), t.age, t.puts, t.overwrites, t.hits, t.misses)
}
