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

// Package store is the optional badger-backed persistence layer described
// in SPEC_FULL.md's supplemented-features section. spec.md §6 states the
// process is otherwise stateless across runs; when enabled, this package
// lets a session survive a restart: the uci handler snapshots the
// transposition table and the current position on quit and restores them
// at startup.
package store

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/op/go-logging"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/tt"
)

const (
	keyTTSnapshot   = "tt_snapshot"
	keySessionState = "session_state"
)

// SessionState is the minimal UCI session the store remembers: the
// position the engine last had loaded and the moves applied on top of it.
type SessionState struct {
	StartFEN string   `json:"start_fen"`
	Moves    []string `json:"moves"`
}

// Store wraps a badger database holding engine state that should survive
// a process restart.
type Store struct {
	log *logging.Logger
	db  *badger.DB
}

// Open opens (creating if necessary) the badger database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{log: myLogging.GetLog("store"), db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTTSnapshot persists every entry currently in table.
func (s *Store) SaveTTSnapshot(table *tt.Table) error {
	data, err := json.Marshal(table.Snapshot())
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyTTSnapshot), data)
	})
}

// LoadTTSnapshot restores a previously saved snapshot into table. A
// missing key is not an error: the table is simply left empty.
func (s *Store) LoadTTSnapshot(table *tt.Table) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyTTSnapshot))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot := make(map[uint64]tt.Entry)
			if err := json.Unmarshal(val, &snapshot); err != nil {
				return err
			}
			table.LoadSnapshot(snapshot)
			return nil
		})
	})
}

// SaveSessionState persists the current UCI position.
func (s *Store) SaveSessionState(state SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySessionState), data)
	})
}

// LoadSessionState returns the last saved session, or the zero value if
// none was ever saved.
func (s *Store) LoadSessionState() (SessionState, error) {
	var state SessionState
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySessionState))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})
	return state, err
}
