/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package store

import (
	"sync"

	"github.com/bharel/bdict/apis"
)

// Set is one owner's private override layer: a mutable mapping from key
// to tagged Entry variants (Bindable/Custom/Tombstone). It is consulted
// before the shared table on every lookup through that owner.
type Set[O any, K comparable] struct {
	mu sync.RWMutex
	m  map[K]apis.Entry[O]
}

// Ensure Set implements apis.Entries.
var _ apis.Entries[int, string] = (*Set[int, string])(nil)

// NewSet constructs an empty entry set.
func NewSet[O any, K comparable]() *Set[O, K] {
	return &Set[O, K]{m: make(map[K]apis.Entry[O])}
}

// Entry returns the override for key, if present.
func (s *Set[O, K]) Entry(key K) (apis.Entry[O], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[key]
	return e, ok
}

// SetCustom stores a Custom(value) override for key.
func (s *Set[O, K]) SetCustom(key K, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = apis.Custom[O](value)
}

// SetBindable stores a Bindable(handler) override for key.
func (s *Set[O, K]) SetBindable(key K, h apis.Handler[O]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = apis.Bindable(h)
}

// SetTombstone marks key as logically deleted for this owner.
func (s *Set[O, K]) SetTombstone(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = apis.Tombstone[O]()
}

// Remove deletes the override for key outright, reporting whether one
// was present.
func (s *Set[O, K]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	return true
}

// Keys returns a snapshot of the override keys (order is unspecified).
func (s *Set[O, K]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]K, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of overrides, tombstones included.
func (s *Set[O, K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
