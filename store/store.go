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
	"runtime"
	"sync"
	"weak"

	"github.com/bharel/bdict/apis"
	uref "github.com/bharel/bdict/utils/reflect"
)

// Store associates owners with their private entry sets by identity,
// without keeping the owners alive: keys are weak pointers, and a
// cleanup registered on each owner purges its slot once the owner is
// reclaimed. Entry sets therefore never outlive their owner unless
// something else (such as a strongly bound view) retains them.
//
// Entry-set creation is idempotent per owner identity: the first caller
// creates the set and every later or concurrent Ensure for the same
// owner observes that same set.
type Store[O any, K comparable] struct {
	// mu guards m.
	mu sync.Mutex
	// m maps owner identity to the owner's entry set.
	m map[weak.Pointer[O]]*Set[O, K]
	// identifiable is false when O is zero-sized: distinct owners may
	// share an address, so identity-keyed association is unsupported
	// and every Ensure hands out an ephemeral set.
	identifiable bool
}

// Ensure Store implements apis.Overrides.
var _ apis.Overrides[int, string] = (*Store[int, string])(nil)

// New constructs an empty store for owner type O.
func New[O any, K comparable]() *Store[O, K] {
	return &Store[O, K]{
		m:            make(map[weak.Pointer[O]]*Set[O, K]),
		identifiable: uref.Identifiable(uref.OwnerType[O]()),
	}
}

// Lookup returns the entry set already associated with owner, if any.
func (s *Store[O, K]) Lookup(owner *O) (apis.Entries[O, K], bool) {
	if !s.identifiable {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.m[weak.Make(owner)]
	if !ok {
		return nil, false
	}
	return set, true
}

// Ensure returns the entry set for owner, creating it if absent. The
// second return is false when O cannot support identity-keyed
// association at all; the returned set is then ephemeral and will not
// be observed by later calls.
func (s *Store[O, K]) Ensure(owner *O) (apis.Entries[O, K], bool) {
	if !s.identifiable {
		return NewSet[O, K](), false
	}

	wp := weak.Make(owner)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock: first creator wins, everyone else observes
	// the same set.
	if set, ok := s.m[wp]; ok {
		return set, true
	}

	set := NewSet[O, K]()
	s.m[wp] = set
	// Purge the slot once the owner is reclaimed. The cleanup captures
	// only the weak key, never the owner itself.
	runtime.AddCleanup(owner, s.purge, wp)
	return set, true
}

// purge drops the entry set slot for a reclaimed owner.
func (s *Store[O, K]) purge(wp weak.Pointer[O]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, wp)
}

// Len returns the number of owners with live entry sets.
func (s *Store[O, K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
