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

package store_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/store"
)

// TestConcurrentEnsureAndLookup verifies that Ensure/Lookup/Len are
// race-free and that concurrent Ensure calls for one owner converge on
// a single entry set.
func TestConcurrentEnsureAndLookup(t *testing.T) {
	st := store.New[widget, string]()

	owners := make([]*widget, 10)
	for i := range owners {
		owners[i] = &widget{id: i}
	}

	// Ensure once (sequential) to establish baseline.
	baseline := make([]apis.Entries[widget, string], len(owners))
	for i, o := range owners {
		set, retained := st.Ensure(o)
		if !retained {
			t.Fatalf("ensure %d: want retained", i)
		}
		baseline[i] = set
	}

	// Hammer with concurrent lookups and idempotent re-ensures.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				o := owners[i%len(owners)]
				if set, ok := st.Lookup(o); !ok || set == nil {
					t.Errorf("lookup failed for owner %d: ok=%v", o.id, ok)
					return
				}
				_ = st.Len()
			}
		}()
	}

	// Writers (idempotent re-ensure)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(owners)
				set, _ := st.Ensure(owners[j]) // must be safe & idempotent
				if set != baseline[j] {
					t.Errorf("ensure diverged for owner %d", j)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if st.Len() != len(owners) {
		t.Fatalf("len mismatch: got %d want %d", st.Len(), len(owners))
	}
	for i, o := range owners {
		set, ok := st.Lookup(o)
		if !ok || set != baseline[i] {
			t.Fatalf("set mismatch for owner %d", i)
		}
	}
}

// TestConcurrentSetWrites verifies that one entry set tolerates
// concurrent writers and readers.
func TestConcurrentSetWrites(t *testing.T) {
	s := store.NewSet[widget, int]()

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 2

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				k := i % 50
				switch i % 3 {
				case 0:
					s.SetCustom(k, id)
				case 1:
					s.SetTombstone(k)
				default:
					_, _ = s.Entry(k)
					_ = s.Keys()
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", s.Len())
	}
}
