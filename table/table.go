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

package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bharel/bdict/apis"
	uref "github.com/bharel/bdict/utils/reflect"
	"github.com/bharel/bdict/view"
)

var (
	// ErrInvalidOwner is returned when a nil owner is provided to Bind.
	ErrInvalidOwner = errors.New("bdict(table): nil owner provided")
	// ErrNilBinder is returned when a table is consulted through an
	// owner before a binder has been wired.
	ErrNilBinder = errors.New("bdict(table): table has no binder")
)

// Pair is a single (key, handler) association used to build a Table.
type Pair[O any, K comparable] struct {
	// Key is the dispatch key.
	Key K
	// Handler is the unbound handler stored for Key.
	Handler apis.Handler[O]
}

// New constructs a Table from an ordered sequence of pairs. Later
// duplicate keys overwrite earlier ones (last write wins). The returned
// table has no binder yet; wire one with SetBinder before calling Bind.
func New[O any, K comparable](cfg apis.Config, pairs ...Pair[O, K]) *Table[O, K] {
	if cfg.Name == "" {
		cfg.Name = uref.DisplayName(uref.OwnerType[O]())
	}
	t := &Table[O, K]{cfg: cfg}
	for _, p := range pairs {
		t.SetHandler(p.Key, p.Handler)
	}
	return t
}

// FromMap constructs a Table from a plain map of handlers.
func FromMap[O any, K comparable](cfg apis.Config, handlers map[K]apis.Handler[O]) *Table[O, K] {
	t := New[O, K](cfg)
	for k, h := range handlers {
		t.SetHandler(k, h)
	}
	return t
}

// Table is a shared handler table: an immutable-by-convention mapping
// from key to unbound handler, owned by the declaring type and shared
// by every owner bound from it. Instance-level writes never reach the
// table; only class views write through (SetHandler/RemoveHandler), and
// such writes are global.
type Table[O any, K comparable] struct {
	// cfg is the configuration views produced from this table inherit.
	cfg apis.Config
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// m maps K to apis.Handler[O].
	m sync.Map
	// count tracks the number of stored handlers.
	count int
	// binder is the accessor protocol consulted by Bind.
	// It is wired once after construction and must not be swapped
	// while binds are in flight.
	binder apis.Binder[O, K]
}

// SetBinder wires the accessor protocol used by Bind. It must be called
// before the table is consulted through an owner; the facade
// constructors do this automatically.
func (t *Table[O, K]) SetBinder(b apis.Binder[O, K]) {
	t.binder = b
}

// Config returns the configuration views produced from this table inherit.
func (t *Table[O, K]) Config() apis.Config {
	return t.cfg
}

// Bind consults the table through owner: the accessor protocol decides
// whether to return a view cached on the owner, a fresh view wired to
// the owner's existing override layer, or a newly placed view.
func (t *Table[O, K]) Bind(owner *O) (apis.View[O, K], error) {
	if owner == nil {
		return nil, ErrInvalidOwner
	}
	if t.binder == nil {
		return nil, ErrNilBinder
	}
	return t.binder.Bind(owner, t.cfg)
}

// BindType returns a class view bound to the declaring type itself
// rather than to an instance. Lookups yield the unbound handlers, and
// writes go to the shared table, visible to every owner.
func (t *Table[O, K]) BindType() apis.View[O, K] {
	return view.NewClass[O, K](t)
}

// Handler returns the shared handler for key, if present.
func (t *Table[O, K]) Handler(key K) (apis.Handler[O], bool) {
	if v, ok := t.m.Load(key); ok {
		return v.(apis.Handler[O]), true
	}
	return nil, false
}

// SetHandler installs or replaces the shared handler for key.
// The effect is global: every owner bound to this table observes it.
func (t *Table[O, K]) SetHandler(key K, h apis.Handler[O]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.m.Load(key); !ok {
		t.count++
	}
	t.m.Store(key, h)
}

// RemoveHandler deletes the shared handler for key, reporting whether
// it was present. The effect is global.
func (t *Table[O, K]) RemoveHandler(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.m.Load(key); !ok {
		return false
	}
	t.m.Delete(key)
	t.count--
	return true
}

// BaseKeys returns a snapshot of the shared keys (order is unspecified).
func (t *Table[O, K]) BaseKeys() []K {
	keys := make([]K, 0, t.BaseLen())
	t.m.Range(func(key, _ any) bool {
		keys = append(keys, key.(K))
		return true
	})
	return keys
}

// BaseLen returns the number of shared entries.
func (t *Table[O, K]) BaseLen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Name returns the table's display name: the configured name, or a
// name derived from the owner type.
func (t *Table[O, K]) Name() string {
	return t.cfg.Name
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (t *Table[O, K]) Entries() []Pair[O, K] {
	entries := make([]Pair[O, K], 0, t.BaseLen())
	t.m.Range(func(key, value any) bool {
		entries = append(entries, Pair[O, K]{
			Key:     key.(K),
			Handler: value.(apis.Handler[O]),
		})
		return true
	})
	return entries
}

// Describe returns a single-line, human-readable description of the table.
func (t *Table[O, K]) Describe() string {
	return fmt.Sprintf("<table %q: %d handlers>", t.Name(), t.BaseLen())
}
