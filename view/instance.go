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

package view

import (
	"errors"
	"fmt"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/common"
	uref "github.com/bharel/bdict/utils/reflect"
)

var (
	// ErrNotFound is returned when a key is absent after full layered
	// resolution (including keys shadowed by a tombstone).
	ErrNotFound = errors.New("bdict(view): key not found")
	// ErrOwnerExpired is returned when a weakly referenced owner has
	// been reclaimed at bind time. It is distinct from ErrNotFound:
	// the key was defined, only the owner is gone.
	ErrOwnerExpired = errors.New("bdict(view): owner has been reclaimed")
	// ErrUnbound is returned when a view that was never bound to an
	// owner is consulted.
	ErrUnbound = errors.New("bdict(view): view is not bound to an owner")
)

// Instance is a per-owner view: it layers the owner's private override
// entries over the shared table base and binds handlers to the owner on
// lookup. Instances are produced by the accessor protocol; the zero
// value is unbound and rejects every operation with ErrUnbound.
type Instance[O any, K comparable] struct {
	base  apis.Base[O, K]
	set   apis.Entries[O, K]
	owner ownerRef[O]
}

// checkOwner exists only for compile-time interface checks.
type checkOwner struct{ _ int }

// Ensure Instance implements the view and describer contracts.
var (
	_ apis.View[checkOwner, string] = (*Instance[checkOwner, string])(nil)
	_ common.Describer              = (*Instance[checkOwner, string])(nil)
)

// NewOwning constructs an instance view that holds owner directly: the
// owner stays reachable for as long as the view does.
func NewOwning[O any, K comparable](base apis.Base[O, K], set apis.Entries[O, K], owner *O) *Instance[O, K] {
	return &Instance[O, K]{base: base, set: set, owner: owning(owner)}
}

// NewObserving constructs an instance view that tracks owner weakly:
// the owner is re-resolved on every lookup, and lookups after the owner
// has been reclaimed fail with ErrOwnerExpired.
func NewObserving[O any, K comparable](base apis.Base[O, K], set apis.Entries[O, K], owner *O) *Instance[O, K] {
	return &Instance[O, K]{base: base, set: set, owner: observing(owner)}
}

// guard rejects operations on the unbound zero value.
func (v *Instance[O, K]) guard() error {
	if v == nil || v.set == nil || v.base == nil || !v.owner.bound() {
		return ErrUnbound
	}
	return nil
}

// Lookup resolves key through the layered view. Override entries are
// consulted first: a Tombstone reports the key absent, a Custom value
// is returned verbatim, and a Bindable handler is bound. Otherwise the
// shared table handler is bound. Binding resolves the owner lazily;
// for weak views an expired owner yields ErrOwnerExpired.
func (v *Instance[O, K]) Lookup(key K) (any, error) {
	if err := v.guard(); err != nil {
		return nil, err
	}

	if e, ok := v.set.Entry(key); ok {
		switch e.Kind {
		case apis.EntryTombstone:
			return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
		case apis.EntryCustom:
			return e.Value, nil
		default:
			return v.bind(e.Handler)
		}
	}

	if h, ok := v.base.Handler(key); ok {
		return v.bind(h)
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// bind resolves the owner and returns h with the owner pre-applied.
func (v *Instance[O, K]) bind(h apis.Handler[O]) (any, error) {
	o := v.owner.resolve()
	if !o.Ok {
		return nil, ErrOwnerExpired
	}

	owner := o.Value
	return apis.Bound(func(args ...any) (any, error) {
		return h(owner, args...)
	}), nil
}

// Set stores a Custom override for key, shadowing any same-named table
// handler on future lookups, regardless of prior content. The shared
// table is never touched; other owners are unaffected.
func (v *Instance[O, K]) Set(key K, value any) error {
	if err := v.guard(); err != nil {
		return err
	}
	v.set.SetCustom(key, value)
	return nil
}

// SetHandler stores a Bindable override for key: a handler private to
// this owner that is still bound on lookup like a table handler.
func (v *Instance[O, K]) SetHandler(key K, h apis.Handler[O]) error {
	if err := v.guard(); err != nil {
		return err
	}
	v.set.SetBindable(key, h)
	return nil
}

// Delete logically removes key from this owner's view. A native
// override is removed outright; if the shared table still defines the
// key, a Tombstone shadows it so the table stays untouched and other
// owners are unaffected. Deleting a key that is already absent
// (including one already tombstoned) returns ErrNotFound.
func (v *Instance[O, K]) Delete(key K) error {
	if err := v.guard(); err != nil {
		return err
	}

	e, native := v.set.Entry(key)
	if native && e.Kind == apis.EntryTombstone {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	_, inBase := v.base.Handler(key)
	if !native && !inBase {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}

	if native {
		v.set.Remove(key)
	}
	if inBase {
		v.set.SetTombstone(key)
	}
	return nil
}

// Keys returns the keys of the logical layered view: table keys not
// tombstoned plus override-native keys, without double counting.
// Order is unspecified.
func (v *Instance[O, K]) Keys() []K {
	if v.guard() != nil {
		return nil
	}

	// Overrides decide the fate of every key they mention; the base
	// contributes the rest.
	claimed := make(map[K]struct{})
	keys := make([]K, 0, v.set.Len()+v.base.BaseLen())
	for _, k := range v.set.Keys() {
		claimed[k] = struct{}{}
		if e, ok := v.set.Entry(k); ok && e.Kind != apis.EntryTombstone {
			keys = append(keys, k)
		}
	}
	for _, k := range v.base.BaseKeys() {
		if _, ok := claimed[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of keys in the logical layered view.
func (v *Instance[O, K]) Len() int {
	return len(v.Keys())
}

// Describe returns a single-line, human-readable description of the
// view, including the owner when it can be named. It never panics:
// unbound and expired views are reported as such.
func (v *Instance[O, K]) Describe() string {
	if v.guard() != nil {
		return "<unbound view>"
	}

	o := v.owner.resolve()
	if !o.Ok {
		return fmt.Sprintf("<expired view over %s>", v.base.Name())
	}
	return fmt.Sprintf("<view of %s: %d keys over %q>", ownerLabel(o.Value), v.Len(), v.base.Name())
}

// ownerLabel names an owner for diagnostics: the owner's own naming
// contracts win over the reflect-derived type name.
func ownerLabel[O any](owner *O) string {
	switch n := any(owner).(type) {
	case common.Identifier:
		if id := n.OwnerID(); id != "" {
			return fmt.Sprintf("%s(%s)", n.OwnerName(), id)
		}
		return n.OwnerName()
	case common.Namer:
		return n.OwnerName()
	default:
		return uref.DisplayName(uref.OwnerType[O]())
	}
}
