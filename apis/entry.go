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

package apis

import "fmt"

// EntryKind discriminates the variants of a per-owner override Entry.
type EntryKind int

const (
	// EntryBindable marks an entry holding a handler that is bound to
	// the owner on lookup, exactly like a shared table handler.
	EntryBindable EntryKind = iota
	// EntryCustom marks an entry holding an opaque value that is
	// returned verbatim on lookup, with no binding applied.
	EntryCustom
	// EntryTombstone marks a shared table key as logically deleted for
	// one owner. Lookups report the key as absent even though the
	// shared table still defines it.
	EntryTombstone
)

// String returns a human-readable representation of the EntryKind value.
// Unknown values are reported as "Unknown(<n>)" and never panic.
func (k EntryKind) String() string {
	switch k {
	case EntryBindable:
		return "Bindable"
	case EntryCustom:
		return "Custom"
	case EntryTombstone:
		return "Tombstone"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Entry is one owner's override for one key: a tagged variant over
// {Bindable(handler), Custom(value), Tombstone}. Exactly one of Handler
// and Value is meaningful, selected by Kind.
type Entry[O any] struct {
	// Kind selects the variant.
	Kind EntryKind
	// Handler is set when Kind == EntryBindable.
	Handler Handler[O]
	// Value is set when Kind == EntryCustom.
	Value any
}

// Bindable constructs an Entry holding a handler bound on lookup.
func Bindable[O any](h Handler[O]) Entry[O] {
	return Entry[O]{Kind: EntryBindable, Handler: h}
}

// Custom constructs an Entry holding a value returned verbatim.
func Custom[O any](v any) Entry[O] {
	return Entry[O]{Kind: EntryCustom, Value: v}
}

// Tombstone constructs an Entry marking a key as logically deleted.
func Tombstone[O any]() Entry[O] {
	return Entry[O]{Kind: EntryTombstone}
}
