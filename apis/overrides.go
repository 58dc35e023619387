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

// Entries is one owner's private override layer: the mutable set of
// per-key Entry variants consulted before the shared table on lookup.
type Entries[O any, K comparable] interface {
	// Entry returns the override for key, if present.
	Entry(key K) (e Entry[O], ok bool)
	// SetCustom stores a Custom(value) override for key.
	SetCustom(key K, value any)
	// SetBindable stores a Bindable(handler) override for key.
	SetBindable(key K, h Handler[O])
	// SetTombstone marks key as logically deleted for this owner.
	SetTombstone(key K)
	// Remove deletes the override for key outright, reporting whether
	// one was present.
	Remove(key K) bool
	// Keys returns a snapshot of the override keys (order unspecified).
	Keys() []K
	// Len returns the number of overrides, tombstones included.
	Len() int
}

// Overrides is an identity-keyed association from owners to their
// private Entries. Implementations must associate entries weakly: an
// entry set becomes unreachable once its owner is no longer referenced
// elsewhere. Ensure must be idempotent per owner identity — the first
// caller creates the set, and every later or concurrent call for the
// same owner observes that same set, never a second divergent one.
type Overrides[O any, K comparable] interface {
	// Lookup returns the entry set already associated with owner, if any.
	Lookup(owner *O) (set Entries[O, K], ok bool)
	// Ensure returns the entry set for owner, creating it if absent.
	// retained is false when the owner's type cannot support
	// identity-keyed association at all; the returned set is then
	// ephemeral and will not be found by later Lookup or Ensure calls.
	Ensure(owner *O) (set Entries[O, K], retained bool)
	// Len returns the number of owners with live entry sets.
	Len() int
}
