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

// View is a bound perspective over a shared handler table: an owner's
// override layer on top of the table, with binding performed on lookup.
// Instance views bind handlers to one owner; class views expose the
// unbound handlers and write through to the shared table.
//
// Views are not safe for unsynchronized concurrent mutation. Callers
// sharing a view across goroutines must synchronize externally.
type View[O any, K comparable] interface {
	// Lookup resolves key through the layered view. For a table handler
	// (or a Bindable override) it returns a Bound callable with the
	// owner pre-applied; for a Custom override it returns the stored
	// value verbatim. Keys shadowed by a Tombstone are reported absent.
	Lookup(key K) (any, error)

	// Set stores a Custom override for key, shadowing any same-named
	// table handler on future lookups, regardless of prior content.
	// On a class view, Set writes the handler through to the shared
	// table and fails for non-handler values.
	Set(key K, value any) error

	// SetHandler stores a Bindable override for key: a handler that is
	// bound to the owner on lookup, private to this owner. On a class
	// view it writes through to the shared table.
	SetHandler(key K, h Handler[O]) error

	// Delete logically removes key from the view. A key defined only by
	// the shared table is shadowed with a Tombstone; the table itself is
	// never mutated and other owners are unaffected. Deleting a key that
	// is already absent fails.
	Delete(key K) error

	// Keys returns the keys of the logical layered view: table keys not
	// tombstoned plus override-native keys, without double counting.
	// Order is unspecified.
	Keys() []K

	// Len returns the number of keys in the logical layered view.
	Len() int

	// Describe returns a human-readable, single-line description of the
	// view for diagnostics and logs.
	Describe() string
}
