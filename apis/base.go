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

// Base is the read/write surface of a shared handler table as seen by
// views and bind strategies. Reads must be safe against concurrent
// class-level writes. Keep it minimal so implementations can be
// lock-free or sync.Map-backed.
type Base[O any, K comparable] interface {
	// Handler returns the shared handler for key, if present.
	Handler(key K) (h Handler[O], ok bool)
	// SetHandler installs or replaces the shared handler for key.
	// The effect is global: every owner bound to the table observes it.
	SetHandler(key K, h Handler[O])
	// RemoveHandler deletes the shared handler for key, reporting
	// whether it was present. The effect is global.
	RemoveHandler(key K) bool
	// BaseKeys returns a snapshot of the shared keys (order unspecified).
	BaseKeys() []K
	// BaseLen returns the number of shared entries.
	BaseLen() int
	// Name returns the table's display name for diagnostics.
	Name() string
}
