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

// ViewCacher is the in-owner caching capability probed by the accessor
// protocol. Owner types opt in by embedding a slot type that implements
// it (see table.ViewSlot); types without the capability fall back to
// the identity-keyed override store.
//
// Views are keyed by table identity so that several tables can bind the
// same owner type without colliding. Cached values are opaque to the
// slot; strategies perform the type assertions.
type ViewCacher interface {
	// CachedView returns the view cached under key, if any.
	CachedView(key any) (v any, ok bool)
	// CacheView stores v under key unless a view is already cached
	// there, and returns the winner. First store wins, so concurrent
	// binds of one owner converge on a single view.
	CacheView(key any, v any) any
}
