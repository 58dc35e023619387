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

// Binder is the accessor protocol: it decides how and where a per-owner
// view is placed whenever a table is consulted through an owner.
// Typical chain: CachedStrategy -> StoreStrategy -> AttachStrategy ->
// FallbackStrategy.
type Binder[O any, K comparable] interface {
	// Bind produces the view for owner under cfg. Repeated calls for
	// the same owner must observe the same override layer.
	Bind(owner *O, cfg Config) (View[O, K], error)
}
