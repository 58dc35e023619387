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

// Builder composes the Overrides store and the Binder for a table from
// a Config. Implementations choose the strategy chain and the side
// table; swapping the Builder replaces the accessor protocol wholesale.
type Builder[O any, K comparable] interface {
	// BuildOverrides constructs the identity-keyed override store used
	// by the binder's store-backed strategies.
	BuildOverrides(cfg Config) Overrides[O, K]
	// BuildBinder constructs a Binder over the given table base and
	// override store.
	BuildBinder(cfg Config, base Base[O, K], ov Overrides[O, K]) Binder[O, K]
}
