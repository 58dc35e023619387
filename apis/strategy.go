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

// Strategy is a pluggable binding step. A Binder chains multiple
// strategies in order (e.g., Cached -> Store -> Attach -> Fallback);
// each strategy probes one placement for the owner's view and falls
// through when the placement does not apply.
type Strategy[O any, K comparable] interface {
	// TryBind attempts to produce a view for owner according to cfg.
	// It returns (view, true) if handled; otherwise (nil, false) to
	// fall through to the next strategy.
	TryBind(owner *O, cfg Config) (v View[O, K], handled bool)
}
