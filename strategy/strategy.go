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

// Package strategy provides the accessor-protocol steps that place a
// per-owner view: probe the owner's cache slot, find an existing entry
// set in the override store, attach a fresh cached view to a capable
// owner, and finally fall back to a store-backed view. A binder chains
// them in that order.
package strategy

import (
	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/bind/mode"
	"github.com/bharel/bdict/view"
)

// makeView constructs an instance view over base and set, bound to
// owner per cfg.Mode. Auto resolves to def, which each strategy picks
// for its placement: weak for views cached on the owner, strong for
// views anchored only by the override store.
func makeView[O any, K comparable](base apis.Base[O, K], set apis.Entries[O, K], owner *O, cfg apis.Config, def mode.ReferenceMode) apis.View[O, K] {
	m := cfg.Mode
	if m == mode.Auto {
		m = def
	}
	if m == mode.Weak {
		return view.NewObserving(base, set, owner)
	}
	return view.NewOwning(base, set, owner)
}

// slotOf probes owner for the in-owner caching capability.
func slotOf[O any](owner *O) (apis.ViewCacher, bool) {
	c, ok := any(owner).(apis.ViewCacher)
	return c, ok
}
