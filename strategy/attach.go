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

package strategy

import (
	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/bind/mode"
	"github.com/bharel/bdict/store"
)

// Attach places a freshly computed view in the owner's cache slot so
// repeat accesses resolve through Cached without touching the override
// store. Owners without a slot, or tables with caching disabled, fall
// through to Fallback.
type Attach[O any, K comparable] struct {
	base apis.Base[O, K]
}

var _ apis.Strategy[int, string] = (*Attach[int, string])(nil)

// NewAttach constructs the slot-attach strategy for base.
func NewAttach[O any, K comparable](base apis.Base[O, K]) *Attach[O, K] {
	return &Attach[O, K]{base: base}
}

// TryBind implements apis.Strategy. Slot-cached views track the owner
// weakly under Auto: the owner holds the view, and a view that also
// held the owner would pin it forever.
func (s *Attach[O, K]) TryBind(owner *O, cfg apis.Config) (apis.View[O, K], bool) {
	if !cfg.AutoCache {
		return nil, false
	}
	slot, ok := slotOf(owner)
	if !ok {
		return nil, false
	}

	fresh := makeView(s.base, store.NewSet[O, K](), owner, cfg, mode.Weak)
	// First store wins: a concurrent bind may have cached its view
	// between our probe and now, in which case we adopt that one.
	winner, ok := slot.CacheView(any(s.base), fresh).(apis.View[O, K])
	if !ok {
		return nil, false
	}
	return winner, true
}
