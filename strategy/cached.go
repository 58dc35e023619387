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

import "github.com/bharel/bdict/apis"

// Cached returns the view previously cached on the owner, when the
// owner carries a cache slot and caching is enabled. It never creates
// anything; on a miss it falls through.
type Cached[O any, K comparable] struct {
	base apis.Base[O, K]
}

var _ apis.Strategy[int, string] = (*Cached[int, string])(nil)

// NewCached constructs the cache-probe strategy for base. The base
// doubles as the slot key, so several tables can cache views on one
// owner without colliding.
func NewCached[O any, K comparable](base apis.Base[O, K]) *Cached[O, K] {
	return &Cached[O, K]{base: base}
}

// TryBind implements apis.Strategy.
func (s *Cached[O, K]) TryBind(owner *O, cfg apis.Config) (apis.View[O, K], bool) {
	if !cfg.AutoCache {
		return nil, false
	}
	slot, ok := slotOf(owner)
	if !ok {
		return nil, false
	}
	cached, ok := slot.CachedView(any(s.base))
	if !ok {
		return nil, false
	}
	v, ok := cached.(apis.View[O, K])
	if !ok {
		// Foreign value under our key; leave it and fall through.
		return nil, false
	}
	return v, true
}
