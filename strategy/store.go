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
)

// Store binds owners that already have an entry set in the override
// store: the existing set is wrapped in a fresh view so overrides
// survive even when the cached view was never placed or has been
// dropped. Owners without an entry set fall through.
type Store[O any, K comparable] struct {
	base apis.Base[O, K]
	ov   apis.Overrides[O, K]
}

var _ apis.Strategy[int, string] = (*Store[int, string])(nil)

// NewStore constructs the store-probe strategy over base and ov.
func NewStore[O any, K comparable](base apis.Base[O, K], ov apis.Overrides[O, K]) *Store[O, K] {
	return &Store[O, K]{base: base, ov: ov}
}

// TryBind implements apis.Strategy. Store-backed views hold the owner
// strongly under Auto: the store alone does not keep the owner alive,
// so the view must.
func (s *Store[O, K]) TryBind(owner *O, cfg apis.Config) (apis.View[O, K], bool) {
	set, ok := s.ov.Lookup(owner)
	if !ok {
		return nil, false
	}
	return makeView(s.base, set, owner, cfg, mode.Strong), true
}
