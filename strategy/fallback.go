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
	"github.com/anacrolix/log"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/bind/mode"
)

// Fallback is the terminal strategy: it ensures an entry set in the
// override store and wraps it in a view. It always handles, so a binder
// chain ending in Fallback can never come up empty.
type Fallback[O any, K comparable] struct {
	base   apis.Base[O, K]
	ov     apis.Overrides[O, K]
	logger log.Logger
}

var _ apis.Strategy[int, string] = (*Fallback[int, string])(nil)

// NewFallback constructs the terminal strategy over base and ov.
func NewFallback[O any, K comparable](base apis.Base[O, K], ov apis.Overrides[O, K], logger log.Logger) *Fallback[O, K] {
	return &Fallback[O, K]{base: base, ov: ov, logger: logger}
}

// TryBind implements apis.Strategy. Like Store, views are strong under
// Auto. When the owner type cannot support identity-keyed association,
// the entry set is ephemeral: the view still works, but overrides made
// through it vanish with the view, which is worth a warning.
func (s *Fallback[O, K]) TryBind(owner *O, cfg apis.Config) (apis.View[O, K], bool) {
	set, retained := s.ov.Ensure(owner)
	if !retained {
		s.logger.Levelf(log.Warning,
			"table %q: owner type has no identity; overrides will not persist across binds", cfg.Name)
	}
	return makeView(s.base, set, owner, cfg, mode.Strong), true
}
