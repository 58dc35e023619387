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

package binder

import (
	"errors"

	"github.com/bharel/bdict/apis"
)

// ErrNoStrategy is returned when no strategy in the chain handled the
// owner. It cannot occur with chains that end in a terminal strategy
// such as strategy.Fallback.
var ErrNoStrategy = errors.New("bdict(binder): no strategy handled the owner")

// New constructs an apis.Binder that tries the given strategies in
// order. Nil strategies are ignored. The returned binder is safe for
// concurrent use provided strategies themselves are safe for concurrent
// TryBind calls.
func New[O any, K comparable](strategies ...apis.Strategy[O, K]) apis.Binder[O, K] {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy[O, K], 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain[O, K]{strats: out}
}

// chain is an immutable, order-preserving binder over a set of strategies.
type chain[O any, K comparable] struct {
	strats []apis.Strategy[O, K]
}

// Bind runs strategies in order until one handles the owner.
func (b chain[O, K]) Bind(owner *O, cfg apis.Config) (apis.View[O, K], error) {
	for _, s := range b.strats {
		if v, ok := s.TryBind(owner, cfg); ok {
			return v, nil
		}
	}
	return nil, ErrNoStrategy
}
