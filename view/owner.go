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

package view

import (
	"weak"

	g "github.com/anacrolix/generics"
)

// ownerRef is the strong/weak owner duality: an owning reference holds
// the owner directly, an observing reference re-resolves it through a
// weak pointer on every use and never caches the resolved pointer.
// The zero value is unbound.
type ownerRef[O any] struct {
	strong *O
	wp     weak.Pointer[O]
	// observing distinguishes a weak reference from the unbound zero value.
	observing bool
}

// owning returns a reference that keeps owner reachable.
func owning[O any](owner *O) ownerRef[O] {
	return ownerRef[O]{strong: owner}
}

// observing returns a reference that tracks owner without retaining it.
func observing[O any](owner *O) ownerRef[O] {
	return ownerRef[O]{wp: weak.Make(owner), observing: true}
}

// bound reports whether the reference was ever bound to an owner.
func (r ownerRef[O]) bound() bool {
	return r.strong != nil || r.observing
}

// resolve returns the owner if it is still reachable. For observing
// references the weak pointer is dereferenced on every call; a none
// result means the owner has been reclaimed.
func (r ownerRef[O]) resolve() g.Option[*O] {
	if r.strong != nil {
		return g.Some(r.strong)
	}
	if !r.observing {
		return g.Option[*O]{}
	}
	if p := r.wp.Value(); p != nil {
		return g.Some(p)
	}
	return g.Option[*O]{}
}
