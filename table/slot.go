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

package table

import (
	"sync"

	"github.com/bharel/bdict/apis"
)

// ViewSlot is the opt-in fast path for view caching. Owner types embed
// it to grant the accessor protocol a place to cache computed views
// directly on the owner:
//
//	type Server struct {
//	    table.ViewSlot
//	    Addr string
//	}
//
// Types that do not embed a slot are still bindable; their views fall
// back to the identity-keyed override store.
//
// Views are keyed by table identity so that multiple tables can bind
// the same owner without colliding. The zero value is ready for use.
type ViewSlot struct {
	mu    sync.Mutex
	views map[any]any
}

// Ensure ViewSlot implements apis.ViewCacher.
var _ apis.ViewCacher = (*ViewSlot)(nil)

// CachedView returns the view cached under key, if any.
func (s *ViewSlot) CachedView(key any) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[key]
	return v, ok
}

// CacheView stores v under key unless a view is already cached there,
// and returns the winner. First store wins, so concurrent binds of one
// owner converge on a single view.
func (s *ViewSlot) CacheView(key any, v any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.views[key]; ok {
		return old
	}
	if s.views == nil {
		s.views = make(map[any]any)
	}
	s.views[key] = v
	return v
}
