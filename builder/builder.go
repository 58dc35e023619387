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

package builder

import (
	"github.com/anacrolix/log"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/binder"
	"github.com/bharel/bdict/store"
	"github.com/bharel/bdict/strategy"
)

// New creates and returns a new instance of an apis.Builder wired with
// the default strategy chain. Warnings from the terminal strategy go to
// logger.
func New[O any, K comparable](logger log.Logger) apis.Builder[O, K] {
	return &builder[O, K]{logger: logger}
}

type builder[O any, K comparable] struct {
	logger log.Logger
}

// BuildOverrides builds the identity-keyed override store consulted by
// the store-backed strategies.
func (b *builder[O, K]) BuildOverrides(_ apis.Config) apis.Overrides[O, K] {
	return store.New[O, K]()
}

// BuildBinder builds the default accessor protocol over base and ov:
// probe the owner's cache slot, reuse an existing entry set, attach a
// fresh cached view, and finally fall back to a store-backed view.
func (b *builder[O, K]) BuildBinder(_ apis.Config, base apis.Base[O, K], ov apis.Overrides[O, K]) apis.Binder[O, K] {
	return binder.New(
		strategy.NewCached(base),
		strategy.NewStore(base, ov),
		strategy.NewAttach(base),
		strategy.NewFallback(base, ov, b.logger),
	)
}
