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

package bdict

import (
	"sync"
	"sync/atomic"

	"github.com/anacrolix/log"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/builder"
	"github.com/bharel/bdict/config"
	"github.com/bharel/bdict/table"
	"github.com/bharel/bdict/view"
)

// init initializes the global bdict state.
func init() {
	st.Store(&state{
		cfg:    config.DefaultConfig(),
		logger: log.Default,
	})
}

// Handler is an unbound handler: a function over an explicit owner
// receiver, stored in a table and bound to a concrete owner on lookup.
type Handler[O any] = apis.Handler[O]

// Bound is a handler with its owner pre-applied, as returned by
// instance-view lookups.
type Bound = apis.Bound

// View is the mapping surface shared by instance and class views.
type View[O any, K comparable] = apis.View[O, K]

// Pair is a single (key, handler) association used to build a table.
type Pair[O any, K comparable] = table.Pair[O, K]

// Table is a shared handler table produced by New or FromMap.
type Table[O any, K comparable] = table.Table[O, K]

// ViewSlot is the embeddable opt-in for in-owner view caching.
type ViewSlot = table.ViewSlot

// Sentinel errors re-exported from the packages that produce them.
var (
	// ErrNotFound is returned when a key is absent after full layered
	// resolution.
	ErrNotFound = view.ErrNotFound
	// ErrOwnerExpired is returned when a weakly referenced owner has
	// been reclaimed at bind time.
	ErrOwnerExpired = view.ErrOwnerExpired
	// ErrUnbound is returned when an unbound view is consulted.
	ErrUnbound = view.ErrUnbound
	// ErrNotHandler is returned when a class view is asked to store a
	// value that is not a handler.
	ErrNotHandler = view.ErrNotHandler
	// ErrInvalidOwner is returned when a nil owner is provided to Bind.
	ErrInvalidOwner = table.ErrInvalidOwner
)

// New constructs a handler table for owner type O from an ordered
// sequence of pairs (later duplicate keys overwrite earlier ones) and
// wires the default accessor protocol. The global configuration is the
// baseline; opts adjust it per table.
func New[O any, K comparable](pairs []Pair[O, K], opts ...config.Option) *Table[O, K] {
	s := st.Load()
	cfg := config.Apply(s.cfg, opts...)
	t := table.New(cfg, pairs...)
	wire(t, s.logger)
	return t
}

// FromMap constructs a handler table for owner type O from a plain map
// of handlers and wires the default accessor protocol.
func FromMap[O any, K comparable](handlers map[K]Handler[O], opts ...config.Option) *Table[O, K] {
	s := st.Load()
	cfg := config.Apply(s.cfg, opts...)
	t := table.FromMap(cfg, handlers)
	wire(t, s.logger)
	return t
}

// wire installs the default binder on t.
func wire[O any, K comparable](t *Table[O, K], logger log.Logger) {
	b := builder.New[O, K](logger)
	cfg := t.Config()
	ov := b.BuildOverrides(cfg)
	t.SetBinder(b.BuildBinder(cfg, t, ov))
}

// Config returns the global bdict configuration that new tables inherit.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global bdict configuration to cfg. Tables already
// constructed keep the configuration they were built with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, logger: old.logger})
}

// Logger returns the global bdict logger.
func Logger() log.Logger {
	return st.Load().logger
}

// SetLogger sets the global bdict logger used by tables constructed
// afterwards.
func SetLogger(logger log.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, logger: logger})
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global bdict state.
var st atomic.Pointer[state]

// state is the global bdict state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate
// fields of a published state. Writers create a new state and swap it
// atomically.
type state struct {
	// cfg is the baseline configuration new tables inherit.
	cfg apis.Config
	// logger receives accessor-protocol warnings.
	logger log.Logger
}
