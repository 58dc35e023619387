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
	"errors"
	"fmt"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/rxapi/common"
)

// ErrNotHandler is returned when a class view is asked to store a value
// that is not a handler. Class views write through to the shared table,
// which only holds handlers; per-owner Custom values belong on instance
// views.
var ErrNotHandler = errors.New("bdict(view): value is not a handler")

// Class is the type-level view: it mirrors the instance view's mapping
// surface but binds the declaring type itself rather than an instance.
// Lookups yield the raw unbound handlers, and Set/Delete route to the
// shared table, so class-level overrides are global rather than private
// to one owner.
type Class[O any, K comparable] struct {
	base apis.Base[O, K]
}

// Ensure Class implements the view and describer contracts.
var (
	_ apis.View[checkOwner, string] = (*Class[checkOwner, string])(nil)
	_ common.Describer              = (*Class[checkOwner, string])(nil)
)

// NewClass constructs a class view over base.
func NewClass[O any, K comparable](base apis.Base[O, K]) *Class[O, K] {
	return &Class[O, K]{base: base}
}

// Lookup returns the raw unbound handler for key; callers supply the
// receiver themselves.
func (v *Class[O, K]) Lookup(key K) (any, error) {
	if h, ok := v.base.Handler(key); ok {
		return h, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// Set writes a handler through to the shared table. value must be an
// apis.Handler[O] (or a function of the same shape); anything else
// fails with ErrNotHandler.
func (v *Class[O, K]) Set(key K, value any) error {
	switch h := value.(type) {
	case apis.Handler[O]:
		v.base.SetHandler(key, h)
		return nil
	case func(*O, ...any) (any, error):
		v.base.SetHandler(key, h)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrNotHandler, value)
	}
}

// SetHandler writes a handler through to the shared table.
func (v *Class[O, K]) SetHandler(key K, h apis.Handler[O]) error {
	v.base.SetHandler(key, h)
	return nil
}

// Delete removes key from the shared table; every owner observes the
// removal. Deleting an absent key returns ErrNotFound.
func (v *Class[O, K]) Delete(key K) error {
	if !v.base.RemoveHandler(key) {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return nil
}

// Keys returns a snapshot of the shared table keys (order unspecified).
func (v *Class[O, K]) Keys() []K {
	return v.base.BaseKeys()
}

// Len returns the number of shared table entries.
func (v *Class[O, K]) Len() int {
	return v.base.BaseLen()
}

// Describe returns a single-line, human-readable description of the view.
func (v *Class[O, K]) Describe() string {
	return fmt.Sprintf("<class view: %d keys over %q>", v.Len(), v.base.Name())
}
