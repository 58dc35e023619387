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

package apis

// Handler is an unbound table entry: a callable that expects its owner
// as the explicit first argument. Handlers are declared once per owner
// type and bound per instance on lookup.
type Handler[O any] func(owner *O, args ...any) (any, error)

// Bound is a Handler with its owner pre-applied. Invoking a Bound value
// dispatches to the underlying handler with the owner it was bound to.
type Bound func(args ...any) (any, error)
