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

package reflect

import (
	"path"
	"reflect"
	"strings"
)

// OwnerType returns the reflect.Type of the owner type parameter O.
func OwnerType[O any]() reflect.Type {
	return reflect.TypeFor[O]()
}

// Identifiable reports whether values of t carry a usable identity for
// weak, identity-keyed association. Zero-sized types do not: distinct
// allocations may share an address, so two owners would be
// indistinguishable as keys.
func Identifiable(t reflect.Type) bool {
	return t != nil && t.Size() > 0
}

// DisplayName returns a compact "pkg.Type" name for t suitable for
// diagnostics and warnings. Generic instantiation parameters are
// stripped ("Table[int,string]" -> "Table"). Unnamed types fall back to
// reflect's own formatting.
func DisplayName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	name := stripTypeParams(t.Name())
	if name == "" {
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
