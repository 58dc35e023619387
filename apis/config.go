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

import "github.com/bharel/bdict/rxapi/bind/mode"

// Config carries read-only binding knobs that influence the accessor
// protocol. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// Name is the table's display name, used in diagnostics and
	// warnings. If empty, a name is derived from the owner type.
	Name string

	// Mode controls how views produced for this table track their
	// owner. Weak views re-resolve the owner lazily on every lookup and
	// report owner expiry distinctly from key absence; Strong views
	// hold the owner directly. Auto lets each bind path pick its
	// default: weak for views cached on the owner, strong for views
	// anchored only by the override store.
	Mode mode.ReferenceMode

	// AutoCache controls whether computed views are cached directly on
	// capable owners for fast repeat access. When false, every access
	// goes through the override store, which still guarantees override
	// continuity without placing a view object on the owner.
	AutoCache bool
}
