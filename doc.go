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

// Package bdict provides owner-bound dispatch tables: shared mappings
// from key to handler, declared once per owner type and consulted
// through individual owners. Looking a key up through an owner yields
// the handler with that owner pre-applied; writing through an owner
// creates a private override that shadows the shared table for that
// owner alone.
//
// # Tables and views
//
// A table is built from (key, handler) pairs, where a handler takes the
// owner as an explicit first argument:
//
//	greet := func(s *Server, args ...any) (any, error) {
//	    return "hello from " + s.Addr, nil
//	}
//	tbl := bdict.New([]bdict.Pair[Server, string]{{Key: "greet", Handler: greet}})
//
// Consulting the table through an owner produces an instance view:
//
//	v, _ := tbl.Bind(srv)
//	f, _ := v.Lookup("greet") // f is a bdict.Bound closure over srv
//	out, _ := f.(bdict.Bound)()
//
// Instance-view writes are private to the owner: Set stores a value
// returned verbatim on lookup, SetHandler stores a handler still bound
// on lookup, and Delete shadows a table key for that owner only. The
// shared table itself is only written through the class view returned
// by BindType, whose writes every owner observes.
//
// # The accessor protocol
//
// Repeated binds of the same owner converge on the same override layer.
// Owner types that embed ViewSlot get their computed view cached on the
// owner itself; other types are tracked in an identity-keyed side store
// that never keeps the owner alive. Configuration (reference mode,
// caching) is set globally via SetConfig and adjusted per table with
// functional options.
package bdict
