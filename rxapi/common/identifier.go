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

package common

// Identifier extends Namer with a per-instance identifier.
//
// # Overview
//
// Identifier combines:
//
//   - A type-level, canonical owner name (via Namer.OwnerName), and
//   - An instance-level identifier (via OwnerID).
//
// This is useful for logging and debugging, where it matters not only
// *what kind* of owner a view is bound to, but *which specific
// instance* — two owners of the same type carry independent override
// layers, and their describe output should be distinguishable.
//
// The two levels are conceptually orthogonal:
//
//   - OwnerName describes the logical kind of the owner
//     (for example, "net.server").
//   - OwnerID distinguishes one instance from another
//     (for example, "srv-42").
//
// # Usage
//
//	type Server struct {
//	    ID string
//	}
//
//	func (*Server) OwnerName() string  { return "net.server" }
//	func (s *Server) OwnerID() string  { return s.ID }
//
// A view bound to a *Server then reports "net.server(srv-42)" style
// output in Describe.
type Identifier interface {
	Namer

	// OwnerID returns a stable identifier for this owner instance.
	//
	// # Semantics
	//
	// The returned value is intended to be:
	//
	//   - Stable for the lifetime of the instance (MUST).
	//   - Unique within the scope of the corresponding OwnerName
	//     (SHOULD).
	//   - Safe to expose in logs, subject to application-specific
	//     privacy constraints (MUST be considered by the
	//     implementation).
	//
	// Implementations MAY return an empty string to indicate that the
	// instance has no meaningful identifier; callers MUST treat the
	// empty string as "no ID".
	//
	// # Contract
	//
	//   - OwnerID MUST be deterministic for a given instance over its
	//     lifetime (no spontaneous changes).
	//   - OwnerID MUST be safe for concurrent calls and MUST NOT
	//     perform blocking operations or I/O.
	//   - OwnerID SHOULD avoid heap allocations on the hot path (for
	//     example, by returning a field or a precomputed value).
	OwnerID() string
}
