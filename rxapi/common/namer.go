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

// Namer lets owner types choose the name views print for them.
//
// # Overview
//
// Namer is the zero-reflection fast path for describing an owner in
// diagnostics output. When an owner implements Namer, describe logic
// MUST prefer this interface and MUST NOT fall back to type-derived
// naming for that owner.
//
// Semantically, Namer is a type-level contract: OwnerName describes the
// *kind* of owner, not a particular instance. The returned name is
// expected to be independent of mutable instance state and to remain
// stable across program executions as long as the domain model does not
// change.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
//	type Server struct {
//	    Addr string
//	}
//
//	func (*Server) OwnerName() string { return "net.server" }
//
// A view bound to a *Server then reports "net.server" in Describe
// output instead of the reflect-derived type name.
//
// # Naming guidelines
//
// The OwnerName value is expected to be:
//
//   - Stable across program executions (MUST).
//   - Short and human-readable (SHOULD; <64 characters RECOMMENDED).
//   - Expressed as lowercase, dot-separated segments (RECOMMENDED).
type Namer interface {
	// OwnerName returns the canonical, type-level name for this owner.
	//
	// # Contract
	//
	//   - The returned name MUST be non-empty.
	//   - The returned name MUST be deterministic for a given concrete
	//     type and MUST NOT depend on mutable instance state.
	//   - The implementation MUST be safe for concurrent calls from
	//     multiple goroutines.
	OwnerName() string
}
