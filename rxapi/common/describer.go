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

// Describer is the diagnostics contract implemented by tables and
// views.
//
// # Overview
//
// Describer produces a compact, human-oriented summary of a dispatch
// structure: what it is, what it is bound to, and how many keys it
// currently exposes. It is intended for:
//
//   - Debugging and introspection tools.
//   - Log lines and error context.
//   - Administrative and developer-facing output.
//
// Describe output is informational: it is NOT a serialization format,
// carries no stability guarantee across releases, and MUST NOT be
// parsed by programs.
//
// # Usage
//
//	tbl := bdict.New[Server, string](pairs)
//	log.Printf("serving with %s", tbl.Describe())
//
//	v, _ := tbl.Bind(srv)
//	fmt.Println(v.Describe()) // <view of net.server(srv-42): 3 keys over "handlers">
//
// # Contract
//
//   - Describe MUST be safe for concurrent calls.
//   - Describe MUST NOT mutate observable state.
//   - Describe MUST NOT panic, including on unbound or expired views;
//     degraded states are reported in the returned text instead.
//   - The returned string SHOULD be a single line without a trailing
//     newline.
type Describer interface {
	// Describe returns a single-line, human-readable description.
	Describe() string
}
