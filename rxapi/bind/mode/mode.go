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

package mode

import (
	"fmt"
	"strings"
)

// ReferenceMode controls how a view produced by a bind tracks its owner.
//
// # Overview
//
// ReferenceMode is a small enumerated type that selects the ownership
// relation between a view and the object it is bound to. It governs
// whether the view keeps the owner alive, and how owner disappearance
// is observed. Concrete bind strategies use this value to select the
// owner-reference variant a view is constructed with.
//
// ReferenceMode is intentionally minimal: it does not define caching
// placement or override storage, only the owner-tracking relation.
//
// # Values
//
// The following modes are defined:
//
//   - Auto   — each bind path picks its own default.
//   - Weak   — the view observes the owner without keeping it alive.
//   - Strong — the view holds the owner directly.
//
// # Contract
//
//   - Bind implementations MUST honor an explicit Weak or Strong mode.
//   - Under Weak, the owner MUST be re-resolved lazily at each lookup
//     or bind; a resolved owner pointer MUST NOT be cached across
//     lookups. Owner expiry MUST be reported distinctly from key
//     absence.
//   - Under Strong, the view keeps the owner reachable for as long as
//     the view itself is reachable.
//   - ReferenceMode values are plain integers and safe to share across
//     goroutines.
type ReferenceMode int

const (
	// Auto defers the choice to the bind path that places the view.
	//
	// # Semantics
	//
	// Views cached directly on the owner default to Weak: the owner
	// already anchors the view, and a strong back-reference would form
	// a cycle that keeps both alive needlessly. Views anchored only by
	// the override store default to Strong, because nothing else ties
	// the owner/override pairing together and a weak-bound view could
	// let it vanish prematurely.
	//
	// Auto is the zero value and the configuration default.
	Auto ReferenceMode = iota

	// Weak makes views observe their owner without retaining it.
	//
	// # Semantics
	//
	// The owner is dereferenced on every lookup and bind. Once the
	// owner has been reclaimed, lookups of keys that are still defined
	// fail with an owner-expired condition rather than returning a
	// stale binding. Use Weak when views may outlive their owners or
	// when reference cycles must be avoided.
	Weak

	// Strong makes views hold their owner directly.
	//
	// # Semantics
	//
	// The owner stays reachable for as long as the view does, so
	// lookups never observe owner expiry. Use Strong when no other
	// reference anchors the owner for the lifetime of the view.
	Strong
)

// String returns a human-readable representation of the ReferenceMode.
//
// For all defined enum values, the returned strings are:
//
//   - Auto   -> "Auto"
//   - Weak   -> "Weak"
//   - Strong -> "Strong"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)". This behavior is intentional and MUST NOT panic, so
// that corrupted values can still be surfaced safely in logs.
func (m ReferenceMode) String() string {
	switch m {
	case Auto:
		return "Auto"
	case Weak:
		return "Weak"
	case Strong:
		return "Strong"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Parse parses a textual representation of a ReferenceMode.
//
// It accepts the same canonical tokens that are produced by
// ReferenceMode.String() for known values, with case-insensitive
// matching and surrounding whitespace trimmed:
//
//   - "Auto"   -> Auto
//   - "Weak"   -> Weak
//   - "Strong" -> Strong
//
// Any other input results in a non-nil error; callers MUST NOT rely on
// the returned ReferenceMode in the error case. Parse MUST NOT panic
// for any input.
func Parse(s string) (ReferenceMode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Auto, fmt.Errorf("bind: empty reference mode")
	}

	switch strings.ToUpper(trimmed) {
	case "AUTO":
		return Auto, nil
	case "WEAK":
		return Weak, nil
	case "STRONG":
		return Strong, nil
	default:
		return Auto, fmt.Errorf("bind: unknown reference mode %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration, tests, and
// initialization code where failing fast is acceptable. Callers MUST
// NOT use MustParse on untrusted or user-supplied data.
func MustParse(s string) ReferenceMode {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText encodes ReferenceMode as text.
//
// MarshalText implements encoding.TextMarshaler. For all defined values
// it returns the same tokens as String(). For unknown values it returns
// a non-nil error rather than silently serializing an "Unknown(...)"
// form, so that invalid states are never persisted.
func (m ReferenceMode) MarshalText() ([]byte, error) {
	switch m {
	case Auto, Weak, Strong:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("bind: cannot marshal unknown reference mode %d", int(m))
	}
}

// UnmarshalText decodes a ReferenceMode from its textual representation.
//
// UnmarshalText implements encoding.TextUnmarshaler and accepts the
// same tokens as Parse, case-insensitively, with whitespace trimmed.
// On failure, *m is left unchanged and a non-nil error is returned.
func (m *ReferenceMode) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("bind: empty reference mode")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*m = value
	return nil
}
