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

package apis_test

import (
	"testing"

	"github.com/bharel/bdict/apis"
)

func TestEntryKind_String(t *testing.T) {
	cases := []struct {
		kind apis.EntryKind
		want string
	}{
		{apis.EntryBindable, "Bindable"},
		{apis.EntryCustom, "Custom"},
		{apis.EntryTombstone, "Tombstone"},
		{apis.EntryKind(42), "Unknown(42)"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("String(%d) = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestEntryConstructors(t *testing.T) {
	type owner struct{ n int }

	h := func(o *owner, args ...any) (any, error) { return o.n, nil }
	e := apis.Bindable(apis.Handler[owner](h))
	if e.Kind != apis.EntryBindable || e.Handler == nil || e.Value != nil {
		t.Fatalf("Bindable: %+v", e)
	}

	e = apis.Custom[owner]("v")
	if e.Kind != apis.EntryCustom || e.Value != "v" || e.Handler != nil {
		t.Fatalf("Custom: %+v", e)
	}

	e = apis.Tombstone[owner]()
	if e.Kind != apis.EntryTombstone || e.Handler != nil || e.Value != nil {
		t.Fatalf("Tombstone: %+v", e)
	}
}
