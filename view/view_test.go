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

package view_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/bharel/bdict/apis"
	"github.com/bharel/bdict/config"
	"github.com/bharel/bdict/store"
	"github.com/bharel/bdict/table"
	"github.com/bharel/bdict/view"
)

type account struct {
	name    string
	balance int
}

// newBase builds a shared table with deposit/describe handlers.
func newBase(t *testing.T) *table.Table[account, string] {
	t.Helper()
	return table.New(config.NewConfig(config.WithName("accounts")),
		table.Pair[account, string]{Key: "deposit", Handler: func(a *account, args ...any) (any, error) {
			a.balance += args[0].(int)
			return a.balance, nil
		}},
		table.Pair[account, string]{Key: "describe", Handler: func(a *account, args ...any) (any, error) {
			return a.name, nil
		}},
	)
}

// call asserts v to a bound handler and invokes it.
func call(t *testing.T, v any, args ...any) any {
	t.Helper()
	f, ok := v.(apis.Bound)
	if !ok {
		t.Fatalf("lookup result is %T, want apis.Bound", v)
	}
	out, err := f(args...)
	if err != nil {
		t.Fatalf("bound call: %v", err)
	}
	return out
}

func TestInstance_LookupBindsOwner(t *testing.T) {
	base := newBase(t)
	owner := &account{name: "alice"}
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), owner)

	got, err := v.Lookup("deposit")
	if err != nil {
		t.Fatalf("Lookup(deposit): %v", err)
	}
	if out := call(t, got, 10); out != 10 {
		t.Fatalf("deposit(10) = %v, want 10", out)
	}
	if owner.balance != 10 {
		t.Fatalf("owner mutation lost: balance=%d", owner.balance)
	}

	// A second lookup binds the same owner.
	got, _ = v.Lookup("deposit")
	if out := call(t, got, 5); out != 15 {
		t.Fatalf("deposit(5) = %v, want 15", out)
	}
}

func TestInstance_LookupMissing(t *testing.T) {
	base := newBase(t)
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), &account{})

	_, err := v.Lookup("nope")
	if !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Lookup(nope): got %v, want ErrNotFound", err)
	}
}

func TestInstance_SetCustomShadowsBase(t *testing.T) {
	base := newBase(t)
	owner := &account{name: "alice"}
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), owner)

	// Custom values are returned verbatim, never bound, even when they
	// shadow a table handler and even when they are functions.
	fn := func() string { return "custom" }
	if err := v.Set("deposit", fn); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := v.Lookup("deposit")
	if err != nil {
		t.Fatalf("Lookup after Set: %v", err)
	}
	if _, ok := got.(func() string); !ok {
		t.Fatalf("custom value not returned verbatim: %T", got)
	}

	// The shared table is untouched.
	other := view.NewOwning[account, string](base, store.NewSet[account, string](), &account{name: "bob"})
	raw, err := other.Lookup("deposit")
	if err != nil {
		t.Fatalf("other owner's Lookup: %v", err)
	}
	call(t, raw, 3)
}

func TestInstance_SetHandlerBindsOnLookup(t *testing.T) {
	base := newBase(t)
	owner := &account{name: "alice", balance: 100}
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), owner)

	err := v.SetHandler("audit", func(a *account, args ...any) (any, error) {
		return a.balance, nil
	})
	if err != nil {
		t.Fatalf("SetHandler: %v", err)
	}

	got, err := v.Lookup("audit")
	if err != nil {
		t.Fatalf("Lookup(audit): %v", err)
	}
	if out := call(t, got); out != 100 {
		t.Fatalf("audit() = %v, want 100", out)
	}
}

func TestInstance_DeleteSemantics(t *testing.T) {
	base := newBase(t)
	owner := &account{}
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), owner)

	// Deleting an absent key fails.
	if err := v.Delete("nope"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Delete(nope): got %v, want ErrNotFound", err)
	}

	// Deleting a table key shadows it for this owner only.
	if err := v.Delete("deposit"); err != nil {
		t.Fatalf("Delete(deposit): %v", err)
	}
	if _, err := v.Lookup("deposit"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Lookup after Delete: got %v, want ErrNotFound", err)
	}
	// Twice fails: the key is already absent from this view.
	if err := v.Delete("deposit"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Delete(deposit) twice: got %v, want ErrNotFound", err)
	}
	// The table still has it.
	if _, ok := base.Handler("deposit"); !ok {
		t.Fatalf("table handler removed by instance delete")
	}

	// Set after Delete resurrects the key for this owner.
	if err := v.Set("deposit", "back"); err != nil {
		t.Fatalf("Set after Delete: %v", err)
	}
	got, err := v.Lookup("deposit")
	if err != nil || got != "back" {
		t.Fatalf("Lookup after resurrect: got (%v,%v)", got, err)
	}

	// Deleting a native override on top of a table key shadows the
	// table key too.
	if err := v.Delete("deposit"); err != nil {
		t.Fatalf("Delete native override: %v", err)
	}
	if _, err := v.Lookup("deposit"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Lookup after deleting override: got %v, want ErrNotFound", err)
	}

	// Deleting a purely native key removes it outright.
	if err := v.Set("scratch", 1); err != nil {
		t.Fatalf("Set(scratch): %v", err)
	}
	if err := v.Delete("scratch"); err != nil {
		t.Fatalf("Delete(scratch): %v", err)
	}
	if err := v.Delete("scratch"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Delete(scratch) twice: got %v, want ErrNotFound", err)
	}
}

func TestInstance_KeysAndLen(t *testing.T) {
	base := newBase(t)
	v := view.NewOwning[account, string](base, store.NewSet[account, string](), &account{})

	if v.Len() != 2 {
		t.Fatalf("initial Len() = %d, want 2", v.Len())
	}

	_ = v.Set("extra", 1)        // native key
	_ = v.Set("deposit", "mine") // shadows a base key, no double count
	_ = v.Delete("describe")     // tombstones a base key

	keys := v.Keys()
	sort.Strings(keys)
	want := []string{"deposit", "extra"}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
}

func TestInstance_UnboundZeroValue(t *testing.T) {
	var v view.Instance[account, string]

	if _, err := v.Lookup("k"); !errors.Is(err, view.ErrUnbound) {
		t.Fatalf("Lookup on zero value: got %v, want ErrUnbound", err)
	}
	if err := v.Set("k", 1); !errors.Is(err, view.ErrUnbound) {
		t.Fatalf("Set on zero value: got %v, want ErrUnbound", err)
	}
	if err := v.Delete("k"); !errors.Is(err, view.ErrUnbound) {
		t.Fatalf("Delete on zero value: got %v, want ErrUnbound", err)
	}
	if got := v.Keys(); got != nil {
		t.Fatalf("Keys on zero value: got %v, want nil", got)
	}
	if got := v.Describe(); got != "<unbound view>" {
		t.Fatalf("Describe on zero value: got %q", got)
	}
}

func TestClass_LookupReturnsRawHandler(t *testing.T) {
	base := newBase(t)
	v := view.NewClass[account, string](base)

	got, err := v.Lookup("deposit")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	h, ok := got.(apis.Handler[account])
	if !ok {
		t.Fatalf("class lookup result is %T, want apis.Handler", got)
	}

	// The caller supplies the receiver.
	owner := &account{}
	if out, err := h(owner, 7); err != nil || out != 7 {
		t.Fatalf("raw handler call: got (%v,%v)", out, err)
	}
}

func TestClass_WritesAreGlobal(t *testing.T) {
	base := newBase(t)
	cls := view.NewClass[account, string](base)

	err := cls.Set("touch", func(a *account, args ...any) (any, error) {
		return "touched", nil
	})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Every instance view observes the class-level write.
	inst := view.NewOwning[account, string](base, store.NewSet[account, string](), &account{})
	got, err := inst.Lookup("touch")
	if err != nil {
		t.Fatalf("instance Lookup after class Set: %v", err)
	}
	if out := call(t, got); out != "touched" {
		t.Fatalf("touch() = %v, want touched", out)
	}

	// Class deletes are global too.
	if err := cls.Delete("touch"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := inst.Lookup("touch"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("instance Lookup after class Delete: got %v, want ErrNotFound", err)
	}
	if err := cls.Delete("touch"); !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("Delete absent: got %v, want ErrNotFound", err)
	}
}

func TestClass_RejectsNonHandlers(t *testing.T) {
	base := newBase(t)
	cls := view.NewClass[account, string](base)

	if err := cls.Set("bad", 42); !errors.Is(err, view.ErrNotHandler) {
		t.Fatalf("Set(42): got %v, want ErrNotHandler", err)
	}
	// Plain function values of the right shape are accepted.
	if err := cls.Set("good", func(a *account, args ...any) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("Set(func): %v", err)
	}
}
