package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// fakeLookup counts lookups per id; Resolve fans out concurrently so the
// counters are mutex-guarded.
type fakeLookup struct {
	mu        sync.Mutex
	usernames map[uint]string
	calls     map[uint]int
	err       error
}

func newFakeLookup(usernames map[uint]string) *fakeLookup {
	return &fakeLookup{
		usernames: usernames,
		calls:     make(map[uint]int),
	}
}

func (f *fakeLookup) UsernameByID(_ context.Context, id uint) (string, error) {
	f.mu.Lock()
	f.calls[id]++
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	name, ok := f.usernames[id]
	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

func (f *fakeLookup) callCount(id uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func TestResolveDeduplicatesLookups(t *testing.T) {
	lookup := newFakeLookup(map[uint]string{1: "ana", 2: "bob"})
	resolver := NewUsernameResolver(lookup, nil, nil)

	usernames, err := resolver.Resolve(context.Background(), []uint{1, 1, 2, 1})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if usernames[1] != "ana" || usernames[2] != "bob" {
		t.Errorf("usernames = %v", usernames)
	}
	if got := lookup.callCount(1); got != 1 {
		t.Errorf("id 1 looked up %d times, want 1", got)
	}
	if got := lookup.callCount(2); got != 1 {
		t.Errorf("id 2 looked up %d times, want 1", got)
	}
}

func TestResolveUnknownIDAbsent(t *testing.T) {
	lookup := newFakeLookup(map[uint]string{1: "ana"})
	resolver := NewUsernameResolver(lookup, nil, nil)

	usernames, err := resolver.Resolve(context.Background(), []uint{1, 42})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := usernames[42]; ok {
		t.Error("unknown id produced a mapping entry")
	}
	if usernames[1] != "ana" {
		t.Errorf("known id missing: %v", usernames)
	}
}

func TestResolveSkipsZeroID(t *testing.T) {
	lookup := newFakeLookup(map[uint]string{1: "ana"})
	resolver := NewUsernameResolver(lookup, nil, nil)

	usernames, err := resolver.Resolve(context.Background(), []uint{0, 1})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := lookup.callCount(0); got != 0 {
		t.Errorf("the no-author sentinel was looked up %d times", got)
	}
	if len(usernames) != 1 {
		t.Errorf("usernames = %v, want only id 1", usernames)
	}
}

func TestResolveFailsWhole(t *testing.T) {
	lookup := newFakeLookup(map[uint]string{1: "ana"})
	lookup.err = errors.New("store down")
	resolver := NewUsernameResolver(lookup, nil, nil)

	if _, err := resolver.Resolve(context.Background(), []uint{1, 2}); err == nil {
		t.Fatal("partial result surfaced instead of an error")
	}
}

func TestResolveEmptyInput(t *testing.T) {
	resolver := NewUsernameResolver(newFakeLookup(nil), nil, nil)
	usernames, err := resolver.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(usernames) != 0 {
		t.Errorf("usernames = %v, want empty", usernames)
	}
}

func TestResolveUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	lookup := newFakeLookup(map[uint]string{1: "ana"})
	resolver := NewUsernameResolver(lookup, client, nil)
	ctx := context.Background()

	if _, err := resolver.Resolve(ctx, []uint{1}); err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	usernames, err := resolver.Resolve(ctx, []uint{1})
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}

	if usernames[1] != "ana" {
		t.Errorf("usernames = %v", usernames)
	}
	if got := lookup.callCount(1); got != 1 {
		t.Errorf("store hit %d times, want 1 (second resolve should come from cache)", got)
	}
}

func TestForgetDropsCacheEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	lookup := newFakeLookup(map[uint]string{1: "ana"})
	resolver := NewUsernameResolver(lookup, client, nil)
	ctx := context.Background()

	if _, err := resolver.Resolve(ctx, []uint{1}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	resolver.Forget(ctx, 1)

	if _, err := resolver.Resolve(ctx, []uint{1}); err != nil {
		t.Fatalf("Resolve after Forget: %v", err)
	}
	if got := lookup.callCount(1); got != 2 {
		t.Errorf("store hit %d times, want 2 after Forget", got)
	}
}
