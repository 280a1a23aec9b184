package verifier

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_TakeRemovesEntry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "state-1", "verifier-1", time.Minute); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Take(ctx, "state-1")
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if got != "verifier-1" {
		t.Fatalf("Take() = %q, want %q", got, "verifier-1")
	}

	got, err = s.Take(ctx, "state-1")
	if err != nil {
		t.Fatalf("Take() second call error = %v", err)
	}
	if got != "" {
		t.Fatalf("Take() after consume = %q, want empty", got)
	}
}

func TestMemoryStore_ExpiredEntriesArePurgedOnLookup(t *testing.T) {
	now := time.Now()
	s := &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return now },
	}
	ctx := context.Background()

	if err := s.Put(ctx, "state-old", "verifier-old", 10*time.Minute); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, "state-new", "verifier-new", time.Hour); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// move past the first entry's TTL
	now = now.Add(11 * time.Minute)

	if got, _ := s.Take(ctx, "state-old"); got != "" {
		t.Fatalf("Take(expired) = %q, want empty", got)
	}

	s.mu.Lock()
	_, stillThere := s.entries["state-old"]
	s.mu.Unlock()
	if stillThere {
		t.Fatalf("expired entry was not purged")
	}

	if got, _ := s.Take(ctx, "state-new"); got != "verifier-new" {
		t.Fatalf("Take(live) = %q, want %q", got, "verifier-new")
	}
}
