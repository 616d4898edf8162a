package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord("Card", 2, 17, "react", 1500*time.Millisecond)

	if rec.ID == "" {
		t.Error("ID should be generated")
	}
	if rec.Name != "Card" || rec.Roots != 2 || rec.Nodes != 17 || rec.Target != "react" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", rec.DurationMS)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other := NewRecord("Card", 2, 17, "react", time.Second)
	if other.ID == rec.ID {
		t.Error("identifiers should be unique")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	for i := 0; i < 5; i++ {
		rec := NewRecord(fmt.Sprintf("Frame %d", i), 1, 1, "react", 0)
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"Frame 4", "Frame 3", "Frame 2"} {
		if got[i].Name != want {
			t.Errorf("got[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestMemoryStoreDefaultLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	for i := 0; i < DefaultListLimit+10; i++ {
		if err := store.Append(ctx, NewRecord("x", 1, 1, "react", 0)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != DefaultListLimit {
		t.Errorf("len = %d, want %d", len(got), DefaultListLimit)
	}
}

func TestMemoryStoreCap(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)

	for i := 0; i < 10; i++ {
		if err := store.Append(ctx, NewRecord(fmt.Sprintf("Frame %d", i), 1, 1, "react", 0)); err != nil {
			t.Fatal(err)
		}
	}

	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3", store.Len())
	}
	got, _ := store.List(ctx, 10)
	if got[0].Name != "Frame 9" || got[2].Name != "Frame 7" {
		t.Errorf("cap should keep the newest records, got %v", got)
	}
}

func TestMemoryStoreEmpty(t *testing.T) {
	store := NewMemoryStore(0)
	got, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 25; j++ {
				_ = store.Append(ctx, NewRecord("x", 1, 1, "react", 0))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if store.Len() != 200 {
		t.Errorf("Len = %d, want 200", store.Len())
	}
}
