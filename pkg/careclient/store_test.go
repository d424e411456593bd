package careclient

import (
	"context"
	"errors"
	"testing"
)

func TestStoreListInsertionOrder(t *testing.T) {
	backend := newFakeBackend()
	for _, name := range []string{"Lisinopril", "Metformin", "Atorvastatin"} {
		if _, err := backend.CreateRecord(context.Background(), "medications", map[string]any{"name": name}); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}
	store := NewStore(backend, "medications")

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Lisinopril", "Metformin", "Atorvastatin"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Fields["name"] != name {
			t.Errorf("records[%d] = %v, want %q", i, records[i].Fields["name"], name)
		}
	}
}

func TestStoreListCachesAfterFirstFetch(t *testing.T) {
	backend := newFakeBackend()
	store := NewStore(backend, "medications")

	for i := 0; i < 3; i++ {
		if _, err := store.List(context.Background()); err != nil {
			t.Fatalf("List() error = %v", err)
		}
	}
	if backend.listCalls != 1 {
		t.Errorf("backend list calls = %d, want 1", backend.listCalls)
	}
}

func TestStoreCreateAppends(t *testing.T) {
	backend := newFakeBackend()
	store := NewStore(backend, "medications")

	if _, err := store.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	rec, err := store.Create(context.Background(), map[string]any{"name": "Lisinopril"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("expected the confirmed record to carry an ID")
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 || records[len(records)-1].ID != rec.ID {
		t.Errorf("expected the new record appended, got %d records", len(records))
	}
	if backend.listCalls != 1 {
		t.Errorf("append must not refetch; list calls = %d", backend.listCalls)
	}
}

func TestStoreCreateFailureLeavesListUnchanged(t *testing.T) {
	backend := newFakeBackend()
	if _, err := backend.CreateRecord(context.Background(), "medications", map[string]any{"name": "Lisinopril"}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	store := NewStore(backend, "medications")
	if _, err := store.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	backend.createErr = errBackendDown
	_, err := store.Create(context.Background(), map[string]any{"name": "Metformin"})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("error = %v, want *StoreError", err)
	}
	if !errors.Is(err, errBackendDown) {
		t.Errorf("StoreError must wrap the cause, got %v", err)
	}

	records, listErr := store.List(context.Background())
	if listErr != nil {
		t.Fatalf("List() error = %v", listErr)
	}
	if len(records) != 1 {
		t.Errorf("list changed after failed create: %d records", len(records))
	}
}

func TestStoreListError(t *testing.T) {
	backend := newFakeBackend()
	backend.listErr = errBackendDown
	store := NewStore(backend, "medications")

	_, err := store.List(context.Background())
	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("error = %v, want *StoreError", err)
	}
}

func TestStoreInvalidate(t *testing.T) {
	backend := newFakeBackend()
	store := NewStore(backend, "medications")

	if _, err := store.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	store.Invalidate()
	if _, err := store.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if backend.listCalls != 2 {
		t.Errorf("list calls = %d, want refetch after Invalidate", backend.listCalls)
	}
}

func TestStoreListReturnsCopy(t *testing.T) {
	backend := newFakeBackend()
	if _, err := backend.CreateRecord(context.Background(), "medications", map[string]any{"name": "Lisinopril"}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	store := NewStore(backend, "medications")

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	records[0] = nil

	again, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if again[0] == nil {
		t.Error("mutating the returned slice must not affect the cache")
	}
}
