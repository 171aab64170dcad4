package service

import (
	"context"
	"encoding/json"
)

// memorySlotStore is an in-memory ports.SlotStore for tests. It keeps the
// serialized form so tests can assert on exactly what would be persisted.
type memorySlotStore struct {
	data  map[string][]byte
	saves int
}

func newMemorySlotStore() *memorySlotStore {
	return &memorySlotStore{data: make(map[string][]byte)}
}

func (s *memorySlotStore) Load(_ context.Context, slot string, out any) (bool, error) {
	b, ok := s.data[slot]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *memorySlotStore) Save(_ context.Context, slot string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[slot] = b
	s.saves++
	return nil
}

func (s *memorySlotStore) Delete(_ context.Context, slot string) error {
	delete(s.data, slot)
	return nil
}

// stubDedup is an in-memory DedupChecker.
type stubDedup struct {
	seen   map[string]bool
	marked []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key string) error {
	d.seen[key] = true
	d.marked = append(d.marked, key)
	return nil
}
