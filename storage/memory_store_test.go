package storage

import (
	"errors"
	"testing"

	"phone-stats/models"
)

func phone(model string) *models.Phone {
	return &models.Phone{Model: &model}
}

func storedModels(t *testing.T, s *MemoryStore) []string {
	t.Helper()
	all, err := s.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = *p.Model
	}
	return names
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMemoryStoreWriteAndSnapshot(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Write([]*models.Phone{phone("a"), phone("b")}); err != nil {
		t.Fatal(err)
	}

	snap, _ := s.FetchAll()
	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}

	if len(snap) != 2 || *snap[0].Model != "a" {
		t.Errorf("snapshot changed after Delete: %d phones", len(snap))
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestMemoryStoreInsert(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Write([]*models.Phone{phone("a"), phone("c")})

	if err := s.Insert(1, phone("b")); err != nil {
		t.Fatalf("Insert middle: %v", err)
	}
	if err := s.Insert(3, phone("d")); err != nil {
		t.Fatalf("Insert at len: %v", err)
	}
	if got := storedModels(t, s); !equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("after inserts: got %v", got)
	}

	if err := s.Insert(5, phone("x")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert past end: got %v, want ErrIndexOutOfRange", err)
	}
	if err := s.Insert(-1, phone("x")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert negative: got %v, want ErrIndexOutOfRange", err)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Write([]*models.Phone{phone("a"), phone("b")})

	if err := s.Update(1, phone("z")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := storedModels(t, s); !equal(got, []string{"a", "z"}) {
		t.Errorf("after update: got %v", got)
	}
	if err := s.Update(2, phone("x")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Update at len: got %v, want ErrIndexOutOfRange", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Write([]*models.Phone{phone("a"), phone("b"), phone("c")})

	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := storedModels(t, s); !equal(got, []string{"a", "c"}) {
		t.Errorf("after delete: got %v", got)
	}
	if err := s.Delete(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete at len: got %v, want ErrIndexOutOfRange", err)
	}

	empty := NewMemoryStore()
	if err := empty.Delete(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Delete on empty store: got %v, want ErrIndexOutOfRange", err)
	}
}
