package minimarket

import "testing"

// newTestShop returns a shop backed by an in-memory store.
func newTestShop(t *testing.T) *Shop {
	t.Helper()
	return NewShop(NewMemStore())
}

// mustSaveProduct saves a product and fails the test on error.
func mustSaveProduct(t *testing.T, s *Shop, p Product) Product {
	t.Helper()
	saved, err := s.SaveProduct(p)
	if err != nil {
		t.Fatalf("SaveProduct(%q) failed: %v", p.Name, err)
	}
	return saved
}

// mustSaveCategory saves a category and fails the test on error.
func mustSaveCategory(t *testing.T, s *Shop, c Category) Category {
	t.Helper()
	saved, err := s.SaveCategory(c)
	if err != nil {
		t.Fatalf("SaveCategory(%q) failed: %v", c.Name, err)
	}
	return saved
}
