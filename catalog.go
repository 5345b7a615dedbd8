package minimarket

import (
	"strings"
	"time"
)

// Categories returns all categories in insertion order.
func (s *Shop) Categories() ([]Category, error) {
	return readAll[Category](s.store, colCategories)
}

// Products returns all products in insertion order.
func (s *Shop) Products() ([]Product, error) {
	return readAll[Product](s.store, colProducts)
}

// Category returns the category with the given id.
func (s *Shop) Category(id string) (Category, bool, error) {
	categories, err := s.Categories()
	if err != nil {
		return Category{}, false, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

// Product returns the product with the given id.
func (s *Shop) Product(id string) (Product, bool, error) {
	products, err := s.Products()
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// FindBarcode returns the first product with the given barcode.
func (s *Shop) FindBarcode(code string) (Product, bool, error) {
	products, err := s.Products()
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range products {
		if p.Barcode != "" && p.Barcode == code {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// SaveCategory inserts the category, or replaces the record with the same id
// in place. An empty id is derived from the name. Returns the stored record.
func (s *Shop) SaveCategory(c Category) (Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Category{}, validationErrorf("category name is required")
	}
	if c.ID == "" {
		c.ID = Slugify(c.Name)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	categories, err := s.Categories()
	if err != nil {
		return Category{}, err
	}
	replaced := false
	for i := range categories {
		if categories[i].ID == c.ID {
			categories[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		categories = append(categories, c)
	}
	if err := writeAll(s.store, colCategories, categories); err != nil {
		return Category{}, err
	}
	return c, nil
}

// DeleteCategory removes the category with the given id. While any product
// still references the category it refuses and performs no mutation; that
// outcome is reported as ok=false, not as an error.
func (s *Shop) DeleteCategory(id string) (bool, error) {
	products, err := s.Products()
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.Category == id {
			return false, nil
		}
	}
	categories, err := s.Categories()
	if err != nil {
		return false, err
	}
	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if err := writeAll(s.store, colCategories, kept); err != nil {
		return false, err
	}
	return true, nil
}

// SaveProduct inserts the product, or replaces the record with the same id
// in place. A new product without an id gets a generated one. UpdatedAt is
// refreshed on every save. Returns the stored record.
func (s *Shop) SaveProduct(p Product) (Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Product{}, validationErrorf("product name is required")
	}
	if p.Price.IsNegative() {
		return Product{}, validationErrorf("product price cannot be negative")
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return Product{}, validationErrorf("product stock cannot be negative")
	}
	now := time.Now()
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	products, err := s.Products()
	if err != nil {
		return Product{}, err
	}
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}
	if err := writeAll(s.store, colProducts, products); err != nil {
		return Product{}, err
	}
	return p, nil
}

// DeleteProduct removes the product unconditionally. Historical sales keep
// their name and price snapshots, so they stay renderable; only live
// lookups of the id stop resolving.
func (s *Shop) DeleteProduct(id string) error {
	products, err := s.Products()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeAll(s.store, colProducts, kept)
}

// SearchProducts returns products whose name or barcode contains query
// (case-insensitive), optionally restricted to one category. Empty query
// and category return everything.
func (s *Shop) SearchProducts(query, category string) ([]Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(query)
	var found []Product
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(p.Barcode, query) {
			continue
		}
		found = append(found, p)
	}
	return found, nil
}

// LowStockProducts returns the products at or below their minimum stock.
func (s *Shop) LowStockProducts() ([]Product, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	var low []Product
	for _, p := range products {
		if p.Low() {
			low = append(low, p)
		}
	}
	return low, nil
}

// CategoryCounts returns the number of products referencing each category id.
func (s *Shop) CategoryCounts() (map[string]int, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	return counts, nil
}
