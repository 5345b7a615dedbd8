package minimarket

import "time"

// Initialize populates an empty shop with the default categories and a
// handful of sample products. It checks each collection for emptiness
// before inserting, so calling it again is a no-op.
func (s *Shop) Initialize() error {
	now := time.Now()

	categories, err := s.Categories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		defaults := []Category{
			{ID: "drinks", Name: "Drinks", Description: "Sodas, juices, water and more", Color: "#3b82f6", CreatedAt: now},
			{ID: "groceries", Name: "Groceries", Description: "Food and cooking staples", Color: "#10b981", CreatedAt: now},
			{ID: "cleaning", Name: "Cleaning", Description: "Detergents, disinfectants and supplies", Color: "#8b5cf6", CreatedAt: now},
			{ID: "personal-care", Name: "Personal Care", Description: "Soaps, shampoos, toothpaste and more", Color: "#f59e0b", CreatedAt: now},
			{ID: "household", Name: "Household", Description: "Utensils, decoration and home items", Color: "#ef4444", CreatedAt: now},
			{ID: "other", Name: "Other", Description: "Miscellaneous products", Color: "#6b7280", CreatedAt: now},
		}
		if err := writeAll(s.store, colCategories, defaults); err != nil {
			return err
		}
	}

	products, err := s.Products()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		samples := []Product{
			{ID: "1", Name: "Cola 500ml", Category: "drinks", Price: M(2.50), Stock: 50, MinStock: 10,
				Barcode: "7501055309123", Description: "Cola-flavored soft drink", CreatedAt: now, UpdatedAt: now},
			{ID: "2", Name: "White Rice 1kg", Category: "groceries", Price: M(3.75), Stock: 25, MinStock: 5,
				Barcode: "7501030123456", Description: "Premium long-grain rice", CreatedAt: now, UpdatedAt: now},
			{ID: "3", Name: "Laundry Detergent 1L", Category: "cleaning", Price: M(8.90), Stock: 15, MinStock: 3,
				Barcode: "7501001234567", Description: "Liquid laundry detergent", CreatedAt: now, UpdatedAt: now},
			{ID: "4", Name: "Anti-Dandruff Shampoo 400ml", Category: "personal-care", Price: M(12.50), Stock: 20, MinStock: 5,
				Barcode: "7501002345678", Description: "Anti-dandruff shampoo", CreatedAt: now, UpdatedAt: now},
			{ID: "5", Name: "Toilet Paper 4 Rolls", Category: "household", Price: M(4.25), Stock: 30, MinStock: 8,
				Barcode: "7501003456789", Description: "Soft two-ply toilet paper", CreatedAt: now, UpdatedAt: now},
		}
		if err := writeAll(s.store, colProducts, samples); err != nil {
			return err
		}
	}
	return nil
}
