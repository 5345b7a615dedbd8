package minimarket

// Shop is the consistency layer over one Store. It owns the four record
// collections and every rule that ties them together: catalog management
// (catalog.go), the stock ledger (stock.go), the sales register (sales.go),
// reporting (reports.go) and first-run seeding (seed.go).
type Shop struct {
	store Store
}

// NewShop returns a shop persisting through the given store.
func NewShop(store Store) *Shop { return &Shop{store: store} }

// Open returns a shop persisting into the given data directory.
func Open(dir string) *Shop { return NewShop(NewDirStore(dir)) }
