package port

import "context"

// Tx exposes the repositories bound to one database transaction.
type Tx interface {
	Carts() CartRepository
	Orders() OrderRepository
	Inventory() InventoryLedger
	Catalog() CatalogReader
}

// UnitOfWork runs fn inside a single transaction: every repository
// operation inside fn commits or rolls back together, so a failed
// checkout never leaves partial reservations or a partial order behind.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
