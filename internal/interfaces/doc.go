// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - ItemTypeStore: Item type catalog (internal/http/stores.go)
//   - ItemStore: Items and the per-type listing (internal/http/stores.go)
//   - GroceryStore: Groceries with their nested lines (internal/http/stores.go)
//   - GroceryItemStore: Grocery lines, standalone or per grocery (internal/http/stores.go)
//
// Stores report a missing row as a nil record with a nil error. Failures
// are classified by internal/database/crud into ReferenceError,
// ErrDuplicate and ErrInUse, which the HTTP layer maps to 400 and 409.
//
// ## Health
//
//   - Pinger: Database liveness for /health (internal/http/health.go)
//
// # Adding a New Resource
//
// To add a new catalog resource (e.g., stores):
//
//  1. Add the entity to internal/entities/ and to database.Models, parents
//     first so foreign keys resolve during migration.
//
//  2. Add request schemas to internal/schemas/ with binding tags.
//
//  3. Create sub-package: internal/database/stores/
//
//     type Repository struct { db *gorm.DB; maxPageSize int }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  4. Declare the store interface in internal/http/stores.go, write the
//     controller and register its routes in router.go.
//
//  5. Add compile-time check:
//
//     var _ http.StoreStore = (*stores.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
