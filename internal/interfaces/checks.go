package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/groceries/internal/database"
	"github.com/mrlokans/groceries/internal/database/groceries"
	"github.com/mrlokans/groceries/internal/database/groceryitems"
	"github.com/mrlokans/groceries/internal/database/items"
	"github.com/mrlokans/groceries/internal/database/itemtypes"
	"github.com/mrlokans/groceries/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// ItemTypeStore implementations
var _ http.ItemTypeStore = (*itemtypes.Repository)(nil)

// ItemStore implementations
var _ http.ItemStore = (*items.Repository)(nil)

// GroceryStore implementations
var _ http.GroceryStore = (*groceries.Repository)(nil)

// GroceryItemStore implementations
var _ http.GroceryItemStore = (*groceryitems.Repository)(nil)

// =============================================================================
// Health
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
