package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/groceries/internal/entities"
	"github.com/mrlokans/groceries/internal/schemas"
)

func createGrocery(t *testing.T, srv *testServer, body map[string]any) schemas.Grocery {
	t.Helper()
	w := srv.do(t, http.MethodPost, "/api/v1/groceries", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[schemas.Grocery](t, w)
}

func TestGroceriesController_CreateAndFetch(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)

	created := createGrocery(t, srv, map[string]any{
		"family_id":    1,
		"grocery_date": "2024-05-01",
		"grocery_items": []map[string]any{
			{"item_id": items[0].ID, "quantity": 2, "purchased": false},
			{"item_id": items[1].ID, "quantity": 1, "purchased": true},
		},
	})

	assert.Equal(t, 1, created.FamilyID)
	assert.Equal(t, "2024-05-01", created.GroceryDate)
	require.Len(t, created.GroceryItems, 2)
	assert.Equal(t, 2, created.GroceryItems[0].Quantity)
	assert.True(t, created.GroceryItems[1].Purchased)

	w := srv.do(t, http.MethodGet, "/api/v1/groceries/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[schemas.Grocery](t, w)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.GroceryItems[0].Item)
	assert.Equal(t, items[0].ID, fetched.GroceryItems[0].Item.ID)
	require.NotNil(t, fetched.GroceryItems[0].Item.ItemType)
	assert.Equal(t, "Dairy", fetched.GroceryItems[0].Item.ItemType.Name)
}

func TestGroceriesController_CreateDefaults(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)

	created := createGrocery(t, srv, map[string]any{
		"grocery_date":  "2024-05-01",
		"grocery_items": []map[string]any{{"item_id": items[0].ID}},
	})

	assert.Equal(t, entities.DefaultFamilyID, created.FamilyID)
	require.Len(t, created.GroceryItems, 1)
	assert.Equal(t, schemas.DefaultQuantity, created.GroceryItems[0].Quantity)
	assert.False(t, created.GroceryItems[0].Purchased)

	empty := createGrocery(t, srv, map[string]any{"grocery_date": "2024-05-02"})
	assert.NotNil(t, empty.GroceryItems)
	assert.Empty(t, empty.GroceryItems)
}

func TestGroceriesController_CreateRejects(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)

	t.Run("unknown item leaves nothing behind", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/groceries", map[string]any{
			"grocery_date": "2024-05-01",
			"grocery_items": []map[string]any{
				{"item_id": items[0].ID},
				{"item_id": 999},
			},
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[validationResponse](t, w)
		assert.Equal(t, CodeInvalidReference, resp.Code)
		assert.Equal(t, "Item with id 999 does not exist", resp.Error)

		list := srv.do(t, http.MethodGet, "/api/v1/groceries", nil)
		assert.Equal(t, "0", list.Header().Get(TotalCountHeader))
	})

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing date", map[string]any{}, "grocery_date"},
		{"bad date", map[string]any{"grocery_date": "01/05/2024"}, "grocery_date"},
		{"impossible date", map[string]any{"grocery_date": "2024-02-30"}, "grocery_date"},
		{"zero quantity", map[string]any{
			"grocery_date":  "2024-05-01",
			"grocery_items": []map[string]any{{"item_id": items[0].ID, "quantity": 0}},
		}, "grocery_items[0].quantity"},
		{"missing item id", map[string]any{
			"grocery_date":  "2024-05-01",
			"grocery_items": []map[string]any{{"quantity": 2}},
		}, "grocery_items[0].item_id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/v1/groceries", tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decode[validationResponse](t, w)
			assert.Equal(t, CodeValidationFailed, resp.Code)
			require.NotEmpty(t, resp.Details)
			assert.Equal(t, tc.field, resp.Details[0].Field)
		})
	}
}

func TestGroceriesController_Update(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)
	grocery := createGrocery(t, srv, map[string]any{
		"family_id":     1,
		"grocery_date":  "2024-05-01",
		"grocery_items": []map[string]any{{"item_id": items[0].ID, "quantity": 1}},
	})
	path := "/api/v1/groceries/" + itoa(grocery.ID)

	t.Run("date only keeps family and items", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, path, map[string]any{"grocery_date": "2024-05-02"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decode[schemas.Grocery](t, w)
		assert.Equal(t, "2024-05-02", updated.GroceryDate)
		assert.Equal(t, 1, updated.FamilyID)
		assert.Len(t, updated.GroceryItems, 1)
	})

	t.Run("replace items", func(t *testing.T) {
		w := srv.do(t, http.MethodPatch, path, map[string]any{
			"grocery_items": []map[string]any{
				{"item_id": items[1].ID, "quantity": 3},
				{"item_id": items[0].ID},
			},
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decode[schemas.Grocery](t, w)
		require.Len(t, updated.GroceryItems, 2)
		assert.Equal(t, items[1].ID, updated.GroceryItems[0].ItemID)
		assert.Equal(t, 3, updated.GroceryItems[0].Quantity)
	})

	t.Run("replace with unknown item keeps old items", func(t *testing.T) {
		w := srv.do(t, http.MethodPatch, path, map[string]any{
			"family_id":     7,
			"grocery_items": []map[string]any{{"item_id": 999}},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		current := decode[schemas.Grocery](t, srv.do(t, http.MethodGet, path, nil))
		assert.Equal(t, 1, current.FamilyID)
		assert.Len(t, current.GroceryItems, 2)
	})

	t.Run("empty list clears items", func(t *testing.T) {
		w := srv.do(t, http.MethodPatch, path, map[string]any{"grocery_items": []map[string]any{}})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Empty(t, decode[schemas.Grocery](t, w).GroceryItems)
	})

	t.Run("missing grocery", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/api/v1/groceries/99999", map[string]any{"family_id": 2})

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Grocery not found", decode[ErrorResponse](t, w).Error)
	})
}

func TestGroceriesController_DeleteCascades(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)
	grocery := createGrocery(t, srv, map[string]any{
		"grocery_date": "2024-05-01",
		"grocery_items": []map[string]any{
			{"item_id": items[0].ID},
			{"item_id": items[1].ID},
		},
	})

	w := srv.do(t, http.MethodDelete, "/api/v1/groceries/"+itoa(grocery.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[schemas.Grocery](t, w).GroceryItems, 2)

	w = srv.do(t, http.MethodGet, "/api/v1/grocery_items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get(TotalCountHeader))

	w = srv.do(t, http.MethodGet, "/api/v1/items", nil)
	assert.Equal(t, "2", w.Header().Get(TotalCountHeader))

	w = srv.do(t, http.MethodDelete, "/api/v1/groceries/"+itoa(grocery.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroceriesController_NestedItems(t *testing.T) {
	srv := setupTestServer(t)
	_, items := srv.seedCatalog(t)
	grocery := createGrocery(t, srv, map[string]any{"grocery_date": "2024-05-01"})
	path := "/api/v1/groceries/" + itoa(grocery.ID) + "/items"

	w := srv.do(t, http.MethodPost, path, map[string]any{"item_id": items[0].ID, "quantity": 4})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decode[schemas.GroceryItem](t, w)
	assert.Equal(t, grocery.ID, added.GroceryID)
	assert.Equal(t, 4, added.Quantity)

	w = srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]schemas.GroceryItem](t, w), 1)

	t.Run("unknown item", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, path, map[string]any{"item_id": 999})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown grocery", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/api/v1/groceries/999/items", map[string]any{"item_id": items[0].ID})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Grocery not found", decode[ErrorResponse](t, w).Error)

		w = srv.do(t, http.MethodGet, "/api/v1/groceries/999/items", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
