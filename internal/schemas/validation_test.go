package schemas

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantField string
		wantRule  string
	}{
		{
			name:      "blank item type name",
			input:     ItemTypeCreate{Name: "   "},
			wantField: "name",
			wantRule:  "notblank",
		},
		{
			name:      "missing item type name",
			input:     ItemTypeCreate{},
			wantField: "name",
			wantRule:  "required",
		},
		{
			name:      "name too long",
			input:     ItemCreate{Name: strings.Repeat("a", 101), ItemTypeID: 1},
			wantField: "name",
			wantRule:  "max",
		},
		{
			name:      "missing item type id",
			input:     ItemCreate{Name: "Milk"},
			wantField: "item_type_id",
			wantRule:  "required",
		},
		{
			name:      "bad grocery date",
			input:     GroceryCreate{GroceryDate: "01/05/2024"},
			wantField: "grocery_date",
			wantRule:  "datetime",
		},
		{
			name: "nested quantity below one",
			input: GroceryCreate{
				GroceryDate:  "2024-05-01",
				GroceryItems: []GroceryItemCreate{{ItemID: 1}, {ItemID: 2, Quantity: intPtr(0)}},
			},
			wantField: "grocery_items[1].quantity",
			wantRule:  "min",
		},
		{
			name:      "standalone line without grocery",
			input:     StandaloneGroceryItemCreate{GroceryItemCreate: GroceryItemCreate{ItemID: 1}},
			wantField: "grocery_id",
			wantRule:  "required",
		},
		{
			name:      "update with blank name",
			input:     ItemTypeUpdate{Name: strPtr("")},
			wantField: "name",
			wantRule:  "notblank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Equal(t, tt.wantRule, fieldErrs[0].Rule)
			assert.NotEmpty(t, fieldErrs[0].Message)
		})
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	assert.NoError(t, Validate(ItemTypeCreate{Name: "Dairy"}))
	assert.NoError(t, Validate(ItemTypeUpdate{}))
	assert.NoError(t, Validate(GroceryCreate{GroceryDate: "2024-05-01"}))
	assert.NoError(t, Validate(GroceryUpdate{GroceryItems: []GroceryItemCreate{}}))
	assert.NoError(t, Validate(GroceryItemUpdate{Purchased: boolPtr(false)}))
}

func TestFromError(t *testing.T) {
	t.Run("json type mismatch", func(t *testing.T) {
		var in ItemCreate
		err := json.Unmarshal([]byte(`{"name":"Milk","item_type_id":"one"}`), &in)
		fieldErrs := FromError(err)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "item_type_id", fieldErrs[0].Field)
		assert.Equal(t, "type", fieldErrs[0].Rule)
	})

	t.Run("malformed json", func(t *testing.T) {
		var in ItemCreate
		err := json.Unmarshal([]byte(`{"name":`), &in)
		fieldErrs := FromError(err)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "json", fieldErrs[0].Rule)
	})

	t.Run("field errors pass through", func(t *testing.T) {
		orig := FieldErrors{{Field: "grocery_date", Rule: "datetime", Message: "bad"}}
		assert.Equal(t, orig, FromError(orig))
	})
}

func TestFieldErrorsError(t *testing.T) {
	err := FieldErrors{
		{Field: "name", Message: "is required"},
		{Message: "request body must be valid JSON"},
	}
	assert.Equal(t, "validation failed: name: is required; request body must be valid JSON", err.Error())
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "grocery_items[0].item_id", fieldPath("GroceryCreate.grocery_items[0].item_id"))
	assert.Equal(t, "item_id", fieldPath("StandaloneGroceryItemCreate.GroceryItemCreate.item_id"))
	assert.Equal(t, "name", fieldPath("name"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("2023-02-29")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "grocery_date", fieldErrs[0].Field)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, DefaultQuantity, GroceryItemCreate{}.QuantityOrDefault())
	assert.Equal(t, 5, GroceryItemCreate{Quantity: intPtr(5)}.QuantityOrDefault())
	assert.False(t, GroceryItemCreate{}.PurchasedOrDefault())
	assert.True(t, GroceryItemCreate{Purchased: boolPtr(true)}.PurchasedOrDefault())
	assert.Equal(t, 1, GroceryCreate{}.FamilyIDOrDefault())
	assert.Equal(t, 4, GroceryCreate{FamilyID: intPtr(4)}.FamilyIDOrDefault())
	assert.Equal(t, []uint{3, 1, 3}, ItemIDs([]GroceryItemCreate{{ItemID: 3}, {ItemID: 1}, {ItemID: 3}}))
}

func TestPageLimit(t *testing.T) {
	assert.Equal(t, 0, ListParams{}.PageLimit())
	assert.Equal(t, 25, ListParams{Limit: intPtr(25)}.PageLimit())
}

func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
