package crud_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/groceries/internal/database"
	"github.com/mrlokans/groceries/internal/database/crud"
	"github.com/mrlokans/groceries/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "crud.db"), database.WithLogLevel("silent"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.DB
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name              string
		skip, limit, max  int
		wantSkip, wantLim int
	}{
		{"within bounds", 5, 10, 100, 5, 10},
		{"zero limit means max", 0, 0, 100, 0, 100},
		{"negative limit means max", 0, -3, 100, 0, 100},
		{"limit above max is clamped", 0, 500, 100, 0, 100},
		{"negative skip becomes zero", -1, 10, 100, 0, 10},
		{"unset max uses default", 0, 0, 0, 0, crud.DefaultMaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := crud.NewPage(tt.skip, tt.limit, tt.max)
			assert.Equal(t, tt.wantSkip, page.Skip)
			assert.Equal(t, tt.wantLim, page.Limit)
		})
	}
}

func TestReferenceError(t *testing.T) {
	err := fmt.Errorf("create: %w", &crud.ReferenceError{Entity: "Item type", Field: "item_type_id", ID: 42})

	assert.True(t, errors.Is(err, crud.ErrInvalidReference))
	assert.EqualError(t, err, "create: Item type with id 42 does not exist")

	var refErr *crud.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "item_type_id", refErr.Field)
}

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, crud.Classify(nil))
	})

	t.Run("translated duplicate", func(t *testing.T) {
		assert.ErrorIs(t, crud.Classify(gorm.ErrDuplicatedKey), crud.ErrDuplicate)
	})

	t.Run("driver unique violation", func(t *testing.T) {
		err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
		assert.ErrorIs(t, crud.Classify(err), crud.ErrDuplicate)
	})

	t.Run("untyped unique violation", func(t *testing.T) {
		err := errors.New("UNIQUE constraint failed: items.name")
		assert.ErrorIs(t, crud.Classify(err), crud.ErrDuplicate)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := crud.Classify(gorm.ErrForeignKeyViolated)
		assert.ErrorIs(t, err, crud.ErrInvalidReference)
		assert.NotErrorIs(t, err, crud.ErrDuplicate)
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		orig := errors.New("disk I/O error")
		assert.Same(t, orig, crud.Classify(orig))
	})
}

func TestClassifyDelete(t *testing.T) {
	assert.NoError(t, crud.ClassifyDelete(nil))
	assert.ErrorIs(t, crud.ClassifyDelete(gorm.ErrForeignKeyViolated), crud.ErrInUse)

	err := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	assert.ErrorIs(t, crud.ClassifyDelete(err), crud.ErrInUse)

	other := errors.New("database is locked")
	assert.Equal(t, other, crud.ClassifyDelete(other))
}

func TestFindAndRequireExists(t *testing.T) {
	db := setupTestDB(t)

	itemType := entities.ItemType{Name: "Dairy"}
	require.NoError(t, db.Create(&itemType).Error)

	var found entities.ItemType
	ok, err := crud.Find(db, &found, itemType.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Dairy", found.Name)

	ok, err = crud.Find(db, &entities.ItemType{}, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, crud.RequireExists(db, &entities.ItemType{}, "Item type", "item_type_id", itemType.ID))

	err = crud.RequireExists(db, &entities.ItemType{}, "Item type", "item_type_id", 999)
	var refErr *crud.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, uint(999), refErr.ID)
}

func TestRequireAllExist(t *testing.T) {
	db := setupTestDB(t)

	itemType := entities.ItemType{Name: "Dairy"}
	require.NoError(t, db.Create(&itemType).Error)
	items := []entities.Item{
		{Name: "Milk", ItemTypeID: itemType.ID},
		{Name: "Cheese", ItemTypeID: itemType.ID},
	}
	require.NoError(t, db.Create(&items).Error)

	assert.NoError(t, crud.RequireAllExist(db, &entities.Item{}, "Item", "item_id", nil))
	assert.NoError(t, crud.RequireAllExist(db, &entities.Item{}, "Item", "item_id",
		[]uint{items[0].ID, items[1].ID, items[0].ID}))

	err := crud.RequireAllExist(db, &entities.Item{}, "Item", "item_id", []uint{items[0].ID, 77, 88})
	var refErr *crud.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, uint(77), refErr.ID, "first missing id in input order")
	assert.Equal(t, "Item", refErr.Entity)
}
