// Package crud holds the pieces shared by the per-entity repositories:
// page clamping, reference checks and classification of store errors.
//
// Repositories report the three outcomes callers care about without
// string matching:
//
//   - absence: (nil, nil) from Get, Update and Delete
//   - a missing referenced row: *ReferenceError, errors.Is(err, ErrInvalidReference)
//   - a unique constraint failure: errors.Is(err, ErrDuplicate)
//
// Deletes refused by a foreign key (the row is still referenced) match ErrInUse.
package crud

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicate        = errors.New("duplicate value")
	ErrInUse            = errors.New("record is still referenced")
)

// ReferenceError reports that a referenced row does not exist.
type ReferenceError struct {
	Entity string // human readable, e.g. "Item type"
	Field  string // input field carrying the reference, e.g. "item_type_id"
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// Find loads the row with the given primary key into dest.
// A missing row is reported as found == false with a nil error.
func Find(tx *gorm.DB, dest any, id uint) (bool, error) {
	err := tx.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RequireExists returns a *ReferenceError when model has no row with id.
func RequireExists(tx *gorm.DB, model any, entity, field string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ReferenceError{Entity: entity, Field: field, ID: id}
	}
	return nil
}

// RequireAllExist checks a batch of references with a single query and
// reports the first missing id in input order.
func RequireAllExist(tx *gorm.DB, model any, entity, field string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uint
	if err := tx.Model(model).Where("id IN ?", unique(ids)).Pluck("id", &found).Error; err != nil {
		return err
	}
	present := make(map[uint]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			return &ReferenceError{Entity: entity, Field: field, ID: id}
		}
	}
	return nil
}

// Classify maps store errors from inserts and updates onto ErrDuplicate or
// ErrInvalidReference. Unrecognised errors are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	return err
}

// ClassifyDelete maps a foreign key refusal onto ErrInUse.
func ClassifyDelete(err error) error {
	if err != nil && isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", ErrInUse, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	// Drivers that do not expose typed errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func unique(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
