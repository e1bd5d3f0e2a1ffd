package crud

import "gorm.io/gorm"

// DefaultMaxPageSize bounds every list query unless configured otherwise.
const DefaultMaxPageSize = 100

// Page is a clamped skip/limit pair.
type Page struct {
	Skip  int
	Limit int
}

// NewPage clamps the caller supplied values. Limits that are not positive or
// exceed maxSize become maxSize; negative skips become zero.
func NewPage(skip, limit, maxSize int) Page {
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}
	if limit <= 0 || limit > maxSize {
		limit = maxSize
	}
	if skip < 0 {
		skip = 0
	}
	return Page{Skip: skip, Limit: limit}
}

// Scope applies the page to a query, ordered by insertion.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC").Offset(p.Skip).Limit(p.Limit)
}
