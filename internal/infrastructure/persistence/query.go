package persistence

import (
	"errors"
	"fmt"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"gorm.io/gorm"
)

// paginate counts the filtered rows, then applies sorting, limit and offset
func paginate(dbQuery *gorm.DB, page common.Page) (*gorm.DB, int64, error) {
	var total int64
	if err := dbQuery.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rows: %w", err)
	}

	if order := page.OrderClause(); order != "" {
		dbQuery = dbQuery.Order(order)
	}
	if page.Limit > 0 {
		dbQuery = dbQuery.Limit(page.Limit)
	}
	if page.Offset > 0 {
		dbQuery = dbQuery.Offset(page.Offset)
	}
	return dbQuery, total, nil
}

// translate maps GORM errors onto domain sentinels
func translate(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", msg, common.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", msg, common.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
