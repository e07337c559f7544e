package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ensureRecord returns the row whose column equals value, or creates fresh
// when no such row exists. The boolean reports whether a row was created.
// Existing rows are never modified.
func ensureRecord[T any](gdb *gorm.DB, fresh T, column string, value any) (*T, bool, error) {
	var existing T
	err := gdb.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := gdb.Omit(clause.Associations).Create(&fresh).Error; err != nil {
		return nil, false, err
	}
	return &fresh, true, nil
}
