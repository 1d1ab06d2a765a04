// Package persistence provides the GORM repositories of the platform.
// Repositories validate domain entities before writing, convert them to table
// models and map missing rows to common.ErrNotFound and unique key violations
// to common.ErrConflict.
package persistence
