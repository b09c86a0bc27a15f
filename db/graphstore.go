package db

import (
	"context"
	"fmt"

	"musicgraph/model"

	"gorm.io/gorm"
)

// Params are the named bind parameters of a query, referenced as @name.
type Params map[string]interface{}

// GraphStore is the minimal surface the catalog engines need from the store.
// Implementations must be safe for concurrent use.
type GraphStore interface {
	// Query runs a read query and scans every result row into dest,
	// which must be a pointer to a slice (or a scalar for single-column results).
	Query(ctx context.Context, dest interface{}, query string, params Params) error
	// Exec runs a write statement and returns the number of affected rows.
	Exec(ctx context.Context, query string, params Params) (int64, error)
	// Exists checks whether a node document with key exists in collection.
	Exists(ctx context.Context, collection model.Collection, key string) (bool, error)
	// Transaction runs fn against a store bound to a single transaction.
	// Returning an error from fn rolls every write back.
	Transaction(ctx context.Context, fn func(tx GraphStore) error) error
}

// gormGraphStore GORM 实现
type gormGraphStore struct {
	db *gorm.DB
}

// NewGraphStore wraps an open GORM connection.
func NewGraphStore(db *gorm.DB) GraphStore {
	return &gormGraphStore{db: db}
}

func (s *gormGraphStore) Query(ctx context.Context, dest interface{}, query string, params Params) error {
	var tx *gorm.DB
	if len(params) > 0 {
		tx = s.db.WithContext(ctx).Raw(query, map[string]interface{}(params))
	} else {
		tx = s.db.WithContext(ctx).Raw(query)
	}
	if err := tx.Scan(dest).Error; err != nil {
		return wrapQueryError(query, err)
	}
	return nil
}

func (s *gormGraphStore) Exec(ctx context.Context, query string, params Params) (int64, error) {
	var tx *gorm.DB
	if len(params) > 0 {
		tx = s.db.WithContext(ctx).Exec(query, map[string]interface{}(params))
	} else {
		tx = s.db.WithContext(ctx).Exec(query)
	}
	if tx.Error != nil {
		return 0, wrapQueryError(query, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (s *gormGraphStore) Exists(ctx context.Context, collection model.Collection, key string) (bool, error) {
	// 表名不能走绑定参数，只允许已知集合
	if !collection.IsNode() {
		return false, fmt.Errorf("exists: unknown node collection %q", collection)
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", collection)
	var count int64
	if err := s.db.WithContext(ctx).Raw(query, key).Scan(&count).Error; err != nil {
		return false, wrapQueryError(query, err)
	}
	return count > 0, nil
}

func (s *gormGraphStore) Transaction(ctx context.Context, fn func(tx GraphStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormGraphStore{db: tx})
	})
}
