package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var ErrNotFound = errors.New("record not found")

// Immutable columns are never touched by Update or Patch.
var Immutable = []string{"id", "created_by", "created_at"}

// Repository is the create/read/update/delete surface of one table.
type Repository[T any] struct {
	db     *gorm.DB
	table  string
	schema *schema.Schema
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	r := &Repository[T]{db: db}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err == nil {
		r.table = stmt.Schema.Table
		r.schema = stmt.Schema
	}
	return r
}

// Table is the underlying table name.
func (r *Repository[T]) Table() string { return r.table }

// List returns every row, newest first.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return out, nil
}

// Where returns rows matching a single column equality, newest first.
func (r *Repository[T]) Where(ctx context.Context, column string, value any) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).
		Where(map[string]any{column: value}).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	return out, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.table, id, err)
	}
	return &out, nil
}

func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

// Update applies the non-zero fields of patch to the row with the given id.
// Columns listed in omit are left untouched.
func (r *Repository[T]) Update(ctx context.Context, id string, patch *T, omit ...string) error {
	cols := append(append([]string{}, omit...), Immutable...)
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Omit(cols...).
		Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("update %s %s: %w", r.table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Patch writes the fields of patch whose JSON names appear in keys, zero
// values included. Keys that do not map to a column, and columns listed in
// omit, Immutable or updated_at, are ignored.
func (r *Repository[T]) Patch(ctx context.Context, id string, patch *T, keys []string, omit ...string) error {
	if r.schema == nil {
		return fmt.Errorf("patch %s: schema not parsed", r.table)
	}
	skip := map[string]struct{}{"updated_at": {}}
	for _, c := range append(append([]string{}, omit...), Immutable...) {
		skip[c] = struct{}{}
	}
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	rv := reflect.Indirect(reflect.ValueOf(patch))
	cols := map[string]any{}
	for _, f := range r.schema.Fields {
		if f.DBName == "" {
			continue
		}
		if _, ok := skip[f.DBName]; ok {
			continue
		}
		if _, ok := wanted[jsonName(f)]; !ok {
			continue
		}
		v, _ := f.ValueOf(ctx, rv)
		cols[f.DBName] = v
	}
	if len(cols) == 0 {
		_, err := r.Get(ctx, id)
		return err
	}
	return r.UpdateColumns(ctx, id, cols)
}

func jsonName(f *schema.Field) string {
	name := strings.Split(f.Tag.Get("json"), ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}

// UpdateColumns sets the given columns, zero values included.
func (r *Repository[T]) UpdateColumns(ctx context.Context, id string, cols map[string]any) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return fmt.Errorf("update %s %s: %w", r.table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s %s: %w", r.table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
