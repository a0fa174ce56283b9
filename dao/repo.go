package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo holds the queries every collection shares.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

// FindById returns gorm.ErrRecordNotFound when nothing matches.
func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	_, err := r.FindByWhere(ctx, where, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateById applies data to one row and reports how many rows matched.
func (r *Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error) {
	var m T
	res := r.Db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id uint64) (int64, error) {
	var m T
	res := r.Db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	return res.RowsAffected, res.Error
}
