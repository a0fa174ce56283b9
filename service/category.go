package service

import (
	"Noted/config"
	"Noted/dao"
	"Noted/models"
	"Noted/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Rename(ctx context.Context, id uint64, name string) (*models.Category, error)
	Delete(ctx context.Context, id uint64) error
	Reorder(ctx context.Context, ids []uint64) error
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
	Config      *config.Config
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.List(ctx)
}

// Create checks for a name clash first and still maps a unique index
// violation to ErrCategoryExists for concurrent inserts.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	exist, err := s.CategoryDAO.IsExist(ctx, "name = ?", name)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrCategoryExists
	}

	category := &models.Category{
		ID:        snowflake.GenID(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := models.Validate(category); err != nil {
		return nil, err
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Rename(ctx context.Context, id uint64, name string) (*models.Category, error) {
	taken, err := s.CategoryDAO.NameTakenByOther(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCategoryExists
	}

	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := models.Validate(category); err != nil {
		return nil, err
	}

	if _, err := s.CategoryDAO.UpdateById(ctx, id, map[string]any{"name": name}); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return s.find(ctx, id)
}

// Delete removes the category only; its notes stay in place.
func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	rows, err := s.CategoryDAO.DeleteById(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) Reorder(ctx context.Context, ids []uint64) error {
	return applyOrder(ctx, s.CategoryDAO.Db, ids, newOrderPlan(s.Config),
		func(ctx context.Context, db *gorm.DB, id uint64, order int) error {
			return s.CategoryDAO.WithDB(db).UpdateOrder(ctx, id, order)
		})
}

func (s *CategoryService) find(ctx context.Context, id uint64) (*models.Category, error) {
	category, err := s.CategoryDAO.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return category, err
}
