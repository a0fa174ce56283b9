package dao

import (
	"Noted/models"
	"context"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// WithDB returns a copy bound to db, typically a transaction.
func (d *CategoryDAO) WithDB(db *gorm.DB) *CategoryDAO {
	nd := *d
	nd.Db = db
	return &nd
}

// List returns every category ordered by (order, name).
func (d *CategoryDAO) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (d *CategoryDAO) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}

// NameTakenByOther reports whether a category other than id already uses name.
func (d *CategoryDAO) NameTakenByOther(ctx context.Context, name string, id uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "name = ? AND id <> ?", name, id)
}

// UpdateOrder writes the sort key only; timestamps are left alone.
func (d *CategoryDAO) UpdateOrder(ctx context.Context, id uint64, order int) error {
	return d.Db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("sort_order", order).Error
}
