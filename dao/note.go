package dao

import (
	"Noted/models"
	"context"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

func (d *NoteDAO) WithDB(db *gorm.DB) *NoteDAO {
	nd := *d
	nd.Db = db
	return &nd
}

// FindByCategoryID 分类下的笔记，按 (order, title) 排序
func (d *NoteDAO) FindByCategoryID(ctx context.Context, categoryID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC").
		Order("title ASC").
		Find(&notes).Error
	return notes, err
}

func (d *NoteDAO) IsTitleExist(ctx context.Context, categoryID uint64, title string) (bool, error) {
	return d.Repo.IsExist(ctx, "category_id = ? AND title = ?", categoryID, title)
}

// UpdateOrder writes the sort key only; timestamps are left alone.
func (d *NoteDAO) UpdateOrder(ctx context.Context, id uint64, order int) error {
	return d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		UpdateColumn("sort_order", order).Error
}
