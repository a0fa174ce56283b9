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

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	ListByCategoryID(ctx context.Context, categoryID uint64) ([]*models.Note, error)
	ListByCategoryName(ctx context.Context, name string) ([]*models.Note, error)
	Create(ctx context.Context, categoryID uint64, title, content string) (*models.Note, error)
	Update(ctx context.Context, id uint64, title, content string) (*models.Note, error)
	Delete(ctx context.Context, id uint64) error
	Reorder(ctx context.Context, ids []uint64) error
}

type NoteService struct {
	NoteDAO     *dao.NoteDAO
	CategoryDAO *dao.CategoryDAO
	Config      *config.Config
}

// ListByCategoryID does not require the category to exist; an unknown
// id simply has no notes.
func (s *NoteService) ListByCategoryID(ctx context.Context, categoryID uint64) ([]*models.Note, error) {
	return s.NoteDAO.FindByCategoryID(ctx, categoryID)
}

func (s *NoteService) ListByCategoryName(ctx context.Context, name string) ([]*models.Note, error) {
	category, err := s.CategoryDAO.FindByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.NoteDAO.FindByCategoryID(ctx, category.ID)
}

// Create 创建笔记，分类必须存在
func (s *NoteService) Create(ctx context.Context, categoryID uint64, title, content string) (*models.Note, error) {
	if _, err := s.CategoryDAO.FindById(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	now := time.Now()
	note := &models.Note{
		ID:         snowflake.GenID(),
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := models.Validate(note); err != nil {
		return nil, err
	}
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// Update sets title and content, stamps updated_at and returns the
// stored row.
func (s *NoteService) Update(ctx context.Context, id uint64, title, content string) (*models.Note, error) {
	note, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	note.Title = title
	note.Content = content
	if err := models.Validate(note); err != nil {
		return nil, err
	}

	_, err = s.NoteDAO.UpdateById(ctx, id, map[string]any{
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return s.find(ctx, id)
}

func (s *NoteService) Delete(ctx context.Context, id uint64) error {
	rows, err := s.NoteDAO.DeleteById(ctx, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if rows == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// Reorder is not scoped to a category; every listed note gets its index.
func (s *NoteService) Reorder(ctx context.Context, ids []uint64) error {
	return applyOrder(ctx, s.NoteDAO.Db, ids, newOrderPlan(s.Config),
		func(ctx context.Context, db *gorm.DB, id uint64, order int) error {
			return s.NoteDAO.WithDB(db).UpdateOrder(ctx, id, order)
		})
}

func (s *NoteService) find(ctx context.Context, id uint64) (*models.Note, error) {
	note, err := s.NoteDAO.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoteNotFound
	}
	return note, err
}
