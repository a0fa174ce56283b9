package service

import (
	"Noted/config"
	"Noted/dao"
	"Noted/models"
	"Noted/pkg/encrypt"
	"Noted/pkg/log"
	"Noted/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedNote struct {
	Title   string
	Content string
}

var seedNotes = []seedNote{
	{
		Title:   "Welcome",
		Content: "Notes live in categories. Pick a category on the left to see its notes.",
	},
	{
		Title:   "Editing",
		Content: "Log in to add, edit or delete notes and categories.",
	},
	{
		Title:   "Ordering",
		Content: "Drag notes or categories to change their order. The new order is saved right away.",
	},
	{
		Title:   "Copying",
		Content: "Click a note to copy its content to the clipboard.",
	},
}

// Installer seeds an empty database. Every step is skipped when its
// record already exists, so running it twice is harmless.
type Installer struct {
	UsersRepo   *dao.Users
	CategoryDAO *dao.CategoryDAO
	NoteDAO     *dao.NoteDAO
	Config      *config.Config
}

func (i *Installer) Run(ctx context.Context) error {
	conf := i.Config.Install

	if err := i.ensureAdmin(ctx, conf.Username, conf.Password); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	category, err := i.ensureCategory(ctx, conf.Category)
	if err != nil {
		return fmt.Errorf("create default category: %w", err)
	}

	created := 0
	for _, seed := range seedNotes {
		exist, err := i.NoteDAO.IsTitleExist(ctx, category.ID, seed.Title)
		if err != nil {
			return err
		}
		if exist {
			continue
		}
		now := time.Now()
		note := &models.Note{
			ID:         snowflake.GenID(),
			CategoryID: category.ID,
			Title:      seed.Title,
			Content:    seed.Content,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := models.Validate(note); err != nil {
			return fmt.Errorf("seed note %q: %w", seed.Title, err)
		}
		if err := i.NoteDAO.Create(ctx, note); err != nil {
			return fmt.Errorf("create note %q: %w", seed.Title, err)
		}
		created++
	}
	log.L.Info("seed notes ready", zap.Int("created", created), zap.Int("total", len(seedNotes)))

	return nil
}

func (i *Installer) ensureAdmin(ctx context.Context, username, password string) error {
	exist, err := i.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return err
	}
	if exist {
		log.L.Info("admin user already exists", zap.String("username", username))
		return nil
	}

	hash, err := encrypt.HashPassword(password)
	if err != nil {
		return err
	}
	user := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if err := models.Validate(user); err != nil {
		return err
	}
	if err := i.UsersRepo.Create(ctx, user); err != nil {
		return err
	}
	log.L.Info("admin user created", zap.String("username", username))
	return nil
}

func (i *Installer) ensureCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := i.CategoryDAO.FindByName(ctx, name)
	if err == nil {
		log.L.Info("default category already exists", zap.String("name", name))
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = &models.Category{
		ID:        snowflake.GenID(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := i.CategoryDAO.Create(ctx, category); err != nil {
		return nil, err
	}
	log.L.Info("default category created", zap.String("name", name))
	return category, nil
}
