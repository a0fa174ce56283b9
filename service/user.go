package service

import (
	"Noted/dao"
	"Noted/models"
	"Noted/pkg/encrypt"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

// Login 用户名密码登录
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}
