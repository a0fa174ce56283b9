package models

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id" validate:"required"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username" validate:"required,max=64"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-" validate:"required"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
