package models

import (
	"time"
)

// Note references its category by id only, without a foreign key.
// Deleting a category leaves its notes behind.
type Note struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id" validate:"required"`
	CategoryID uint64    `gorm:"column:category_id;not null;index:idx_category_order,priority:1" json:"category_id" validate:"required"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content" validate:"required"`
	Order      int       `gorm:"column:sort_order;not null;default:0;index:idx_category_order,priority:2" json:"order"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
