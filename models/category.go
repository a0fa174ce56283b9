package models

import (
	"time"
)

type Category struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id" validate:"required"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_category_name" json:"name" validate:"required,max=100"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index:idx_order_name,priority:1" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
