package model

import (
	"time"

	"gorm.io/gorm"
)

type PostModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      UserModel      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}
