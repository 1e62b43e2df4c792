package gorm

import (
	"time"

	"pneutrack/backend/internal/constants"
)

type User struct {
	ID        uint           `gorm:"column:id;primaryKey"`
	Email     string         `gorm:"column:email;uniqueIndex;size:120;not null"`
	Name      string         `gorm:"column:name;size:80;not null"`
	Role      constants.Role `gorm:"column:role;size:20;not null"`
	Password  string         `gorm:"column:password;size:128;not null"` // demo only, plaintext
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
