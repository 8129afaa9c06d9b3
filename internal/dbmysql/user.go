package dbmysql

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
