package model

import "time"

// Admin represents an admin-panel user account
type Admin struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserName  string    `json:"userName" gorm:"type:varchar(100);unique;not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the historical singular table name
func (Admin) TableName() string {
	return "admin"
}
