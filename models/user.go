package models

import "time"

type AccountType string

const (
	TierUser      AccountType = "user"
	TierDeveloper AccountType = "developer"
	TierAdmin     AccountType = "admin"
)

type User struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	Name        string      `json:"name" gorm:"not null"`
	Email       string      `json:"email" gorm:"uniqueIndex;not null"`
	Password    string      `json:"-" gorm:"not null"`
	AccountType AccountType `json:"account_type" gorm:"default:'user'"`
	CreatedAt   time.Time   `json:"created_at"`
}
