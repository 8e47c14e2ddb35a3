package models

import "time"

// DeveloperRequest is a pending privilege-escalation request. Approval and
// rejection both delete the row; there is no resolved state kept around.
type DeveloperRequest struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
