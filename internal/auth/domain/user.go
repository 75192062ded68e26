package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null"`
	Email        string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"size:150;not null"` // Never return password in JSON
	Avatar       string    `json:"avatar,omitempty"`
	RefreshToken *string   `json:"-"`
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
