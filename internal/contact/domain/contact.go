package domain

import (
	"time"

	authdomain "contactbook-backend/internal/auth/domain"
)

// Contact is a single address-book entry. Every contact belongs to exactly
// one user; the owning row is removed when the user is deleted.
type Contact struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:150;not null"`
	Surname        string          `json:"surname" gorm:"size:50;not null"`
	Email          string          `json:"email" gorm:"size:150;not null"`
	PhoneNumber    string          `json:"phone_number" gorm:"size:50;not null"`
	BirthDate      time.Time       `json:"birth_date" gorm:"not null"`
	AdditionalInfo string          `json:"additional_info,omitempty"`
	UserID         uint            `json:"user_id" gorm:"index;not null"`
	User           authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
