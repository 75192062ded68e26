package repository

import authdomain "contactbook-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user (confirmed=false, password already hashed)
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, returning nil when no row matches
	FindByEmail(email string) (*authdomain.User, error)

	// UpdateRefreshToken stores the user's refresh token, or clears it (nil)
	UpdateRefreshToken(user *authdomain.User, token *string) error

	// ConfirmEmail marks the user with the given email as confirmed
	ConfirmEmail(email string) error

	// UpdateAvatar stores the avatar URL and returns the updated user
	UpdateAvatar(email, url string) (*authdomain.User, error)
}
