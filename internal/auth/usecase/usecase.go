package usecase

import (
	"context"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Signup registers a new user and sends a confirmation email
	Signup(req *authdto.SignupRequest) (*authdomain.User, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Refresh rotates a presented refresh token into a fresh pair
	Refresh(refreshToken string) (*authdto.TokenResponse, error)

	// ConfirmEmail flips the confirmed flag via an email-scoped token.
	// alreadyConfirmed reports that the flag was set before this call.
	ConfirmEmail(token string) (alreadyConfirmed bool, err error)

	// RequestConfirmation re-sends the confirmation email
	RequestConfirmation(email string) (alreadyConfirmed bool, err error)

	// CurrentUser resolves a bearer access token to the authenticated user
	CurrentUser(bearerToken string) (*authdomain.User, error)

	// UpdateAvatar uploads the image and persists its public URL
	UpdateAvatar(ctx context.Context, user *authdomain.User, data []byte, contentType string) (*authdomain.User, error)
}

// Mailer sends the account-confirmation email. Delivery is best-effort:
// callers log failures and never surface them to the HTTP client.
type Mailer interface {
	SendConfirmation(email, username, confirmationToken string) error
}
