package usecase

import (
	"context"
	"fmt"
	"log"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
	"contactbook-backend/internal/auth/repository"
	"contactbook-backend/internal/auth/token"
	"contactbook-backend/pkg/imagestore"

	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	mailer   Mailer
	avatars  imagestore.Store
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, mailer Mailer, avatars imagestore.Store) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		avatars:  avatars,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	u.sendConfirmationMail(user)

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !user.Confirmed {
		return nil, authdomain.ErrEmailNotConfirmed
	}

	return u.issuePair(user)
}

// Refresh rotates the refresh token on every successful use. A presented
// token that decodes but does not match the stored one is treated as reuse
// of a stale or stolen token: the stored token is cleared so the whole
// chain is revoked.
func (u *authUsecase) Refresh(refreshToken string) (*authdto.TokenResponse, error) {
	email, err := u.tokens.Decode(refreshToken, token.ScopeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, token.ErrInvalidToken
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := u.userRepo.UpdateRefreshToken(user, nil); err != nil {
			log.Printf("failed to revoke refresh token for %s: %v", user.Email, err)
		}
		return nil, token.ErrInvalidToken
	}

	return u.issuePair(user)
}

func (u *authUsecase) ConfirmEmail(confirmationToken string) (bool, error) {
	email, err := u.tokens.Decode(confirmationToken, token.ScopeEmail)
	if err != nil {
		return false, err
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, authdomain.ErrVerificationFailed
	}
	if user.Confirmed {
		return true, nil
	}

	if err := u.userRepo.ConfirmEmail(email); err != nil {
		return false, err
	}
	return false, nil
}

func (u *authUsecase) RequestConfirmation(email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, authdomain.ErrVerificationFailed
	}
	if user.Confirmed {
		return true, nil
	}

	u.sendConfirmationMail(user)
	return false, nil
}

func (u *authUsecase) CurrentUser(bearerToken string) (*authdomain.User, error) {
	email, err := u.tokens.Decode(bearerToken, token.ScopeAccess)
	if err != nil {
		return nil, authdomain.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUnauthenticated
	}
	return user, nil
}

func (u *authUsecase) UpdateAvatar(ctx context.Context, user *authdomain.User, data []byte, contentType string) (*authdomain.User, error) {
	key := fmt.Sprintf("avatars/%s-%s", user.Username, uuid.New())
	url, err := u.avatars.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}
	return u.userRepo.UpdateAvatar(user.Email, url)
}

func (u *authUsecase) issuePair(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := u.tokens.IssueAccess(user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.tokens.IssueRefresh(user.Email)
	if err != nil {
		return nil, err
	}

	// Single active refresh token per user: each issue overwrites the last.
	if err := u.userRepo.UpdateRefreshToken(user, &refreshToken); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// sendConfirmationMail fires the confirmation email in the background.
// Mail delivery is best-effort, failures are only logged.
func (u *authUsecase) sendConfirmationMail(user *authdomain.User) {
	emailToken, err := u.tokens.IssueEmail(user.Email)
	if err != nil {
		log.Printf("failed to issue confirmation token for %s: %v", user.Email, err)
		return
	}
	go func() {
		if err := u.mailer.SendConfirmation(user.Email, user.Username, emailToken); err != nil {
			log.Printf("failed to send confirmation email to %s: %v", user.Email, err)
		}
	}()
}
