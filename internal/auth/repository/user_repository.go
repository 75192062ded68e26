package repository

import (
	"errors"

	authdomain "contactbook-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRefreshToken(user *authdomain.User, token *string) error {
	user.RefreshToken = token
	return r.db.Model(user).Update("refresh_token", token).Error
}

func (r *userRepository) ConfirmEmail(email string) error {
	return r.db.Model(&authdomain.User{}).Where("email = ?", email).Update("confirmed", true).Error
}

func (r *userRepository) UpdateAvatar(email, url string) (*authdomain.User, error) {
	if err := r.db.Model(&authdomain.User{}).Where("email = ?", email).Update("avatar", url).Error; err != nil {
		return nil, err
	}
	return r.FindByEmail(email)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
