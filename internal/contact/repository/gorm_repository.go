package repository

import (
	"errors"

	"contactbook-backend/internal/contact/domain"

	"gorm.io/gorm"
)

// gormContactRepository implements ContactRepository using GORM
type gormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM-based ContactRepository
func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(contact *domain.Contact) error {
	return r.db.Create(contact).Error
}

func (r *gormContactRepository) FindAll(ownerID uint, offset, limit int) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.Where("user_id = ?", ownerID).Offset(offset).Limit(limit).Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) FindByID(id, ownerID uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *gormContactRepository) FindByName(name string, ownerID uint) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.Where("name = ? AND user_id = ?", name, ownerID).Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) FindBySurname(surname string, ownerID uint) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.Where("surname = ? AND user_id = ?", surname, ownerID).Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) FindByEmail(email string, ownerID uint) ([]*domain.Contact, error) {
	var contacts []*domain.Contact
	err := r.db.Where("email = ? AND user_id = ?", email, ownerID).Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepository) Update(contact *domain.Contact) error {
	return r.db.Save(contact).Error
}

func (r *gormContactRepository) Delete(id, ownerID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Contact{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
