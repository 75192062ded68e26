package usecase

import (
	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"
)

// ContactUsecase defines the interface for contact business logic.
// ownerID is the authenticated user's id; no operation can see or touch
// another user's contacts.
type ContactUsecase interface {
	// List returns the owner's contacts with offset/limit pagination
	List(ownerID uint, skip, limit int) ([]*domain.Contact, error)

	// Get retrieves one contact (ErrContactNotFound outside the owner's scope)
	Get(id, ownerID uint) (*domain.Contact, error)

	// Search filters by the first supplied criterion: name, surname, email
	Search(ownerID uint, name, surname, email *string) ([]*domain.Contact, error)

	// Create parses birth_date (dd.mm.yyyy) and inserts a contact
	Create(ownerID uint, req *dto.ContactRequest) (*domain.Contact, error)

	// Replace overwrites every field of an existing contact
	Replace(id, ownerID uint, req *dto.ContactRequest) (*domain.Contact, error)

	// Patch applies only the fields present in the patch
	Patch(id, ownerID uint, patch *dto.ContactPatch) (*domain.Contact, error)

	// Delete removes a contact
	Delete(id, ownerID uint) error

	// UpcomingBirthdays returns contacts whose birthday (day and month,
	// year ignored) falls within the next 7 days
	UpcomingBirthdays(ownerID uint) ([]*domain.Contact, error)
}
