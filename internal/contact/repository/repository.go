package repository

import "contactbook-backend/internal/contact/domain"

// ContactRepository defines the interface for contact data access.
// Every query is scoped to the owning user's id; a contact outside that
// scope behaves exactly like a missing row.
type ContactRepository interface {
	// Create inserts a new contact bound to its owner
	Create(contact *domain.Contact) error

	// FindAll returns the owner's contacts with offset/limit pagination
	FindAll(ownerID uint, offset, limit int) ([]*domain.Contact, error)

	// FindByID finds one contact by id within the owner's scope,
	// returning nil when no row matches
	FindByID(id, ownerID uint) (*domain.Contact, error)

	// FindByName returns the owner's contacts matching the name exactly
	FindByName(name string, ownerID uint) ([]*domain.Contact, error)

	// FindBySurname returns the owner's contacts matching the surname exactly
	FindBySurname(surname string, ownerID uint) ([]*domain.Contact, error)

	// FindByEmail returns the owner's contacts matching the email exactly
	FindByEmail(email string, ownerID uint) ([]*domain.Contact, error)

	// Update persists all fields of an already loaded contact
	Update(contact *domain.Contact) error

	// Delete removes a contact within the owner's scope; deleted reports
	// whether a row was actually removed
	Delete(id, ownerID uint) (deleted bool, err error)
}
