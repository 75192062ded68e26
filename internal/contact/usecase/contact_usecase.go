package usecase

import (
	"time"

	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"
	"contactbook-backend/internal/contact/repository"
)

// birthDateLayout is the only accepted textual form of a birth date.
const birthDateLayout = "02.01.2006"

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
	now         func() time.Time
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

func (u *contactUsecase) List(ownerID uint, skip, limit int) ([]*domain.Contact, error) {
	return u.contactRepo.FindAll(ownerID, skip, limit)
}

func (u *contactUsecase) Get(id, ownerID uint) (*domain.Contact, error) {
	contact, err := u.contactRepo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func (u *contactUsecase) Search(ownerID uint, name, surname, email *string) ([]*domain.Contact, error) {
	if name != nil {
		return u.contactRepo.FindByName(*name, ownerID)
	}
	if surname != nil {
		return u.contactRepo.FindBySurname(*surname, ownerID)
	}
	if email != nil {
		return u.contactRepo.FindByEmail(*email, ownerID)
	}
	return nil, domain.ErrMissingSearchCriterion
}

func (u *contactUsecase) Create(ownerID uint, req *dto.ContactRequest) (*domain.Contact, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		BirthDate:      birthDate,
		AdditionalInfo: req.AdditionalInfo,
		UserID:         ownerID,
	}
	if err := u.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Replace checks existence before validating the date, so a missing
// contact reports not-found and a bad date never partially overwrites a
// valid contact.
func (u *contactUsecase) Replace(id, ownerID uint, req *dto.ContactRequest) (*domain.Contact, error) {
	contact, err := u.contactRepo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrContactNotFound
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	contact.Name = req.Name
	contact.Surname = req.Surname
	contact.Email = req.Email
	contact.PhoneNumber = req.PhoneNumber
	contact.BirthDate = birthDate
	contact.AdditionalInfo = req.AdditionalInfo

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Patch(id, ownerID uint, patch *dto.ContactPatch) (*domain.Contact, error) {
	contact, err := u.contactRepo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrContactNotFound
	}

	if patch.BirthDate != nil {
		birthDate, err := parseBirthDate(*patch.BirthDate)
		if err != nil {
			return nil, err
		}
		contact.BirthDate = birthDate
	}
	if patch.Name != nil {
		contact.Name = *patch.Name
	}
	if patch.Surname != nil {
		contact.Surname = *patch.Surname
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		contact.PhoneNumber = *patch.PhoneNumber
	}
	if patch.AdditionalInfo != nil {
		contact.AdditionalInfo = *patch.AdditionalInfo
	}

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Delete(id, ownerID uint) error {
	deleted, err := u.contactRepo.Delete(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrContactNotFound
	}
	return nil
}

// UpcomingBirthdays matches by day and month only, so the stored birth
// year is irrelevant. The window is [today, today+7] inclusive and wraps
// across the year boundary (Dec 28 matches a Jan 3 birthday). A Feb 29
// birthday counts as Mar 1 in non-leap years.
func (u *contactUsecase) UpcomingBirthdays(ownerID uint) ([]*domain.Contact, error) {
	contacts, err := u.contactRepo.FindAll(ownerID, 0, -1)
	if err != nil {
		return nil, err
	}

	today := u.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := today.AddDate(0, 0, 7)

	var upcoming []*domain.Contact
	for _, c := range contacts {
		next := nextBirthday(c.BirthDate, today)
		if !next.After(windowEnd) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}

// nextBirthday returns the first occurrence of the contact's birthday on
// or after today. time.Date normalizes Feb 29 to Mar 1 in non-leap years.
func nextBirthday(birthDate, today time.Time) time.Time {
	next := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

func parseBirthDate(value string) (time.Time, error) {
	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return parsed, nil
}
