package usecase

import (
	"testing"
	"time"

	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fake repository ---

type fakeContactRepo struct {
	contacts map[uint]*domain.Contact
	nextID   uint
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uint]*domain.Contact), nextID: 1}
}

func (f *fakeContactRepo) Create(contact *domain.Contact) error {
	contact.ID = f.nextID
	f.nextID++
	copied := *contact
	f.contacts[contact.ID] = &copied
	return nil
}

func (f *fakeContactRepo) FindAll(ownerID uint, offset, limit int) ([]*domain.Contact, error) {
	var all []*domain.Contact
	for id := uint(1); id < f.nextID; id++ {
		if c, ok := f.contacts[id]; ok && c.UserID == ownerID {
			copied := *c
			all = append(all, &copied)
		}
	}
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeContactRepo) FindByID(id, ownerID uint) (*domain.Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeContactRepo) FindByName(name string, ownerID uint) ([]*domain.Contact, error) {
	return f.filter(ownerID, func(c *domain.Contact) bool { return c.Name == name })
}

func (f *fakeContactRepo) FindBySurname(surname string, ownerID uint) ([]*domain.Contact, error) {
	return f.filter(ownerID, func(c *domain.Contact) bool { return c.Surname == surname })
}

func (f *fakeContactRepo) FindByEmail(email string, ownerID uint) ([]*domain.Contact, error) {
	return f.filter(ownerID, func(c *domain.Contact) bool { return c.Email == email })
}

func (f *fakeContactRepo) filter(ownerID uint, match func(*domain.Contact) bool) ([]*domain.Contact, error) {
	var out []*domain.Contact
	for _, c := range f.contacts {
		if c.UserID == ownerID && match(c) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Update(contact *domain.Contact) error {
	copied := *contact
	f.contacts[contact.ID] = &copied
	return nil
}

func (f *fakeContactRepo) Delete(id, ownerID uint) (bool, error) {
	c, ok := f.contacts[id]
	if !ok || c.UserID != ownerID {
		return false, nil
	}
	delete(f.contacts, id)
	return true, nil
}

// --- helpers ---

const (
	ownerAlice uint = 1
	ownerBob   uint = 2
)

func newTestContactUsecase() (*contactUsecase, *fakeContactRepo) {
	repo := newFakeContactRepo()
	return NewContactUsecase(repo).(*contactUsecase), repo
}

func johnDoe() *dto.ContactRequest {
	return &dto.ContactRequest{
		Name:        "John",
		Surname:     "Doe",
		Email:       "j@x.com",
		PhoneNumber: "123",
		BirthDate:   "18.04.2024",
	}
}

func strptr(s string) *string { return &s }

// --- tests ---

func TestCreate_ParsesBirthDate(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	contact, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	assert.NotZero(t, contact.ID)
	assert.Equal(t, ownerAlice, contact.UserID)
	assert.Equal(t, time.Date(2024, time.April, 18, 0, 0, 0, 0, time.UTC), contact.BirthDate)
}

func TestCreate_InvalidCalendarDate(t *testing.T) {
	t.Parallel()

	uc, repo := newTestContactUsecase()

	req := johnDoe()
	req.BirthDate = "31.02.2024"

	_, err := uc.Create(ownerAlice, req)
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	assert.Empty(t, repo.contacts, "no write may happen on a bad date")
}

func TestCreate_RejectsOtherDateLayouts(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	for _, bad := range []string{"2024-04-18", "18/04/2024", "18.4.24", "April 18, 2024"} {
		req := johnDoe()
		req.BirthDate = bad
		_, err := uc.Create(ownerAlice, req)
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestGet_OwnershipScoping(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	got, err := uc.Get(created.ID, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)

	// another user's identity behaves exactly like a missing contact
	_, err = uc.Get(created.ID, ownerBob)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestReplace_OverwritesAllFields(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	updated, err := uc.Replace(created.ID, ownerAlice, &dto.ContactRequest{
		Name:        "John0",
		Surname:     "Doe0",
		Email:       "test1@api.com",
		PhoneNumber: "1234567891",
		BirthDate:   "01.01.1990",
	})
	require.NoError(t, err)

	assert.Equal(t, "John0", updated.Name)
	assert.Equal(t, "Doe0", updated.Surname)
	assert.Equal(t, "test1@api.com", updated.Email)
	assert.Equal(t, "", updated.AdditionalInfo)
	assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), updated.BirthDate)
}

func TestReplace_NotFoundBeforeDateValidation(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	req := johnDoe()
	req.BirthDate = "31.02.2024"

	_, err := uc.Replace(42, ownerAlice, req)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestReplace_BadDateLeavesContactUntouched(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	req := johnDoe()
	req.Name = "Changed"
	req.BirthDate = "31.02.2024"

	_, err = uc.Replace(created.ID, ownerAlice, req)
	require.ErrorIs(t, err, domain.ErrInvalidDateFormat)

	got, err := uc.Get(created.ID, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)
}

func TestReplace_OtherOwner(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	_, err = uc.Replace(created.ID, ownerBob, johnDoe())
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestPatch_AppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	patched, err := uc.Patch(created.ID, ownerAlice, &dto.ContactPatch{Name: strptr("John2")})
	require.NoError(t, err)

	assert.Equal(t, "John2", patched.Name)
	assert.Equal(t, "Doe", patched.Surname)
	assert.Equal(t, "j@x.com", patched.Email)
	assert.Equal(t, "123", patched.PhoneNumber)
	assert.Equal(t, created.BirthDate, patched.BirthDate)
}

func TestPatch_ValidatesBirthDateWhenPresent(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	_, err = uc.Patch(created.ID, ownerAlice, &dto.ContactPatch{
		Name:      strptr("Changed"),
		BirthDate: strptr("31.02.2024"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidDateFormat)

	got, err := uc.Get(created.ID, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name, "a failed patch must not apply any field")
}

func TestPatch_OtherOwner(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	_, err = uc.Patch(created.ID, ownerBob, &dto.ContactPatch{Name: strptr("X")})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	created, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)

	// other users cannot delete it
	assert.ErrorIs(t, uc.Delete(created.ID, ownerBob), domain.ErrContactNotFound)

	require.NoError(t, uc.Delete(created.ID, ownerAlice))
	assert.ErrorIs(t, uc.Delete(created.ID, ownerAlice), domain.ErrContactNotFound)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	for i := 0; i < 5; i++ {
		req := johnDoe()
		req.Email = req.Email + string(rune('a'+i))
		_, err := uc.Create(ownerAlice, req)
		require.NoError(t, err)
	}
	_, err := uc.Create(ownerBob, johnDoe())
	require.NoError(t, err)

	page, err := uc.List(ownerAlice, 0, 3)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	rest, err := uc.List(ownerAlice, 3, 100)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestSearch_CriterionPrecedence(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()

	_, err := uc.Create(ownerAlice, johnDoe())
	require.NoError(t, err)
	other := johnDoe()
	other.Name = "Jane"
	other.Surname = "Smith"
	other.Email = "jane@x.com"
	_, err = uc.Create(ownerAlice, other)
	require.NoError(t, err)

	byName, err := uc.Search(ownerAlice, strptr("Jane"), nil, nil)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Jane", byName[0].Name)

	bySurname, err := uc.Search(ownerAlice, nil, strptr("Doe"), nil)
	require.NoError(t, err)
	require.Len(t, bySurname, 1)

	byEmail, err := uc.Search(ownerAlice, nil, nil, strptr("jane@x.com"))
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	// name takes precedence over the other criteria when several are given
	mixed, err := uc.Search(ownerAlice, strptr("Jane"), strptr("Doe"), nil)
	require.NoError(t, err)
	require.Len(t, mixed, 1)
	assert.Equal(t, "Jane", mixed[0].Name)

	_, err = uc.Search(ownerAlice, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingSearchCriterion)

	// scoping: bob sees nothing
	none, err := uc.Search(ownerBob, strptr("Jane"), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpcomingBirthdays_WindowAndWraparound(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()
	uc.now = func() time.Time {
		return time.Date(2023, time.December, 28, 10, 30, 0, 0, time.UTC)
	}

	add := func(name, birthDate string) {
		req := johnDoe()
		req.Name = name
		req.BirthDate = birthDate
		_, err := uc.Create(ownerAlice, req)
		require.NoError(t, err)
	}

	add("today", "28.12.1990")     // window start, inclusive
	add("newyear", "03.01.1985")   // wraps across the year boundary
	add("edge", "04.01.2000")      // exactly today+7, inclusive
	add("outside", "05.01.2000")   // one past the window
	add("yesterday", "27.12.1975") // already passed this year
	add("midsummer", "15.06.1999") // nowhere near

	upcoming, err := uc.UpcomingBirthdays(ownerAlice)
	require.NoError(t, err)

	var names []string
	for _, c := range upcoming {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"today", "newyear", "edge"}, names)
}

func TestUpcomingBirthdays_LeapDay(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()
	// 2023 is not a leap year: a Feb 29 birthday counts as Mar 1
	uc.now = func() time.Time {
		return time.Date(2023, time.February, 25, 0, 0, 0, 0, time.UTC)
	}

	req := johnDoe()
	req.Name = "leapling"
	req.BirthDate = "29.02.1992"
	_, err := uc.Create(ownerAlice, req)
	require.NoError(t, err)

	upcoming, err := uc.UpcomingBirthdays(ownerAlice)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "leapling", upcoming[0].Name)
}

func TestUpcomingBirthdays_ScopedToOwner(t *testing.T) {
	t.Parallel()

	uc, _ := newTestContactUsecase()
	uc.now = func() time.Time {
		return time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)
	}

	_, err := uc.Create(ownerAlice, johnDoe()) // birthday 18.04
	require.NoError(t, err)

	upcoming, err := uc.UpcomingBirthdays(ownerBob)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}
