package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "contactbook-backend/internal/auth/delivery"
	"contactbook-backend/internal/contact/domain"
	"contactbook-backend/internal/contact/dto"
	"contactbook-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// List returns the authenticated user's contacts
// GET /api/contacts?skip=0&limit=100
func (h *ContactHandler) List(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	contacts, err := h.contactUsecase.List(owner.ID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// Get returns a single contact
// GET /api/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactUsecase.Get(id, owner.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Search filters contacts by name, surname or email
// GET /api/contacts/search?name=|surname=|email=
func (h *ContactHandler) Search(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)

	contacts, err := h.contactUsecase.Search(owner.ID,
		queryParam(c, "name"), queryParam(c, "surname"), queryParam(c, "email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// Create inserts a new contact
// POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Create(owner.ID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// Replace overwrites every field of a contact
// PUT /api/contacts/:id
func (h *ContactHandler) Replace(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Replace(id, owner.ID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Patch applies only the provided fields
// PATCH /api/contacts/:id
func (h *ContactHandler) Patch(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)
	id, ok := contactID(c)
	if !ok {
		return
	}

	var patch dto.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Patch(id, owner.ID, &patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// Delete removes a contact
// DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)
	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.contactUsecase.Delete(id, owner.ID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}

// Birthdays returns contacts with a birthday in the next 7 days
// GET /api/contacts/birthdays
func (h *ContactHandler) Birthdays(c *gin.Context) {
	owner := authdelivery.CurrentUser(c)

	contacts, err := h.contactUsecase.UpcomingBirthdays(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrContactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidDateFormat), errors.Is(err, domain.ErrMissingSearchCriterion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func contactID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return 0, false
	}
	return uint(id), true
}

func queryParam(c *gin.Context, key string) *string {
	if value, ok := c.GetQuery(key); ok {
		return &value
	}
	return nil
}
