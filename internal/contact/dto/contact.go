package dto

// ContactRequest carries the full field set for create and replace.
// birth_date travels as text in the exact dd.mm.yyyy format.
type ContactRequest struct {
	Name           string `json:"name" binding:"required,max=150"`
	Surname        string `json:"surname" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,max=150"`
	PhoneNumber    string `json:"phone_number" binding:"required,max=50"`
	BirthDate      string `json:"birth_date" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
}

// ContactPatch tags each field as present (non-nil) or absent (nil).
// Absent fields leave the stored values untouched.
type ContactPatch struct {
	Name           *string `json:"name,omitempty"`
	Surname        *string `json:"surname,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}
