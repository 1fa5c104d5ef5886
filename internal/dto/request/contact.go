package request

type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,min=5,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}

type ContactUpdateRequest struct {
	IsRead     *bool   `json:"is_read,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=1000"`
}

type ContactListQuery struct {
	PageQuery
	IsRead *bool
	Search string
}
