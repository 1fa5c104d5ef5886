package response

import (
	"time"

	"sunainscent-api/internal/data/entity"
)

type ContactResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `json:"is_read"`
	AdminNotes *string   `json:"admin_notes,omitempty"`
}

type ContactSubmitted struct {
	ID string `json:"id"`
}

type ContactStats struct {
	TotalMessages    int64 `json:"total_messages"`
	UnreadMessages   int64 `json:"unread_messages"`
	MessagesToday    int64 `json:"messages_today"`
	MessagesThisWeek int64 `json:"messages_this_week"`
}

type MarkAllReadResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}

type ContactSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ContactToResponse(msg *entity.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:         msg.ID.String(),
		Name:       msg.Name,
		Email:      msg.Email,
		Phone:      msg.Phone,
		Subject:    msg.Subject,
		Message:    msg.Message,
		CreatedAt:  msg.CreatedAt,
		IsRead:     msg.IsRead,
		AdminNotes: msg.AdminNotes,
	}
}

func ContactsToResponse(messages []*entity.ContactMessage) []ContactResponse {
	resp := make([]ContactResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, ContactToResponse(m))
	}
	return resp
}

func ContactToSummary(msg *entity.ContactMessage) ContactSummary {
	return ContactSummary{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}
