package adaptor

import (
	"fmt"
	"net/http"

	"sunainscent-api/internal/dto/request"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 100
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitMessage handles POST /contact (public)
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	submitted, err := h.service.SubmitMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit contact message")
		return
	}

	utils.ResponseCreated(w, "Contact message submitted successfully", submitted)
}

// GetMessages handles GET /contact/messages
func (h *ContactHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	isRead, ok := utils.ParseBool(query.Get("is_read"))
	if !ok {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"is_read": "Must be true or false"})
		return
	}

	req := request.ContactListQuery{
		PageQuery: pageFrom(r, defaultMessageLimit, maxMessageLimit),
		IsRead:    isRead,
		Search:    query.Get("search"),
	}

	messages, err := h.service.GetMessages(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get contact messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}

// GetMessageByID handles GET /contact/messages/{id}
func (h *ContactHandler) GetMessageByID(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.GetMessageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get contact message")
		return
	}

	utils.ResponseSuccess(w, "Message retrieved successfully", msg)
}

// UpdateMessage handles PUT /contact/messages/{id}
func (h *ContactHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	var req request.ContactUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	messageID := chi.URLParam(r, "id")
	msg, err := h.service.UpdateMessage(r.Context(), messageID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update contact message")
		return
	}
	auditLog(h.log, r, "Contact message updated", messageID)

	utils.ResponseSuccess(w, "Message updated successfully", msg)
}

// DeleteMessage handles DELETE /contact/messages/{id}
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")
	if err := h.service.DeleteMessage(r.Context(), messageID); err != nil {
		handleServiceError(h.log, w, err, "delete contact message")
		return
	}
	auditLog(h.log, r, "Contact message deleted", messageID)

	utils.ResponseSuccess(w, "Contact message deleted successfully", nil)
}

// GetStats handles GET /contact/stats
func (h *ContactHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get contact stats")
		return
	}

	utils.ResponseSuccess(w, "Contact statistics retrieved successfully", stats)
}

// MarkRead handles POST /contact/messages/{id}/mark-read
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "mark message read")
		return
	}

	utils.ResponseSuccess(w, "Message marked as read", nil)
}

// MarkAllRead handles POST /contact/messages/mark-all-read
func (h *ContactHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.MarkAllRead(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "mark all messages read")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Marked %d messages as read", result.ModifiedCount), result)
}
