package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/database"
	"sunainscent-api/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Order   *OrderHandler
	Contact *ContactHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
		Contact: NewContactHandler(service.Contact, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// It writes the 400 itself and returns false when the body is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// handleServiceError maps service and auth errors onto the response envelope.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, auth.ErrServiceUnavailable), errors.Is(err, database.ErrUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Service temporarily unavailable")

	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Incorrect email or password")

	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Could not validate credentials")

	case errors.Is(err, auth.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Admin access required")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrEmailRegistered),
		errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidStatus):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, capitalize(err.Error()), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// auditLog records a successful admin mutation together with the admin
// principal the token gate attached.
func auditLog(log *zap.Logger, r *http.Request, action, id string) {
	adminEmail := ""
	if principal, ok := utils.GetAdminFromContext(r.Context()); ok {
		adminEmail = principal.Email()
	}
	log.Info(action,
		zap.String("admin_email", adminEmail),
		zap.String("id", id))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
