package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/database"
	"sunainscent-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"store down", fmt.Errorf("find user: %w", database.ErrUnavailable), http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"resolver outage", auth.ErrServiceUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
		{"bad token", auth.ErrInvalidToken, http.StatusUnauthorized, "Could not validate credentials"},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden, "Admin access required"},
		{"not found", fmt.Errorf("order %w", usecase.ErrNotFound), http.StatusNotFound, "Order not found"},
		{"bad id", fmt.Errorf("invalid product ID: %w", usecase.ErrInvalidID), http.StatusBadRequest, "Invalid product ID: malformed uuid"},
		{"email taken", usecase.ErrEmailRegistered, http.StatusBadRequest, "Email already registered"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test")

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message":"`+tt.message+`"`)
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	t.Run("malformed json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))

		var dst payload
		assert.False(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request body")
	})

	t.Run("failed validation", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))

		var dst payload
		assert.False(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"Invalid email format"`)
	})

	t.Run("valid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}`))

		var dst payload
		assert.True(t, decodeAndValidate(rec, req, &dst))
		assert.Equal(t, "a@x.com", dst.Email)
	})
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Order not found", capitalize("order not found"))
}

type stubOrderService struct {
	usecase.OrderService
	deleted []string
	err     error
}

func (s *stubOrderService) DeleteOrder(_ context.Context, orderID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, orderID)
	return nil
}

func TestOrderHandler_DeleteOrder_LogsAdmin(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	service := &stubOrderService{}
	h := NewOrderHandler(service, zap.New(core))

	r := chi.NewRouter()
	r.Delete("/orders/{id}", h.DeleteOrder)

	req := httptest.NewRequest(http.MethodDelete, "/orders/abc", nil)
	ctx := utils.SetPrincipalContext(req.Context(), &auth.AdminPrincipal{Subject: "admin@x.com"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"abc"}, service.deleted)

	entries := logs.FilterMessage("Order deleted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "admin@x.com", fields["admin_email"])
	assert.Equal(t, "abc", fields["id"])
}

func TestOrderHandler_DeleteOrder_FailureIsNotAudited(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h := NewOrderHandler(&stubOrderService{err: fmt.Errorf("order %w", usecase.ErrNotFound)}, zap.New(core))

	r := chi.NewRouter()
	r.Delete("/orders/{id}", h.DeleteOrder)

	req := httptest.NewRequest(http.MethodDelete, "/orders/abc", nil)
	ctx := utils.SetPrincipalContext(req.Context(), &auth.AdminPrincipal{Subject: "admin@x.com"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, logs.FilterMessage("Order deleted").Len())
}
