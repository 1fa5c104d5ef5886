package adaptor

import (
	"net/http"

	"sunainscent-api/internal/dto/response"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// Verify handles GET /admin/verify. The route is gated on the admin flag, so
// reaching it is the verification.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	utils.ResponseSuccess(w, "Admin access verified", response.AdminVerifyResponse{
		AdminEmail: principal.Email(),
		IsAdmin:    principal.IsAdmin(),
	})
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}

func (h *AdminHandler) ProductStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetProductStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get product stats")
		return
	}

	utils.ResponseSuccess(w, "Product statistics retrieved successfully", stats)
}

func (h *AdminHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetUserStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get user stats")
		return
	}

	utils.ResponseSuccess(w, "User statistics retrieved successfully", stats)
}

func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get analytics")
		return
	}

	utils.ResponseSuccess(w, "Analytics retrieved successfully", summary)
}
