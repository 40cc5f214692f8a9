package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Belzex/recommenderSystem6/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler expone el mantenimiento del cache de vecindarios.
type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: s}
}

// MountAdminRoutes monta las rutas de mantenimiento (ya dentro del
// grupo protegido con JWT + AdminOnly).
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Get("/admin/cache/summary", h.CacheSummary)
	r.Post("/admin/users/{id}/neighborhood/refresh", h.RefreshNeighborhood)
}

// @Summary Resumen del cache de vecindarios (ADMIN)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CacheSummary
// @Router /admin/cache/summary [get]
func (h *AdminHandler) CacheSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.CacheSummary())
}

// @Summary Recalcular el vecindario de un usuario (ADMIN)
// @Description El cache nunca se invalida solo; este endpoint es la única vía de recálculo.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} models.RefreshResult
// @Failure 500 {object} map[string]string
// @Router /admin/users/{id}/neighborhood/refresh [post]
func (h *AdminHandler) RefreshNeighborhood(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	res, err := h.svc.RefreshNeighborhood(userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}
