package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Belzex/recommenderSystem6/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func recRequestFromHTTP(r *http.Request) service.RecRequest {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"
	return service.RecRequest{UserID: userID, K: k, N: n, Refresh: refresh}
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "tamaño del vecindario (máx 50)"
// @Param n query int false "top-N del ranking (máx 200)"
// @Param refresh query bool false "si true, ignora el cache Redis"
// @Success 200 {array} models.RecItem
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items := h.svc.Recommend(r.Context(), recRequestFromHTTP(r))
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Vecindario de un usuario (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cuántos vecinos devolver"
// @Success 200 {array} models.NeighborRecord
// @Router /users/{id}/neighborhood [get]
func (h *RecommendHandler) GetNeighborhood(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	recs := h.svc.Neighborhood(userID, k)
	_ = json.NewEncoder(w).Encode(recs)
}

// @Summary Historial de recomendaciones (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones con progreso (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "tamaño del vecindario (máx 50)"
// @Param n query int false "top-N del ranking (máx 200)"
// @Param refresh query bool false "si true, ignora el cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	req := recRequestFromHTTP(r)

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando vecindario…",
	})

	// paso 1: vecindario (la parte cara si el usuario no está cacheado)
	neighbors := h.svc.Neighborhood(req.UserID, req.K)
	conn.WriteJSON(map[string]any{
		"type":      "progress",
		"step":      "neighborhood",
		"neighbors": len(neighbors),
	})

	// paso 2: ranking (el vecindario ya quedó en cache, esto no lo repite)
	items := h.svc.Recommend(r.Context(), req)

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      req.UserID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
