package engagement

import (
	"github.com/gorilla/mux"

	"github.com/fairwaylink/fairwaylink-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, hub *Hub, admin *AdminHandler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/engagement").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/swipes", handler.Swipe).Methods("POST")
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/quota", handler.GetQuota).Methods("GET")
	api.HandleFunc("/ws", hub.ServeWS).Methods("GET")

	api.HandleFunc("/admin/stats", admin.GetStats).Methods("GET")
}
