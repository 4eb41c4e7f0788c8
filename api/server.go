package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tronweb/gameserver/game/service"
	"github.com/tronweb/gameserver/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Monitoring
	api.HandleFunc("/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{group}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/stats", s.handleStats).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Static files (game client)
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/")))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Monitoring Handlers

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := s.service.ListGames(r.Context())

	// Parse query parameters
	query := r.URL.Query()
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of games to return

	if order == "" {
		order = "desc"
	}

	sort.Slice(games, func(i, j int) bool {
		if order == "asc" {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		}
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})

	limit := len(games)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(games) {
			limit = l
		}
	}
	games = games[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(games),
		"games": games,
		"order": order,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	group := vars["group"]

	for _, game := range s.service.ListGames(r.Context()) {
		if game.Group == group {
			respondJSON(w, http.StatusOK, game)
			return
		}
	}

	respondError(w, http.StatusNotFound, "game not found")
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.service.Stats(r.Context())

	if s.hub != nil {
		stats.Connections = s.hub.ConnectionCount()
	}

	respondJSON(w, http.StatusOK, stats)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "websocket transport not enabled", http.StatusServiceUnavailable)
		return
	}

	s.hub.ServeWS(w, r, s.service)
}
