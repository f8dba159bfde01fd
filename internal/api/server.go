// Package api exposes the display inventory and wallpaper placements
// over HTTP for external frontends.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KleaSCM/caithe/internal/config"
	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/logger"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

// Server is the HTTP control surface.
type Server struct {
	router       *mux.Router
	inventory    *display.Inventory
	wallpaperMgr *wallpaper.Manager
	configMgr    *config.Manager
	upgrader     websocket.Upgrader
}

// NewServer wires the REST routes over the given managers.
func NewServer(inv *display.Inventory, wm *wallpaper.Manager, cm *config.Manager) *Server {
	s := &Server{
		router:       mux.NewRouter(),
		inventory:    inv,
		wallpaperMgr: wm,
		configMgr:    cm,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/displays", s.handleGetDisplays).Methods("GET")
	api.HandleFunc("/displays/primary", s.handleGetPrimary).Methods("GET")
	api.HandleFunc("/displays/refresh", s.handleRefreshDisplays).Methods("POST")

	api.HandleFunc("/wallpapers", s.handleGetPlacements).Methods("GET")
	api.HandleFunc("/wallpapers", s.handleSetWallpaper).Methods("POST")
	api.HandleFunc("/wallpapers", s.handleRemoveAll).Methods("DELETE")
	api.HandleFunc("/wallpapers/{id:[0-9]+}", s.handleRemoveWallpaper).Methods("DELETE")
	api.HandleFunc("/wallpapers/{id:[0-9]+}/mode", s.handleSetMode).Methods("PUT")

	api.HandleFunc("/config", s.handleGetConfig).Methods("GET")
	api.HandleFunc("/config", s.handleUpdateConfig).Methods("PUT")

	api.HandleFunc("/events", s.handleEvents)
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Handler returns the root handler with CORS enabled, for tests and
// embedding.
func (s *Server) Handler() http.Handler {
	return s.enableCORS(s.router)
}

// Start serves the API on the given port, blocking.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logger.WithComponent("api").Info().Str("addr", addr).Msg("API server listening")
	return http.ListenAndServe(addr, s.Handler())
}

// enableCORS adds permissive CORS headers for frontend development.
func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, statusResponse{Success: false, Error: err.Error()})
}

// statusFor maps a wallpaper error to an HTTP status.
func statusFor(err error) int {
	switch wallpaper.CodeOf(err) {
	case wallpaper.CodeInvalidPath, wallpaper.CodeUnsupportedFormat:
		return http.StatusBadRequest
	case wallpaper.CodeFileNotFound, wallpaper.CodeNoPlacement:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleGetDisplays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.inventory.Displays())
}

func (s *Server) handleGetPrimary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.inventory.Primary())
}

func (s *Server) handleRefreshDisplays(w http.ResponseWriter, r *http.Request) {
	if err := s.inventory.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, s.inventory.Displays())
}

func (s *Server) handleGetPlacements(w http.ResponseWriter, r *http.Request) {
	placements := s.wallpaperMgr.Placements()
	if placements == nil {
		placements = []wallpaper.Placement{}
	}
	writeJSON(w, http.StatusOK, placements)
}

func (s *Server) handleSetWallpaper(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path      string `json:"path"`
		DisplayID *int   `json:"displayId"`
		All       bool   `json:"all"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var err error
	switch {
	case req.All:
		err = s.wallpaperMgr.SetWallpaperAllDisplays(r.Context(), req.Path)
	case req.DisplayID != nil:
		err = s.wallpaperMgr.SetWallpaper(r.Context(), req.Path, *req.DisplayID)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("either displayId or all is required"))
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

func (s *Server) handleRemoveWallpaper(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := s.wallpaperMgr.RemoveWallpaper(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

func (s *Server) handleRemoveAll(w http.ResponseWriter, r *http.Request) {
	if err := s.wallpaperMgr.RemoveAllWallpapers(r.Context()); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	mode, err := wallpaper.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.wallpaperMgr.SetMode(r.Context(), id, mode); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.configMgr.Get())
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var incoming config.Settings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := s.configMgr.Update(func(s *config.Settings) { *s = incoming }); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.configMgr.Save(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true})
}

// handleEvents streams placement snapshots over a websocket whenever
// they change.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithComponent("api").Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var last []wallpaper.Placement
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			current := s.wallpaperMgr.Placements()
			if reflect.DeepEqual(current, last) {
				continue
			}
			last = current
			if err := conn.WriteJSON(current); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"displays": s.inventory.Count(),
	})
}
