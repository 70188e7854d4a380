package court

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/legal-suite/backend/internal/models"
)

type Handler struct {
	catalog *Catalog
	service *Service
}

func NewHandler(catalog *Catalog, service *Service) *Handler {
	return &Handler{catalog: catalog, service: service}
}

// ── Scenario Listings ─────────────────────────────────────

func (h *Handler) ListAccusationScenarios(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenarios": h.catalog.ListAccusation(difficulty)})
}

func (h *Handler) GetAccusationScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.GetAccusation(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) ListPleadingScenarios(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenarios": h.catalog.ListPleading(difficulty)})
}

func (h *Handler) GetPleadingScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.GetPleading(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) ListProceduralScenarios(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenarios": h.catalog.ListProcedural(difficulty)})
}

func (h *Handler) GetProceduralScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := h.catalog.GetProcedural(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ── Submissions ───────────────────────────────────────────

func (h *Handler) SubmitAccusation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)
	userName, _ := r.Context().Value("user_name").(string)

	var sub models.AccusationSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.SubmitAccusation(userID, userName, sub)
	if err == ErrScenarioNotFound {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to score submission"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) SubmitPleading(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)
	userName, _ := r.Context().Value("user_name").(string)

	var sub models.PleadingSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.SubmitPleading(userID, userName, sub)
	if err == ErrScenarioNotFound {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to score submission"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) SubmitProcedural(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)
	userName, _ := r.Context().Value("user_name").(string)

	var sub models.ProceduralSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.SubmitProcedural(userID, userName, sub)
	if err == ErrScenarioNotFound {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Scenario not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to score submission"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ── Leaderboard & Profile ─────────────────────────────────

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameType := r.URL.Query().Get("game_type")
	limit := intQueryParam(r.URL.Query(), "limit", 10)

	resp, err := h.service.GetLeaderboard(gameType, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load leaderboard"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)
	userName, _ := r.Context().Value("user_name").(string)

	resp, err := h.service.GetProfile(userID, userName)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load profile"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, fallback int) int {
	if v := query.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
