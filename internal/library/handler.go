package library

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/legal-suite/backend/internal/models"
)

type Handler struct {
	store     *Store
	assistant Assistant
}

func NewHandler(store *Store, assistant Assistant) *Handler {
	return &Handler{store: store, assistant: assistant}
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	docs, err := h.store.ListDocuments(query.Get("category"), query.Get("search"))
	if err != nil {
		log.Printf("[library] list documents: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load documents"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetDocument(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Document not found"})
		return
	}
	if err != nil {
		log.Printf("[library] get document: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load document"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	var in models.CreateDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if in.Title == "" || in.Category == "" || in.Content == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Title, category, and content are required"})
		return
	}

	doc, err := h.store.CreateDocument(userID(r), in)
	if err != nil {
		log.Printf("[library] create document: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create document"})
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	var in models.CreateDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	doc, err := h.store.UpdateDocument(mux.Vars(r)["id"], in)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Document not found"})
		return
	}
	if err != nil {
		log.Printf("[library] update document: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update document"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	err := h.store.DeleteDocument(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Document not found"})
		return
	}
	if err != nil {
		log.Printf("[library] delete document: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete document"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Document deleted"})
}

// Chat answers a research question grounded on the documents matching
// the question's keywords. At most five documents are sent as context.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Question is required"})
		return
	}

	docs, err := h.store.ListDocuments("", req.Question)
	if err != nil {
		log.Printf("[library] chat document search: %v", err)
		docs = []models.LegalDocument{}
	}
	if len(docs) == 0 {
		// Fall back to the most recent documents so the assistant always
		// has some grounding context.
		docs, err = h.store.ListDocuments("", "")
		if err != nil {
			log.Printf("[library] chat document fallback: %v", err)
			docs = []models.LegalDocument{}
		}
	}
	if len(docs) > 5 {
		docs = docs[:5]
	}

	answer, err := h.assistant.Answer(r.Context(), req.Question, docs)
	if err != nil {
		log.Printf("[library] assistant: %v", err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Assistant is unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, models.ChatResponse{Answer: answer})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value("user_id").(string)
	return id
}

func isStaff(r *http.Request) bool {
	role, _ := r.Context().Value("role").(string)
	return role != "" && role != models.RoleClient
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
