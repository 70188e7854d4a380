package mail

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/legal-suite/backend/internal/models"
)

type Handler struct {
	db     *sql.DB
	store  *Store
	sender Sender
	notify func(userID, title, message, notifType, link string) error
}

// NewHandler wires the mail store and the external sender. notify posts
// an in-app notification to internal recipients and may be nil.
func NewHandler(db *sql.DB, store *Store, sender Sender, notify func(userID, title, message, notifType, link string) error) *Handler {
	return &Handler{db: db, store: store, sender: sender, notify: notify}
}

func (h *Handler) GetInbox(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.GetInbox(userID(r))
	if err != nil {
		log.Printf("[mail] inbox: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load inbox"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"emails": entries})
}

func (h *Handler) GetSent(w http.ResponseWriter, r *http.Request) {
	emails, err := h.store.GetSent(userID(r))
	if err != nil {
		log.Printf("[mail] sent: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load sent mail"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"emails": emails})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(userID(r))
	if err != nil {
		log.Printf("[mail] stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load mail stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) SendInternal(w http.ResponseWriter, r *http.Request) {
	var in models.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if len(in.RecipientIDs) == 0 || in.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "At least one recipient and a subject are required"})
		return
	}

	senderEmail := h.lookupEmail(userID(r))
	emailID, err := h.store.SendInternal(userID(r), userName(r), senderEmail, in)
	if err != nil {
		log.Printf("[mail] send internal: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send email"})
		return
	}

	if h.notify != nil {
		for _, rid := range in.RecipientIDs {
			if err := h.notify(rid, "New mail", "Message from "+userName(r)+": "+in.Subject, "email", "/email"); err != nil {
				log.Printf("WARN: failed to notify recipient %s: %v", rid, err)
			}
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Email sent", "email_id": emailID})
}

func (h *Handler) SendExternal(w http.ResponseWriter, r *http.Request) {
	if role(r) == models.RoleClient {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	var in models.SendExternalEmailInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if in.ToEmail == "" || in.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Recipient address and subject are required"})
		return
	}

	if err := h.sender.Send(in.ToEmail, in.Subject, in.Body); err != nil {
		log.Printf("[mail] external send to %s: %v", in.ToEmail, err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Failed to deliver email"})
		return
	}

	senderEmail := h.lookupEmail(userID(r))
	emailID, err := h.store.RecordExternal(userID(r), userName(r), senderEmail, in)
	if err != nil {
		// Delivered but not recorded. Log and report success anyway.
		log.Printf("WARN: external email delivered but not recorded: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email delivered", "email_id": emailID})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.store.MarkRead(mux.Vars(r)["id"], userID(r))
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Email not found"})
		return
	}
	if err != nil {
		log.Printf("[mail] mark read: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update email"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Email updated"})
}

func (h *Handler) lookupEmail(uid string) string {
	var email string
	if err := h.db.QueryRow(`SELECT email FROM users WHERE id = $1`, uid).Scan(&email); err != nil {
		log.Printf("WARN: failed to resolve sender email for %s: %v", uid, err)
	}
	return email
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value("user_id").(string)
	return id
}

func userName(r *http.Request) string {
	name, _ := r.Context().Value("user_name").(string)
	return name
}

func role(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
