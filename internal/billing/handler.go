package billing

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/legal-suite/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Clients only see invoices issued to them.
	clientID := query.Get("client_id")
	if role(r) == models.RoleClient {
		clientID = userID(r)
	}

	invoices, err := h.store.ListInvoices(clientID, query.Get("doc_type"), query.Get("status"))
	if err != nil {
		log.Printf("[billing] list invoices: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load invoices"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invoices": invoices})
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	if !canBill(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Insufficient permissions"})
		return
	}

	var in models.CreateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if in.ClientName == "" || len(in.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Client name and at least one item are required"})
		return
	}

	invoice, err := h.store.CreateInvoice(userID(r), in)
	if err != nil {
		log.Printf("[billing] create invoice: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create invoice"})
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.store.GetInvoice(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Invoice not found"})
		return
	}
	if err != nil {
		log.Printf("[billing] get invoice: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load invoice"})
		return
	}

	if role(r) == models.RoleClient && (invoice.ClientID == nil || *invoice.ClientID != userID(r)) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Insufficient permissions"})
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *Handler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	if !canBill(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Insufficient permissions"})
		return
	}

	var in models.UpdateInvoiceStatusInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Status == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Status is required"})
		return
	}

	err := h.store.UpdateInvoiceStatus(mux.Vars(r)["id"], in.Status)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Invoice not found"})
		return
	}
	if err != nil {
		log.Printf("[billing] update invoice status: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update invoice"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invoice updated"})
}

func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if role(r) != models.RoleAdmin {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Admin access only"})
		return
	}

	err := h.store.DeleteInvoice(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Invoice not found"})
		return
	}
	if err != nil {
		log.Printf("[billing] delete invoice: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete invoice"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted"})
}

func (h *Handler) GetInvoicePDF(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.store.GetInvoice(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Invoice not found"})
		return
	}
	if err != nil {
		log.Printf("[billing] get invoice for pdf: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load invoice"})
		return
	}

	if role(r) == models.RoleClient && (invoice.ClientID == nil || *invoice.ClientID != userID(r)) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Insufficient permissions"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+invoice.InvoiceNumber+`.pdf"`)
	if err := RenderInvoicePDF(w, invoice); err != nil {
		log.Printf("[billing] render pdf for %s: %v", invoice.InvoiceNumber, err)
	}
}

func canBill(r *http.Request) bool {
	switch role(r) {
	case models.RoleAdmin, models.RoleAccountant, models.RoleLawyer:
		return true
	}
	return false
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value("user_id").(string)
	return id
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
