package office

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/legal-suite/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ── Employees ─────────────────────────────────────────────

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	employees, err := h.store.ListEmployees()
	if err != nil {
		log.Printf("[office] list employees: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load employees"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"employees": employees})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if role(r) != models.RoleAdmin {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Admin access only"})
		return
	}

	err := h.store.DeleteUser(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
		return
	}
	if err != nil {
		log.Printf("[office] delete user: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete user"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// ── Client Requests ───────────────────────────────────────

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Clients only ever see their own requests.
	clientID := ""
	if role(r) == models.RoleClient {
		clientID = userID(r)
	}

	requests, err := h.store.ListRequests(clientID, query.Get("request_type"), query.Get("status"))
	if err != nil {
		log.Printf("[office] list requests: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load requests"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var in models.CreateClientRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if in.RequestType == "" || in.ClientName == "" || in.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Request type, client name, and subject are required"})
		return
	}

	clientID := ""
	if role(r) == models.RoleClient {
		clientID = userID(r)
	}

	request, err := h.store.CreateRequest(clientID, in)
	if err != nil {
		log.Printf("[office] create request: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create request"})
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	var in models.UpdateRequestStatusInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Status == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Status is required"})
		return
	}

	err := h.store.UpdateRequestStatus(mux.Vars(r)["id"], in.Status)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Request not found"})
		return
	}
	if err != nil {
		log.Printf("[office] update request status: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update request"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request updated"})
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if role(r) != models.RoleAdmin {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Admin access only"})
		return
	}

	err := h.store.DeleteRequest(mux.Vars(r)["id"])
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Request not found"})
		return
	}
	if err != nil {
		log.Printf("[office] delete request: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete request"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request deleted"})
}

// ── Tasks ─────────────────────────────────────────────────

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	query := r.URL.Query()
	tasks, err := h.store.ListTasks(query.Get("assigned_to"), query.Get("status"))
	if err != nil {
		log.Printf("[office] list tasks: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load tasks"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *Handler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(userID(r), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("[office] list my tasks: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load tasks"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if !isStaff(r) {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Staff access only"})
		return
	}

	var in models.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if in.Title == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Title is required"})
		return
	}

	task, err := h.store.CreateTask(userID(r), in)
	if err != nil {
		log.Printf("[office] create task: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create task"})
		return
	}

	if in.AssignedTo != "" {
		err := h.store.CreateNotification(in.AssignedTo, "New task assigned",
			"You have been assigned task "+task.TaskNumber+": "+task.Title, "task", "/tasks")
		if err != nil {
			log.Printf("WARN: failed to notify assignee for task %s: %v", task.TaskNumber, err)
		}
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateTaskStatusInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Status == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Status is required"})
		return
	}

	err := h.store.UpdateTaskStatus(mux.Vars(r)["id"], in.Status)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		return
	}
	if err != nil {
		log.Printf("[office] update task status: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update task"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task updated"})
}

// ── Attendance ────────────────────────────────────────────

func (h *Handler) GetTodayAttendance(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetTodayAttendance(userID(r))
	if err != nil {
		log.Printf("[office] today attendance: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load attendance"})
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"attendance": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"attendance": record})
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var in models.ClockInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	record, err := h.store.ClockIn(userID(r), userName(r), in)
	if err == ErrAlreadyClockedIn {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Already clocked in today"})
		return
	}
	if err != nil {
		log.Printf("[office] clock in: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to clock in"})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var in models.ClockInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	record, err := h.store.ClockOut(userID(r), in)
	if err == ErrNotClockedIn {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Not clocked in today"})
		return
	}
	if err == ErrAlreadyClockedOut {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Already clocked out today"})
		return
	}
	if err != nil {
		log.Printf("[office] clock out: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to clock out"})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Non-admins only see their own history.
	uid := userID(r)
	if role(r) == models.RoleAdmin {
		if requested := query.Get("user_id"); requested != "" {
			uid = requested
		} else {
			uid = ""
		}
	}

	records, err := h.store.ListAttendance(uid, query.Get("from"), query.Get("to"))
	if err != nil {
		log.Printf("[office] list attendance: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load attendance"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"attendance": records})
}

// ── Notifications ─────────────────────────────────────────

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r.URL.Query(), "limit", 50)
	notifications, err := h.store.ListNotifications(userID(r), limit)
	if err != nil {
		log.Printf("[office] list notifications: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load notifications"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.CountUnreadNotifications(userID(r))
	if err != nil {
		log.Printf("[office] unread count: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to count notifications"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread_count": count})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	err := h.store.MarkNotificationRead(mux.Vars(r)["id"], userID(r))
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Notification not found"})
		return
	}
	if err != nil {
		log.Printf("[office] mark read: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update notification"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification updated"})
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.store.MarkAllNotificationsRead(userID(r)); err != nil {
		log.Printf("[office] mark all read: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update notifications"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All notifications updated"})
}

// ── Dashboard ─────────────────────────────────────────────

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	if role(r) != models.RoleAdmin {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Admin access only"})
		return
	}

	stats, err := h.store.GetDashboardStats()
	if err != nil {
		log.Printf("[office] dashboard stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ── Helpers ───────────────────────────────────────────────

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

func isStaff(r *http.Request) bool {
	return role(r) != "" && role(r) != models.RoleClient
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
