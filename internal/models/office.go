package models

import "time"

// Client request lifecycle statuses.
const (
	RequestStatusNew        = "new"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusRejected   = "rejected"
)

// Task lifecycle statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type ClientRequest struct {
	ID             string    `json:"id"`
	RequestNumber  string    `json:"request_number"`
	RequestType    string    `json:"request_type"`
	ClientID       *string   `json:"client_id,omitempty"`
	ClientName     string    `json:"client_name"`
	ClientPhone    string    `json:"client_phone,omitempty"`
	ClientEmail    string    `json:"client_email,omitempty"`
	NationalID     string    `json:"national_id,omitempty"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	ReferralSource string    `json:"referral_source,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateClientRequestInput struct {
	RequestType    string `json:"request_type"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	NationalID     string `json:"national_id"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	ReferralSource string `json:"referral_source"`
}

type UpdateRequestStatusInput struct {
	Status string `json:"status"`
}

type Task struct {
	ID          string     `json:"id"`
	TaskNumber  string     `json:"task_number"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TaskType    string     `json:"task_type,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	AssignedBy  *string    `json:"assigned_by,omitempty"`
	CaseID      *string    `json:"case_id,omitempty"`
	RequestID   *string    `json:"request_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TaskType    string     `json:"task_type"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assigned_to"`
	CaseID      string     `json:"case_id"`
	RequestID   string     `json:"request_id"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskStatusInput struct {
	Status string `json:"status"`
}

type Attendance struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	Date            time.Time  `json:"date"`
	ClockInTime     *time.Time `json:"clock_in_time,omitempty"`
	ClockInLat      *float64   `json:"clock_in_lat,omitempty"`
	ClockInLng      *float64   `json:"clock_in_lng,omitempty"`
	ClockInAddress  string     `json:"clock_in_address,omitempty"`
	ClockOutTime    *time.Time `json:"clock_out_time,omitempty"`
	ClockOutLat     *float64   `json:"clock_out_lat,omitempty"`
	ClockOutLng     *float64   `json:"clock_out_lng,omitempty"`
	ClockOutAddress string     `json:"clock_out_address,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ClockInput struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"notification_type"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalEmployees    int `json:"total_employees"`
	TotalClients      int `json:"total_clients"`
	NewRequests       int `json:"new_requests"`
	InProgressTasks   int `json:"in_progress_tasks"`
	PendingTasks      int `json:"pending_tasks"`
	PresentToday      int `json:"present_today"`
	UnpaidInvoices    int `json:"unpaid_invoices"`
	GamesPlayedTotal  int `json:"games_played_total"`
	ActiveGamePlayers int `json:"active_game_players"`
}
