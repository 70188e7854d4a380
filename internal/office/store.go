package office

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/legal-suite/backend/internal/models"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// nextNumber issues the next sequential document number for a table,
// formatted as PREFIX-YYYY-00001. The counter restarts each year.
func (s *Store) nextNumber(prefix, table, column string) (string, error) {
	year := time.Now().Year()
	pattern := fmt.Sprintf("%s-%d-%%", prefix, year)

	var last sql.NullString
	err := s.db.QueryRow(
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIKE $1 ORDER BY %s DESC LIMIT 1`, column, table, column, column),
		pattern,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("next number: %w", err)
	}

	seq := 1
	if last.Valid {
		parts := strings.Split(last.String, "-")
		if n, perr := strconv.Atoi(parts[len(parts)-1]); perr == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq), nil
}

// ── Employees ─────────────────────────────────────────────

func (s *Store) ListEmployees() ([]models.User, error) {
	rows, err := s.db.Query(
		`SELECT id, email, full_name, COALESCE(phone, ''), role, is_active, first_login, created_at, updated_at
		 FROM users WHERE role != $1 ORDER BY full_name`,
		models.RoleClient,
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Role,
			&u.IsActive, &u.FirstLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, u)
	}
	return employees, rows.Err()
}

func (s *Store) DeleteUser(userID string) error {
	result, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ── Client Requests ───────────────────────────────────────

func (s *Store) ListRequests(clientID, requestType, status string) ([]models.ClientRequest, error) {
	query := `SELECT id, request_number, request_type, client_id, client_name,
	                 COALESCE(client_phone, ''), COALESCE(client_email, ''), COALESCE(national_id, ''),
	                 subject, COALESCE(description, ''), status, priority, COALESCE(referral_source, ''),
	                 created_at, updated_at
	          FROM client_requests WHERE 1=1`
	args := []interface{}{}
	if clientID != "" {
		args = append(args, clientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	if requestType != "" {
		args = append(args, requestType)
		query += fmt.Sprintf(" AND request_type = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := []models.ClientRequest{}
	for rows.Next() {
		var r models.ClientRequest
		if err := rows.Scan(&r.ID, &r.RequestNumber, &r.RequestType, &r.ClientID, &r.ClientName,
			&r.ClientPhone, &r.ClientEmail, &r.NationalID, &r.Subject, &r.Description,
			&r.Status, &r.Priority, &r.ReferralSource, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *Store) CreateRequest(clientID string, in models.CreateClientRequestInput) (*models.ClientRequest, error) {
	number, err := s.nextNumber("REQ", "client_requests", "request_number")
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}

	var r models.ClientRequest
	err = s.db.QueryRow(
		`INSERT INTO client_requests (id, request_number, request_type, client_id, client_name,
		     client_phone, client_email, national_id, subject, description, priority, referral_source,
		     created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		 RETURNING id, request_number, request_type, client_id, client_name,
		     COALESCE(client_phone, ''), COALESCE(client_email, ''), COALESCE(national_id, ''),
		     subject, COALESCE(description, ''), status, priority, COALESCE(referral_source, ''),
		     created_at, updated_at`,
		uuid.NewString(), number, in.RequestType, clientID, in.ClientName,
		in.ClientPhone, in.ClientEmail, in.NationalID, in.Subject, in.Description, priority, in.ReferralSource,
	).Scan(&r.ID, &r.RequestNumber, &r.RequestType, &r.ClientID, &r.ClientName,
		&r.ClientPhone, &r.ClientEmail, &r.NationalID, &r.Subject, &r.Description,
		&r.Status, &r.Priority, &r.ReferralSource, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return &r, nil
}

func (s *Store) UpdateRequestStatus(id, status string) error {
	result, err := s.db.Exec(
		`UPDATE client_requests SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteRequest(id string) error {
	result, err := s.db.Exec(`DELETE FROM client_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ── Tasks ─────────────────────────────────────────────────

func (s *Store) ListTasks(assignedTo, status string) ([]models.Task, error) {
	query := `SELECT id, task_number, title, COALESCE(description, ''), COALESCE(task_type, ''),
	                 status, priority, assigned_to, assigned_by, case_id, request_id,
	                 due_date, completed_at, created_at, updated_at
	          FROM tasks WHERE 1=1`
	args := []interface{}{}
	if assignedTo != "" {
		args = append(args, assignedTo)
		query += fmt.Sprintf(" AND assigned_to = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.TaskNumber, &t.Title, &t.Description, &t.TaskType,
			&t.Status, &t.Priority, &t.AssignedTo, &t.AssignedBy, &t.CaseID, &t.RequestID,
			&t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) CreateTask(creatorID string, in models.CreateTaskInput) (*models.Task, error) {
	number, err := s.nextNumber("TASK", "tasks", "task_number")
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}

	var t models.Task
	err = s.db.QueryRow(
		`INSERT INTO tasks (id, task_number, title, description, task_type, priority,
		     assigned_to, assigned_by, case_id, request_id, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''), NULLIF($10, ''), $11, NOW(), NOW())
		 RETURNING id, task_number, title, COALESCE(description, ''), COALESCE(task_type, ''),
		     status, priority, assigned_to, assigned_by, case_id, request_id,
		     due_date, completed_at, created_at, updated_at`,
		uuid.NewString(), number, in.Title, in.Description, in.TaskType, priority,
		in.AssignedTo, creatorID, in.CaseID, in.RequestID, in.DueDate,
	).Scan(&t.ID, &t.TaskNumber, &t.Title, &t.Description, &t.TaskType,
		&t.Status, &t.Priority, &t.AssignedTo, &t.AssignedBy, &t.CaseID, &t.RequestID,
		&t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &t, nil
}

func (s *Store) UpdateTaskStatus(id, status string) error {
	completed := status == models.TaskStatusCompleted
	result, err := s.db.Exec(
		`UPDATE tasks SET status = $2,
		     completed_at = CASE WHEN $3 THEN NOW() ELSE completed_at END,
		     updated_at = NOW()
		 WHERE id = $1`,
		id, status, completed,
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ── Attendance ────────────────────────────────────────────

func (s *Store) GetTodayAttendance(userID string) (*models.Attendance, error) {
	var a models.Attendance
	err := s.db.QueryRow(
		`SELECT id, user_id, user_name, date, clock_in_time, clock_in_lat, clock_in_lng,
		        COALESCE(clock_in_address, ''), clock_out_time, clock_out_lat, clock_out_lng,
		        COALESCE(clock_out_address, ''), status, created_at
		 FROM attendance WHERE user_id = $1 AND date = CURRENT_DATE`,
		userID,
	).Scan(&a.ID, &a.UserID, &a.UserName, &a.Date, &a.ClockInTime, &a.ClockInLat, &a.ClockInLng,
		&a.ClockInAddress, &a.ClockOutTime, &a.ClockOutLat, &a.ClockOutLng,
		&a.ClockOutAddress, &a.Status, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get today attendance: %w", err)
	}
	return &a, nil
}

func (s *Store) ClockIn(userID, userName string, in models.ClockInput) (*models.Attendance, error) {
	existing, err := s.GetTodayAttendance(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ClockInTime != nil {
		return nil, ErrAlreadyClockedIn
	}

	var a models.Attendance
	err = s.db.QueryRow(
		`INSERT INTO attendance (id, user_id, user_name, date, clock_in_time, clock_in_lat, clock_in_lng, clock_in_address)
		 VALUES ($1, $2, $3, CURRENT_DATE, NOW(), $4, $5, $6)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		     clock_in_time = NOW(), clock_in_lat = $4, clock_in_lng = $5, clock_in_address = $6
		 RETURNING id, user_id, user_name, date, clock_in_time, clock_in_lat, clock_in_lng,
		     COALESCE(clock_in_address, ''), clock_out_time, clock_out_lat, clock_out_lng,
		     COALESCE(clock_out_address, ''), status, created_at`,
		uuid.NewString(), userID, userName, in.Lat, in.Lng, in.Address,
	).Scan(&a.ID, &a.UserID, &a.UserName, &a.Date, &a.ClockInTime, &a.ClockInLat, &a.ClockInLng,
		&a.ClockInAddress, &a.ClockOutTime, &a.ClockOutLat, &a.ClockOutLng,
		&a.ClockOutAddress, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("clock in: %w", err)
	}
	return &a, nil
}

func (s *Store) ClockOut(userID string, in models.ClockInput) (*models.Attendance, error) {
	existing, err := s.GetTodayAttendance(userID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.ClockInTime == nil {
		return nil, ErrNotClockedIn
	}
	if existing.ClockOutTime != nil {
		return nil, ErrAlreadyClockedOut
	}

	var a models.Attendance
	err = s.db.QueryRow(
		`UPDATE attendance SET clock_out_time = NOW(), clock_out_lat = $2, clock_out_lng = $3, clock_out_address = $4
		 WHERE user_id = $1 AND date = CURRENT_DATE
		 RETURNING id, user_id, user_name, date, clock_in_time, clock_in_lat, clock_in_lng,
		     COALESCE(clock_in_address, ''), clock_out_time, clock_out_lat, clock_out_lng,
		     COALESCE(clock_out_address, ''), status, created_at`,
		userID, in.Lat, in.Lng, in.Address,
	).Scan(&a.ID, &a.UserID, &a.UserName, &a.Date, &a.ClockInTime, &a.ClockInLat, &a.ClockInLng,
		&a.ClockInAddress, &a.ClockOutTime, &a.ClockOutLat, &a.ClockOutLng,
		&a.ClockOutAddress, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("clock out: %w", err)
	}
	return &a, nil
}

func (s *Store) ListAttendance(userID, from, to string) ([]models.Attendance, error) {
	query := `SELECT id, user_id, user_name, date, clock_in_time, clock_in_lat, clock_in_lng,
	                 COALESCE(clock_in_address, ''), clock_out_time, clock_out_lat, clock_out_lng,
	                 COALESCE(clock_out_address, ''), status, created_at
	          FROM attendance WHERE 1=1`
	args := []interface{}{}
	if userID != "" {
		args = append(args, userID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.Date, &a.ClockInTime, &a.ClockInLat, &a.ClockInLng,
			&a.ClockInAddress, &a.ClockOutTime, &a.ClockOutLat, &a.ClockOutLng,
			&a.ClockOutAddress, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ── Notifications ─────────────────────────────────────────

func (s *Store) CreateNotification(userID, title, message, notifType, link string) error {
	_, err := s.db.Exec(
		`INSERT INTO notifications (id, user_id, title, message, notification_type, link)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`,
		uuid.NewString(), userID, title, message, notifType, link,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *Store) ListNotifications(userID string, limit int) ([]models.Notification, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, message, notification_type, COALESCE(link, ''), is_read, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *Store) CountUnreadNotifications(userID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	return count, err
}

func (s *Store) MarkNotificationRead(id, userID string) error {
	result, err := s.db.Exec(
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) MarkAllNotificationsRead(userID string) error {
	_, err := s.db.Exec(
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	return err
}

// ── Dashboard ─────────────────────────────────────────────

func (s *Store) GetDashboardStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.db.QueryRow(
		`SELECT
		    (SELECT COUNT(*) FROM users WHERE role != 'client'),
		    (SELECT COUNT(*) FROM users WHERE role = 'client'),
		    (SELECT COUNT(*) FROM client_requests WHERE status = 'new'),
		    (SELECT COUNT(*) FROM tasks WHERE status = 'in_progress'),
		    (SELECT COUNT(*) FROM tasks WHERE status = 'pending'),
		    (SELECT COUNT(*) FROM attendance WHERE date = CURRENT_DATE AND clock_in_time IS NOT NULL),
		    (SELECT COUNT(*) FROM invoices WHERE status = 'issued'),
		    (SELECT COALESCE(SUM(games_played), 0) FROM game_profiles),
		    (SELECT COUNT(*) FROM game_profiles)`,
	).Scan(&stats.TotalEmployees, &stats.TotalClients, &stats.NewRequests,
		&stats.InProgressTasks, &stats.PendingTasks, &stats.PresentToday,
		&stats.UnpaidInvoices, &stats.GamesPlayedTotal, &stats.ActiveGamePlayers)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
