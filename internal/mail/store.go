package mail

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/legal-suite/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetInbox(userID string) ([]models.InboxEntry, error) {
	rows, err := s.db.Query(
		`SELECT e.id, e.sender_id, e.sender_name, e.sender_email, e.subject, e.body,
		        e.is_external, COALESCE(e.external_email, ''), e.is_draft, e.is_sent, e.sent_at, e.created_at,
		        r.is_read, r.read_at
		 FROM emails e
		 JOIN email_recipients r ON r.email_id = e.id
		 WHERE r.recipient_id = $1 AND r.is_deleted = FALSE AND e.is_sent = TRUE
		 ORDER BY e.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get inbox: %w", err)
	}
	defer rows.Close()

	entries := []models.InboxEntry{}
	for rows.Next() {
		var e models.InboxEntry
		if err := rows.Scan(&e.ID, &e.SenderID, &e.SenderName, &e.SenderEmail, &e.Subject, &e.Body,
			&e.IsExternal, &e.ExternalEmail, &e.IsDraft, &e.IsSent, &e.SentAt, &e.CreatedAt,
			&e.IsRead, &e.ReadAt); err != nil {
			return nil, fmt.Errorf("scan inbox entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetSent(userID string) ([]models.Email, error) {
	rows, err := s.db.Query(
		`SELECT id, sender_id, sender_name, sender_email, subject, body,
		        is_external, COALESCE(external_email, ''), is_draft, is_sent, sent_at, created_at
		 FROM emails
		 WHERE sender_id = $1 AND is_sent = TRUE
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get sent: %w", err)
	}
	defer rows.Close()

	emails := []models.Email{}
	for rows.Next() {
		var e models.Email
		if err := rows.Scan(&e.ID, &e.SenderID, &e.SenderName, &e.SenderEmail, &e.Subject, &e.Body,
			&e.IsExternal, &e.ExternalEmail, &e.IsDraft, &e.IsSent, &e.SentAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sent email: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (s *Store) GetStats(userID string) (*models.MailStats, error) {
	var stats models.MailStats
	err := s.db.QueryRow(
		`SELECT
		    (SELECT COUNT(*) FROM email_recipients r JOIN emails e ON e.id = r.email_id
		     WHERE r.recipient_id = $1 AND r.is_deleted = FALSE AND e.is_sent = TRUE),
		    (SELECT COUNT(*) FROM email_recipients r JOIN emails e ON e.id = r.email_id
		     WHERE r.recipient_id = $1 AND r.is_deleted = FALSE AND e.is_sent = TRUE AND r.is_read = FALSE),
		    (SELECT COUNT(*) FROM emails WHERE sender_id = $1 AND is_sent = TRUE)`,
		userID,
	).Scan(&stats.InboxTotal, &stats.InboxUnread, &stats.SentTotal)
	if err != nil {
		return nil, fmt.Errorf("mail stats: %w", err)
	}
	return &stats, nil
}

// SendInternal stores an email plus a recipient row per addressee, and
// returns the stored email id. Recipient names and addresses are
// resolved from the users table.
func (s *Store) SendInternal(senderID, senderName, senderEmail string, in models.SendEmailInput) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("send internal: %w", err)
	}
	defer tx.Rollback()

	emailID := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO emails (id, sender_id, sender_name, sender_email, subject, body, is_sent, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)`,
		emailID, senderID, senderName, senderEmail, in.Subject, in.Body, time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert email: %w", err)
	}

	addRecipients := func(ids []string, recipientType string) error {
		for _, rid := range ids {
			var name, email string
			if err := tx.QueryRow(`SELECT full_name, email FROM users WHERE id = $1`, rid).Scan(&name, &email); err != nil {
				return fmt.Errorf("resolve recipient %s: %w", rid, err)
			}
			_, err := tx.Exec(
				`INSERT INTO email_recipients (id, email_id, recipient_id, recipient_name, recipient_email, recipient_type)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), emailID, rid, name, email, recipientType,
			)
			if err != nil {
				return fmt.Errorf("insert recipient: %w", err)
			}
		}
		return nil
	}

	if err := addRecipients(in.RecipientIDs, "to"); err != nil {
		return "", err
	}
	if err := addRecipients(in.CCIDs, "cc"); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("send internal: %w", err)
	}
	return emailID, nil
}

// RecordExternal stores an outbound external email after the SMTP send
// succeeded.
func (s *Store) RecordExternal(senderID, senderName, senderEmail string, in models.SendExternalEmailInput) (string, error) {
	emailID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO emails (id, sender_id, sender_name, sender_email, subject, body, is_external, external_email, is_sent, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, TRUE, $8)`,
		emailID, senderID, senderName, senderEmail, in.Subject, in.Body, in.ToEmail, time.Now(),
	)
	if err != nil {
		return "", fmt.Errorf("record external email: %w", err)
	}
	return emailID, nil
}

func (s *Store) MarkRead(emailID, userID string) error {
	result, err := s.db.Exec(
		`UPDATE email_recipients SET is_read = TRUE, read_at = NOW()
		 WHERE email_id = $1 AND recipient_id = $2`,
		emailID, userID,
	)
	if err != nil {
		return fmt.Errorf("mark email read: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
