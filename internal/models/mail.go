package models

import "time"

type Email struct {
	ID            string     `json:"id"`
	SenderID      *string    `json:"sender_id,omitempty"`
	SenderName    string     `json:"sender_name"`
	SenderEmail   string     `json:"sender_email"`
	Subject       string     `json:"subject"`
	Body          string     `json:"body"`
	IsExternal    bool       `json:"is_external"`
	ExternalEmail string     `json:"external_email,omitempty"`
	IsDraft       bool       `json:"is_draft"`
	IsSent        bool       `json:"is_sent"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type EmailRecipient struct {
	ID             string     `json:"id"`
	EmailID        string     `json:"email_id"`
	RecipientID    *string    `json:"recipient_id,omitempty"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	RecipientType  string     `json:"recipient_type"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

// InboxEntry joins an email with the viewing recipient's read state.
type InboxEntry struct {
	Email
	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

type SendEmailInput struct {
	RecipientIDs []string `json:"recipient_ids"`
	CCIDs        []string `json:"cc_ids"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
}

type SendExternalEmailInput struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type MailStats struct {
	InboxTotal  int `json:"inbox_total"`
	InboxUnread int `json:"inbox_unread"`
	SentTotal   int `json:"sent_total"`
}
