package models

import "time"

const (
	DocTypeInvoice   = "invoice"
	DocTypeQuotation = "quotation"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusIssued    = "issued"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	DocType       string        `json:"doc_type"`
	ClientID      *string       `json:"client_id,omitempty"`
	ClientName    string        `json:"client_name"`
	IssuedBy      *string       `json:"issued_by,omitempty"`
	Status        string        `json:"status"`
	Subtotal      float64       `json:"subtotal"`
	VATRate       float64       `json:"vat_rate"`
	VATAmount     float64       `json:"vat_amount"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Items         []InvoiceItem `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type CreateInvoiceInput struct {
	DocType    string             `json:"doc_type"`
	ClientID   string             `json:"client_id"`
	ClientName string             `json:"client_name"`
	VATRate    *float64           `json:"vat_rate"`
	Notes      string             `json:"notes"`
	DueDate    *time.Time         `json:"due_date"`
	Items      []InvoiceItemInput `json:"items"`
}

type InvoiceItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type UpdateInvoiceStatusInput struct {
	Status string `json:"status"`
}
