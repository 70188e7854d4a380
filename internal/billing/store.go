package billing

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
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

func (s *Store) nextInvoiceNumber(docType string) (string, error) {
	prefix := "INV"
	if docType == models.DocTypeQuotation {
		prefix = "QUO"
	}
	year := time.Now().Year()
	pattern := fmt.Sprintf("%s-%d-%%", prefix, year)

	var last sql.NullString
	err := s.db.QueryRow(
		`SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1 ORDER BY invoice_number DESC LIMIT 1`,
		pattern,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("next invoice number: %w", err)
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

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Store) CreateInvoice(issuedBy string, in models.CreateInvoiceInput) (*models.Invoice, error) {
	docType := in.DocType
	if docType == "" {
		docType = models.DocTypeInvoice
	}

	number, err := s.nextInvoiceNumber(docType)
	if err != nil {
		return nil, err
	}

	vatRate := 15.0
	if in.VATRate != nil {
		vatRate = *in.VATRate
	}

	subtotal := 0.0
	for _, item := range in.Items {
		subtotal += item.Quantity * item.UnitPrice
	}
	subtotal = round2(subtotal)
	vatAmount := round2(subtotal * vatRate / 100)
	total := round2(subtotal + vatAmount)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	defer tx.Rollback()

	inv := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: number,
		DocType:       docType,
		ClientName:    in.ClientName,
		Status:        models.InvoiceStatusDraft,
		Subtotal:      subtotal,
		VATRate:       vatRate,
		VATAmount:     vatAmount,
		Total:         total,
		Notes:         in.Notes,
		DueDate:       in.DueDate,
		CreatedAt:     time.Now(),
	}
	if in.ClientID != "" {
		inv.ClientID = &in.ClientID
	}
	if issuedBy != "" {
		inv.IssuedBy = &issuedBy
	}

	_, err = tx.Exec(
		`INSERT INTO invoices (id, invoice_number, doc_type, client_id, client_name, issued_by,
		     subtotal, vat_rate, vat_amount, total, notes, due_date, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13)`,
		inv.ID, inv.InvoiceNumber, inv.DocType, in.ClientID, inv.ClientName, issuedBy,
		inv.Subtotal, inv.VATRate, inv.VATAmount, inv.Total, inv.Notes, inv.DueDate, inv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	for _, item := range in.Items {
		amount := round2(item.Quantity * item.UnitPrice)
		itemRow := models.InvoiceItem{
			ID:          uuid.NewString(),
			InvoiceID:   inv.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      amount,
		}
		_, err = tx.Exec(
			`INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, amount)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			itemRow.ID, itemRow.InvoiceID, itemRow.Description, itemRow.Quantity, itemRow.UnitPrice, itemRow.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("insert invoice item: %w", err)
		}
		inv.Items = append(inv.Items, itemRow)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return &inv, nil
}

func (s *Store) GetInvoice(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.QueryRow(
		`SELECT id, invoice_number, doc_type, client_id, client_name, issued_by, status,
		        subtotal, vat_rate, vat_amount, total, COALESCE(notes, ''), due_date, created_at
		 FROM invoices WHERE id = $1`,
		id,
	).Scan(&inv.ID, &inv.InvoiceNumber, &inv.DocType, &inv.ClientID, &inv.ClientName, &inv.IssuedBy,
		&inv.Status, &inv.Subtotal, &inv.VATRate, &inv.VATAmount, &inv.Total, &inv.Notes,
		&inv.DueDate, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, invoice_id, description, quantity, unit_price, amount
		 FROM invoice_items WHERE invoice_id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	defer rows.Close()

	inv.Items = []models.InvoiceItem{}
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, item)
	}
	return &inv, rows.Err()
}

func (s *Store) ListInvoices(clientID, docType, status string) ([]models.Invoice, error) {
	query := `SELECT id, invoice_number, doc_type, client_id, client_name, issued_by, status,
	                 subtotal, vat_rate, vat_amount, total, COALESCE(notes, ''), due_date, created_at
	          FROM invoices WHERE 1=1`
	args := []interface{}{}
	if clientID != "" {
		args = append(args, clientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	if docType != "" {
		args = append(args, docType)
		query += fmt.Sprintf(" AND doc_type = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.DocType, &inv.ClientID, &inv.ClientName, &inv.IssuedBy,
			&inv.Status, &inv.Subtotal, &inv.VATRate, &inv.VATAmount, &inv.Total, &inv.Notes,
			&inv.DueDate, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *Store) UpdateInvoiceStatus(id, status string) error {
	result, err := s.db.Exec(
		`UPDATE invoices SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteInvoice(id string) error {
	result, err := s.db.Exec(`DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
