package library

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/legal-suite/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListDocuments(category, search string) ([]models.LegalDocument, error) {
	query := `SELECT id, title, category, content, created_by, created_at, updated_at
	          FROM legal_documents WHERE 1=1`
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []models.LegalDocument{}
	for rows.Next() {
		var d models.LegalDocument
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Content, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *Store) GetDocument(id string) (*models.LegalDocument, error) {
	var d models.LegalDocument
	err := s.db.QueryRow(
		`SELECT id, title, category, content, created_by, created_at, updated_at
		 FROM legal_documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Category, &d.Content, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

func (s *Store) CreateDocument(createdBy string, in models.CreateDocumentInput) (*models.LegalDocument, error) {
	var d models.LegalDocument
	err := s.db.QueryRow(
		`INSERT INTO legal_documents (id, title, category, content, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW(), NOW())
		 RETURNING id, title, category, content, created_by, created_at, updated_at`,
		uuid.NewString(), in.Title, in.Category, in.Content, createdBy,
	).Scan(&d.ID, &d.Title, &d.Category, &d.Content, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return &d, nil
}

func (s *Store) UpdateDocument(id string, in models.CreateDocumentInput) (*models.LegalDocument, error) {
	var d models.LegalDocument
	err := s.db.QueryRow(
		`UPDATE legal_documents SET title = $2, category = $3, content = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, title, category, content, created_by, created_at, updated_at`,
		id, in.Title, in.Category, in.Content,
	).Scan(&d.ID, &d.Title, &d.Category, &d.Content, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	return &d, nil
}

func (s *Store) DeleteDocument(id string) error {
	result, err := s.db.Exec(`DELETE FROM legal_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
