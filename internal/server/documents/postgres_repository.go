package documents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Guru-25/FreeFusion/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, document *Document) (*Document, error) {

	fields, err := json.Marshal(document.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	query :=
		`INSERT INTO documents (id, collection, fields)
         VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		document.ID, document.Collection, fields).Scan(&document.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return document, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context, collection string) ([]Document, error) {
	query :=
		`SELECT id, fields, created_at FROM documents
		 WHERE collection = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

func (r *PostgresRepository) QueryByEquality(ctx context.Context, collection string, field string, value string) ([]Document, error) {
	query :=
		`SELECT id, fields, created_at FROM documents
		 WHERE collection = $1 AND fields->>$2 = $3
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanDocuments(rows rowScanner, collection string) ([]Document, error) {
	result := []Document{}

	for rows.Next() {
		doc := Document{Collection: collection}
		var fields []byte

		if err := rows.Scan(&doc.ID, &fields, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(fields, &doc.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		result = append(result, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
